package catalog

import "heritage-explorer-service/internal/domain"

var heritageSites = []domain.HeritageSite{
	{
		ID:                   "taj-mahal",
		Name:                 "Taj Mahal",
		State:                "Uttar Pradesh",
		Region:               "North India",
		Description:          "A magnificent ivory-white marble mausoleum built by Mughal Emperor Shah Jahan in memory of his beloved wife Mumtaz Mahal. Completed in 1653, this UNESCO World Heritage Site is considered the finest example of Mughal architecture.",
		CulturalImportance:   "Symbol of eternal love and the pinnacle of Indo-Islamic architecture. It blends Persian, Turkish, and Indian architectural styles.",
		HistoricalBackground: "Commissioned in 1632, it took over 20 years and 20,000 artisans to complete. The gardens follow the Persian 'charbagh' design.",
		EcologicalImportance: "The Yamuna river ecosystem surrounding the Taj supports diverse bird species and aquatic life.",
		LocalTraditions:      "Marble inlay work (Pietra Dura) is still practiced by local artisans. The art of Zardozi embroidery thrives in Agra.",
		Tags:                 []string{"UNESCO", "Mughal", "Architecture", "Marble"},
	},
	{
		ID:                   "hampi",
		Name:                 "Hampi",
		State:                "Karnataka",
		Region:               "South India",
		Description:          "The ruins of the Vijayanagara Empire's capital, Hampi is a surreal landscape of boulder-strewn terrain dotted with over 1,600 surviving remains of temples, palaces, and market streets.",
		CulturalImportance:   "Center of Hindu culture during the 14th-16th centuries. Home to the iconic Virupaksha Temple dedicated to Lord Shiva.",
		HistoricalBackground: "Capital of the Vijayanagara Empire (1336-1646), once one of the richest and largest cities in the world.",
		EcologicalImportance: "The rocky landscape supports unique dry deciduous vegetation and is home to the sloth bear population.",
		LocalTraditions:      "The annual Hampi Utsav festival celebrates the region's rich heritage with music, dance, and puppet shows.",
		Tags:                 []string{"UNESCO", "Vijayanagara", "Temple", "Ruins"},
	},
	{
		ID:                   "khajuraho",
		Name:                 "Khajuraho Temples",
		State:                "Madhya Pradesh",
		Region:               "Central India",
		Description:          "A group of Hindu and Jain temples famous for their stunning nagara-style architectural symbolism and sculptures, representing the celebration of life in medieval India.",
		CulturalImportance:   "Represents the artistic zenith of the Chandela dynasty. The temples celebrate all aspects of life including love, spirituality, and daily activities.",
		HistoricalBackground: "Built between 950-1050 CE by the Chandela dynasty. Originally 85 temples, 25 survive today.",
		EcologicalImportance: "The Panna National Park nearby protects tigers and diverse wildlife in the Vindhyan ecosystem.",
		LocalTraditions:      "The annual Khajuraho Dance Festival brings classical Indian dance to life against the temple backdrop.",
		Tags:                 []string{"UNESCO", "Chandela", "Sculpture", "Temple"},
	},
	{
		ID:                   "sundarbans",
		Name:                 "Sundarbans",
		State:                "West Bengal",
		Region:               "East India",
		Description:          "The world's largest mangrove forest, spanning across India and Bangladesh. Home to the Royal Bengal Tiger and a unique ecosystem where land meets sea.",
		CulturalImportance:   "The local communities have developed a unique culture adapted to the tidal waters, with deities like Bonbibi protecting them from tigers.",
		HistoricalBackground: "Designated a UNESCO World Heritage Site in 1987. The name means 'beautiful forest' from the Sundari trees.",
		EcologicalImportance: "Critical carbon sink, cyclone buffer, and home to 260 bird species, the Royal Bengal Tiger, and river dolphins.",
		LocalTraditions:      "Honey collectors (Mawalis) brave tigers to harvest wild honey. Boat-based communities practice unique fishing traditions.",
		Tags:                 []string{"UNESCO", "Mangrove", "Tiger", "Wetland"},
	},
	{
		ID:                   "jaisalmer",
		Name:                 "Jaisalmer Fort",
		State:                "Rajasthan",
		Region:               "West India",
		Description:          "One of the world's largest fully preserved fortified cities, rising from the golden sands of the Thar Desert. Known as the 'Golden Fort' for its yellow sandstone walls.",
		CulturalImportance:   "A living fort where a quarter of the old city's population still resides within its walls. Rich Rajasthani cultural traditions thrive here.",
		HistoricalBackground: "Built in 1156 CE by Rajput ruler Rawal Jaisal. An important stop on the ancient Silk Road trade route.",
		EcologicalImportance: "The Thar Desert ecosystem supports the Great Indian Bustard, desert fox, and unique arid-adapted vegetation.",
		LocalTraditions:      "Desert festivals with folk music, camel races, and puppet shows. Intricate stone carving and mirror work embroidery.",
		Tags:                 []string{"Fort", "Desert", "Rajput", "Living Heritage"},
	},
	{
		ID:                   "konark",
		Name:                 "Konark Sun Temple",
		State:                "Odisha",
		Region:               "East India",
		Description:          "A 13th-century temple designed as a massive chariot of the Sun God with intricately carved stone wheels, horses, and walls depicting every aspect of life.",
		CulturalImportance:   "Masterpiece of Kalinga architecture. The temple's design represents the cosmic chariot of Surya, the Sun God.",
		HistoricalBackground: "Built by King Narasimhadeva I around 1250 CE. The temple was known as the 'Black Pagoda' by European sailors.",
		EcologicalImportance: "Located near Chilika Lake, Asia's largest brackish water lagoon, supporting flamingos and Irrawaddy dolphins.",
		LocalTraditions:      "Odissi dance originated in temples like Konark. The annual Konark Dance Festival celebrates this classical art form.",
		Tags:                 []string{"UNESCO", "Sun Temple", "Kalinga", "Sculpture"},
	},
}

var stories = []domain.Story{
	{
		ID:          "ashoka-transformation",
		Title:       "The Transformation of Emperor Ashoka",
		Region:      "Central India",
		Category:    "history",
		Language:    "en",
		Description: "Experience the journey of Emperor Ashoka from a ruthless conqueror to a champion of peace after the Battle of Kalinga.",
		Chapters: []domain.StoryChapter{
			{
				ID:   "ch1",
				Text: "You stand on the battlefield of Kalinga, 261 BCE. The air is thick with the aftermath of war. Emperor Ashoka surveys the devastation: 100,000 lives lost. A deep transformation stirs within him. What does he do first?",
				Choices: []domain.StoryChoice{
					{Text: "Walk among the fallen soldiers", NextChapter: "ch2a"},
					{Text: "Seek counsel from a Buddhist monk", NextChapter: "ch2b"},
				},
			},
			{
				ID:   "ch2a",
				Text: "Walking among the fallen, Ashoka sees families mourning. A child clutches a broken toy soldier. The emperor's heart breaks. He vows to never wage war again. He begins spreading the message of Dhamma through...",
				Choices: []domain.StoryChoice{
					{Text: "Rock edicts across the empire", NextChapter: "ch3"},
					{Text: "Sending emissaries to other kingdoms", NextChapter: "ch3"},
				},
			},
			{
				ID:   "ch2b",
				Text: "The monk Upagupta teaches Ashoka about the Four Noble Truths. 'Suffering arises from attachment and violence,' he says. Ashoka realizes that true conquest is winning hearts. He decides to govern through...",
				Choices: []domain.StoryChoice{
					{Text: "Compassion and non-violence (Ahimsa)", NextChapter: "ch3"},
					{Text: "Building hospitals and planting trees", NextChapter: "ch3"},
				},
			},
			{
				ID:   "ch3",
				Text: "Ashoka transforms his entire empire. He builds rest houses for travelers, plants medicinal herbs along roads, and establishes the first animal welfare laws in history. His Ashoka Chakra, the wheel of dharma, still adorns India's national flag today. Story Complete!",
			},
		},
		Quiz: []domain.QuizQuestion{
			{Question: "What battle transformed Ashoka?", Options: []string{"Kalinga", "Panipat", "Plassey", "Haldighati"}, Answer: 0},
			{Question: "What philosophy did Ashoka adopt?", Options: []string{"Jainism", "Buddhism", "Hinduism", "Zoroastrianism"}, Answer: 1},
			{Question: "What symbol from Ashoka appears on India's flag?", Options: []string{"Lion", "Chakra", "Lotus", "Elephant"}, Answer: 1},
		},
	},
	{
		ID:          "tribal-wisdom",
		Title:       "The Wisdom of the Bishnoi Tribe",
		Region:      "Rajasthan",
		Category:    "culture",
		Language:    "en",
		Description: "Discover the Bishnoi community, the world's first environmentalists who gave their lives to protect trees over 500 years ago.",
		Chapters: []domain.StoryChapter{
			{
				ID:   "ch1",
				Text: "The year is 1730. In the village of Khejarli, Rajasthan, the Maharaja's soldiers arrive to cut down sacred Khejri trees. Amrita Devi, a Bishnoi woman, steps forward. 'A tree saved is worth more than a head cut,' she declares. What happens next?",
				Choices: []domain.StoryChoice{
					{Text: "She hugs the tree to protect it", NextChapter: "ch2"},
					{Text: "She rallies the entire village", NextChapter: "ch2"},
				},
			},
			{
				ID:   "ch2",
				Text: "Amrita Devi and 362 Bishnoi villagers sacrifice their lives hugging trees. This event, the Khejarli Massacre, becomes the world's first recorded environmental sacrifice. The Maharaja, moved by their devotion, bans tree cutting forever. The Bishnoi follow 29 principles of ecology...",
				Choices: []domain.StoryChoice{
					{Text: "Learn the 29 principles", NextChapter: "ch3"},
					{Text: "See how Chipko Movement was inspired", NextChapter: "ch3"},
				},
			},
			{
				ID:   "ch3",
				Text: "The Bishnoi principles include: never cut green trees, protect all living creatures, and maintain community harmony with nature. 250 years later, the Chipko Movement of the 1970s drew direct inspiration from this sacrifice. Today, blackbuck deer and chinkara roam freely in Bishnoi villages, protected by the community. Story Complete!",
			},
		},
		Quiz: []domain.QuizQuestion{
			{Question: "Which community is considered the first environmentalists?", Options: []string{"Toda", "Bishnoi", "Gond", "Santhal"}, Answer: 1},
			{Question: "How many Bishnoi principles exist?", Options: []string{"10", "21", "29", "50"}, Answer: 2},
		},
	},
	{
		ID:          "spice-route",
		Title:       "Journey Along the Spice Route",
		Region:      "Kerala",
		Category:    "biodiversity",
		Language:    "en",
		Description: "Travel through Kerala's ancient spice trade routes that connected India to the Roman Empire, Arab world, and beyond.",
		Chapters: []domain.StoryChapter{
			{
				ID:   "ch1",
				Text: "You arrive at the ancient port of Muziris in Kerala, 100 CE. Roman merchant ships dock alongside Arab dhows. The air is fragrant with black pepper, cardamom, and cinnamon. A local trader approaches you. 'Would you like to see where the magic grows?'",
				Choices: []domain.StoryChoice{
					{Text: "Visit the pepper vine gardens", NextChapter: "ch2a"},
					{Text: "Explore the cardamom hills", NextChapter: "ch2b"},
				},
			},
			{
				ID:   "ch2a",
				Text: "In the Western Ghats, pepper vines climb towering trees. 'Black gold,' the trader calls it. Romans traded gold coins for this pepper, so valuable it was used as currency. The biodiversity here is astounding: lion-tailed macaques, Nilgiri tahr, and thousands of endemic plants.",
				Choices: []domain.StoryChoice{
					{Text: "Learn about the Western Ghats biodiversity", NextChapter: "ch3"},
				},
			},
			{
				ID:   "ch2b",
				Text: "The Cardamom Hills are misty and magical. Wild elephants roam among the plantations. The trader explains: 'Cardamom is the Queen of Spices, and our hills are one of the world's biodiversity hotspots, home to species found nowhere else on Earth.'",
				Choices: []domain.StoryChoice{
					{Text: "Discover the endangered species", NextChapter: "ch3"},
				},
			},
			{
				ID:   "ch3",
				Text: "The Western Ghats are one of 36 global biodiversity hotspots, home to 325 globally threatened species. Ancient spice gardens have preserved this biodiversity for millennia. Today, sustainable spice farming continues to protect these ecosystems while connecting communities worldwide through flavor. Story Complete!",
			},
		},
		Quiz: []domain.QuizQuestion{
			{Question: "What was black pepper called by Romans?", Options: []string{"Black Gold", "King's Salt", "Eastern Fire", "Dark Jewel"}, Answer: 0},
			{Question: "Which mountain range are the Cardamom Hills part of?", Options: []string{"Himalayas", "Eastern Ghats", "Western Ghats", "Vindhyas"}, Answer: 2},
		},
	},
}

var biodiversityRecords = []domain.BiodiversityRecord{
	{ID: "bengal-tiger", Species: "Royal Bengal Tiger", Category: "animal", Region: "Sundarbans, West Bengal", Description: "The largest cat species in the world. The Sundarbans population is uniquely adapted to swimming and living in mangrove forests.", ConservationStatus: "Endangered", State: "West Bengal"},
	{ID: "indian-peacock", Species: "Indian Peafowl", Category: "animal", Region: "Pan-India", Description: "India's national bird, known for its spectacular iridescent tail display. Found across the Indian subcontinent.", ConservationStatus: "Least Concern", State: "Rajasthan"},
	{ID: "asiatic-lion", Species: "Asiatic Lion", Category: "animal", Region: "Gir Forest, Gujarat", Description: "The only wild population of Asiatic lions exists in the Gir Forest. Conservation efforts increased their numbers from 20 to over 600.", ConservationStatus: "Endangered", State: "Gujarat"},
	{ID: "one-horned-rhino", Species: "Indian One-Horned Rhinoceros", Category: "animal", Region: "Kaziranga, Assam", Description: "The world's largest population of one-horned rhinos lives in Kaziranga National Park, protected by dedicated forest guards.", ConservationStatus: "Vulnerable", State: "Assam"},
	{ID: "banyan-tree", Species: "Indian Banyan", Category: "plant", Region: "Pan-India", Description: "India's national tree. The Great Banyan in Kolkata has the largest canopy in the world, spanning over 3.5 acres.", ConservationStatus: "Least Concern", State: "West Bengal"},
	{ID: "lotus", Species: "Sacred Lotus", Category: "plant", Region: "Pan-India", Description: "India's national flower, symbol of purity and divine beauty. Grows in muddy waters but blooms immaculate.", ConservationStatus: "Least Concern", State: "Kashmir"},
	{ID: "snow-leopard", Species: "Snow Leopard", Category: "animal", Region: "Himalayas", Description: "The 'Ghost of the Mountains' roams the high Himalayas. India is home to an estimated 700 snow leopards.", ConservationStatus: "Vulnerable", State: "Ladakh"},
	{ID: "nilgiri-tahr", Species: "Nilgiri Tahr", Category: "animal", Region: "Western Ghats", Description: "An endangered mountain goat found only in the Nilgiri Hills and Western Ghats of India.", ConservationStatus: "Endangered", State: "Kerala"},
}

var quizQuestions = []domain.QuizQuestion{
	{ID: "q1", Question: "Which monument was built by Shah Jahan?", Options: []string{"Red Fort", "Taj Mahal", "Qutub Minar", "Hawa Mahal"}, Answer: 1, Category: "monuments", XP: 10},
	{ID: "q2", Question: "What is India's national animal?", Options: []string{"Elephant", "Lion", "Tiger", "Peacock"}, Answer: 2, Category: "wildlife", XP: 10},
	{ID: "q3", Question: "Which classical dance originated in Odisha?", Options: []string{"Bharatanatyam", "Kathak", "Odissi", "Kathakali"}, Answer: 2, Category: "culture", XP: 15},
	{ID: "q4", Question: "Kaziranga is famous for which animal?", Options: []string{"Tiger", "Elephant", "One-horned Rhino", "Lion"}, Answer: 2, Category: "wildlife", XP: 10},
	{ID: "q5", Question: "The Konark Sun Temple is shaped like a?", Options: []string{"Lotus", "Chariot", "Mountain", "Ship"}, Answer: 1, Category: "monuments", XP: 15},
	{ID: "q6", Question: "Which state is Hampi located in?", Options: []string{"Tamil Nadu", "Kerala", "Karnataka", "Andhra Pradesh"}, Answer: 2, Category: "monuments", XP: 10},
	{ID: "q7", Question: "Chipko Movement was inspired by which community?", Options: []string{"Gond", "Bishnoi", "Toda", "Khasi"}, Answer: 1, Category: "culture", XP: 20},
	{ID: "q8", Question: "What is the national flower of India?", Options: []string{"Rose", "Jasmine", "Lotus", "Sunflower"}, Answer: 2, Category: "culture", XP: 10},
}

var badges = []domain.Badge{
	{ID: "first-story", Name: "Story Seeker", Description: "Complete your first story", RequiredXP: 0},
	{ID: "heritage-explorer", Name: "Heritage Explorer", Description: "Visit 3 heritage sites", RequiredXP: 50},
	{ID: "quiz-master", Name: "Quiz Master", Description: "Score 100% on 3 quizzes", RequiredXP: 100},
	{ID: "nature-guardian", Name: "Nature Guardian", Description: "Explore all biodiversity records", RequiredXP: 150},
	{ID: "cultural-champion", Name: "Cultural Champion", Description: "Reach Level 5", RequiredXP: 300},
}
