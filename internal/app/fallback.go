package app

import (
	"context"
	"strings"

	"heritage-explorer-service/internal/domain"
)

// StaticResponder is the degraded chat mode used when no provider key is
// configured. It matches the message against a small keyword-indexed
// knowledge base, then falls back to topic-sniffed canned persona replies,
// and finally to a literal don't-know answer. Stateless; no inference.
type StaticResponder struct{}

func NewStaticResponder() *StaticResponder {
	return &StaticResponder{}
}

const dontKnowReply = "I don't know about that yet. Try asking me about India's monuments, wildlife, stories, or traditions!"

// knowledgeBase maps category -> keyword -> canned fact.
var knowledgeBase = map[string]map[string]string{
	"culture": {
		"taj mahal": "The Taj Mahal was built by Mughal Emperor Shah Jahan in memory of Mumtaz Mahal, completed in 1653 with the labor of 20,000 artisans.",
		"hampi":     "Hampi was the capital of the Vijayanagara Empire (1336-1646), once one of the richest cities in the world, with over 1,600 surviving temple and palace remains.",
		"konark":    "The Konark Sun Temple is a 13th-century temple built as a massive stone chariot of Surya, the Sun God, with intricately carved wheels and horses.",
		"bishnoi":   "The Bishnoi community of Rajasthan are considered the world's first environmentalists; in 1730, 363 villagers gave their lives protecting sacred Khejri trees.",
		"ashoka":    "Emperor Ashoka renounced war after the Battle of Kalinga in 261 BCE and spread the message of Dhamma through rock edicts across his empire.",
		"odissi":    "Odissi is a classical dance form that originated in the temples of Odisha, including the Konark Sun Temple.",
	},
	"biodiversity": {
		"tiger":         "The Royal Bengal Tiger is India's national animal. The Sundarbans population is uniquely adapted to swimming in mangrove forests.",
		"peacock":       "The Indian Peafowl is India's national bird, famous for its iridescent tail display.",
		"western ghats": "The Western Ghats are one of 36 global biodiversity hotspots, home to 325 globally threatened species.",
		"sundarbans":    "The Sundarbans is the world's largest mangrove forest, a critical carbon sink sheltering the Royal Bengal Tiger and 260 bird species.",
		"rhino":         "The world's largest population of one-horned rhinos lives in Kaziranga National Park in Assam.",
		"lotus":         "The Sacred Lotus is India's national flower, a symbol of purity that blooms immaculate out of muddy waters.",
	},
}

// topicReplies are canned persona responses used when no keyword matches but
// the message sniffs like a known topic.
var topicReplies = map[string]map[string]string{
	"dadi": {
		"story":     "Namaste, beta! Let me tell you a story from the golden sands of Rajasthan... Did you know the Bishnoi community has been protecting trees for over 500 years? They are the world's first environmentalists!",
		"festival":  "In our culture, every festival tells a story. Gangaur celebrates the devotion of Goddess Parvati, and young girls carry beautifully decorated clay idols through the streets. It's a sight to behold!",
		"tradition": "Ah, wonderful question! The Rajasthani tradition of 'Pabuji Ki Phad' is a painted scroll storytelling tradition that has been passed down for centuries. Bards travel from village to village, unrolling these magnificent scrolls while singing epic tales.",
	},
	"arjun": {
		"history":     "Excellent question! The Indus Valley Civilization, dating back to 3300 BCE, was remarkably advanced. Cities like Mohenjo-daro and Harappa were marvels of urban planning.",
		"empire":      "The Maurya Empire under Ashoka was transformative. After the Kalinga War, Ashoka embraced Buddhism and spread the message of Dhamma through rock edicts across the subcontinent.",
		"mathematics": "India's contribution to mathematics is profound. Aryabhata calculated pi to four decimal places, and the concept of zero originated here. We gave the world the decimal system!",
	},
	"meera": {
		"forest":   "Did you know India has 5 types of forests? From the mangroves of Sundarbans to the alpine meadows of the Himalayas. The Sundarbans alone are home to the famous swimming tigers of Bengal!",
		"wildlife": "Welcome to the Western Ghats! This is one of the world's 36 biodiversity hotspots. We have over 325 globally threatened species here, including the lion-tailed macaque and Nilgiri tahr.",
		"sacred":   "The sacred groves of India, called 'Dev Vans', are patches of forest preserved by local communities for centuries as abodes of deities. This traditional conservation practice has saved countless species!",
	},
	"kabir": {
		"craft":    "In our Bastar region, the Dhokra metal craft has been practiced for over 4,000 years using the lost-wax technique. Each piece tells a story of our connection with nature and the spirits of the forest.",
		"art":      "The Gond art tradition is one of India's oldest. We paint stories of the forest; every tree, every animal has a spirit.",
		"festival": "Our tribal festivals follow the rhythm of nature. The Madai festival brings together different tribal communities to trade, celebrate, and share stories.",
	},
}

func (r *StaticResponder) Respond(_ context.Context, persona domain.Persona, message string, _ []domain.ChatTurn) (string, error) {
	query := strings.ToLower(strings.TrimSpace(message))
	if query == "" {
		return dontKnowReply, nil
	}

	// Keyword lookup: the query contains the key, or the key contains the
	// query's first word.
	firstWord := query
	if i := strings.IndexByte(query, ' '); i > 0 {
		firstWord = query[:i]
	}
	for _, facts := range knowledgeBase {
		for key, fact := range facts {
			if strings.Contains(query, key) || strings.Contains(key, firstWord) {
				return fact, nil
			}
		}
	}

	// Topic sniffing against the persona's canned replies.
	if replies, ok := topicReplies[persona.ID]; ok {
		for topic, reply := range replies {
			if strings.Contains(query, topic) {
				return reply, nil
			}
		}
	}

	return dontKnowReply, nil
}
