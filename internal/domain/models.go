package domain

import "time"

// UserProgress tracks a single explorer's XP, level, and completed content.
// Level is always derived from XP; callers never set it directly.
type UserProgress struct {
	XP               int         `json:"xp"`
	Level            int         `json:"level"`
	CompletedSites   []string    `json:"completedSites"`
	CompletedStories []string    `json:"completedStories"`
	QuizScores       []QuizScore `json:"quizScores"`
	Badges           []string    `json:"badges"`
}

// QuizScore is one finished quiz run. The list on UserProgress is append-only.
type QuizScore struct {
	QuizID string `json:"quizId"`
	Score  int    `json:"score"`
	Total  int    `json:"total"`
}

// DefaultProgress is the zero-value record handed out when nothing is persisted yet.
func DefaultProgress() UserProgress {
	return UserProgress{
		Level:            1,
		CompletedSites:   []string{},
		CompletedStories: []string{},
		QuizScores:       []QuizScore{},
		Badges:           []string{},
	}
}

// LevelForXP derives the level from accumulated XP: 100 XP per level, starting at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/100 + 1
}

// HeritageSite is a static catalog entry for a monument or cultural site.
type HeritageSite struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	State                string   `json:"state"`
	Region               string   `json:"region"`
	Description          string   `json:"description"`
	CulturalImportance   string   `json:"culturalImportance"`
	HistoricalBackground string   `json:"historicalBackground"`
	EcologicalImportance string   `json:"ecologicalImportance"`
	LocalTraditions      string   `json:"localTraditions"`
	Tags                 []string `json:"tags"`
}

// BiodiversityRecord is a static catalog entry for a species or ecosystem.
type BiodiversityRecord struct {
	ID                 string `json:"id"`
	Species            string `json:"species"`
	Category           string `json:"category"` // animal, plant, ecosystem
	Region             string `json:"region"`
	Description        string `json:"description"`
	ConservationStatus string `json:"conservationStatus"`
	State              string `json:"state"`
}

// StoryChoice links a chapter to its successor.
type StoryChoice struct {
	Text        string `json:"text"`
	NextChapter string `json:"nextChapter"`
}

// StoryChapter is one node in a story's chapter graph. A chapter with no
// choices is terminal.
type StoryChapter struct {
	ID      string        `json:"id"`
	Text    string        `json:"text"`
	Choices []StoryChoice `json:"choices"`
}

// Story is an immutable branching narrative with an attached quiz. The
// chapter graph is reachable from StartChapterID and is assumed cycle-free;
// the engine does not enforce that.
type Story struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Region      string         `json:"region"`
	Category    string         `json:"category"`
	Language    string         `json:"language"`
	Description string         `json:"description"`
	Chapters    []StoryChapter `json:"chapters"`
	Quiz        []QuizQuestion `json:"quiz"`
}

// StartChapterID is the designated entry chapter of every story.
const StartChapterID = "ch1"

// Chapter looks up a chapter by id.
func (s Story) Chapter(id string) (StoryChapter, bool) {
	for _, ch := range s.Chapters {
		if ch.ID == id {
			return ch, true
		}
	}
	return StoryChapter{}, false
}

// QuizQuestion is a single-answer multiple-choice question. Answer indexes
// into Options. Standalone catalog questions carry a per-question XP figure
// shown to the player; in-story quiz questions leave it zero.
type QuizQuestion struct {
	ID       string   `json:"id,omitempty"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
	Category string   `json:"category,omitempty"`
	XP       int      `json:"xp,omitempty"`
}

// Badge is a static achievement definition.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RequiredXP  int    `json:"requiredXp"`
}

// Persona is a fixed chat character profile with its system instruction.
type Persona struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Region       string `json:"region"`
	Greeting     string `json:"greeting"`
	SystemPrompt string `json:"-"`
}

// ChatTurn is one prior message in a conversation, in the client's role
// vocabulary ("user" and anything else, which maps to the model role).
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the relay's answer for a single request.
type ChatReply struct {
	Content   string `json:"content"`
	Character string `json:"character"`
}

// Contribution statuses. Any status may transition to any other, including
// itself; moderation applies the new value unconditionally.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the moderation statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Contribution types and categories accepted from the community form.
var (
	ContributionTypes      = []string{"story", "tradition", "observation", "photo"}
	ContributionCategories = []string{"culture", "biodiversity"}
)

// Contribution is a community submission moving through the moderation queue.
type Contribution struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Region          string    `json:"region"`
	Category        string    `json:"category"`
	ContributorName string    `json:"contributorName"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ContributionCounts summarizes the moderation queue for dashboards.
type ContributionCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
