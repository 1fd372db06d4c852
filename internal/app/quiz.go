package app

import (
	"context"

	"heritage-explorer-service/internal/catalog"
	"heritage-explorer-service/internal/domain"
)

// XP bonuses granted on top of score*10 when a quiz run completes.
const (
	StandaloneQuizBonus = 10
	StoryQuizBonus      = 20
)

// HeritageQuizID identifies the standalone catalog quiz in score history.
const HeritageQuizID = "heritage-quiz"

// AnswerOutcome is what a single selection reveals: whether it was right,
// which option was right, and whether the run just ended.
type AnswerOutcome struct {
	Correct       bool `json:"correct"`
	CorrectOption int  `json:"correctOption"`
	Done          bool `json:"done"`
}

// QuizRun steps through an ordered question list one at a time: single
// select, no back-navigation, no mid-run retry. Not safe for concurrent use;
// each run belongs to one player session.
type QuizRun struct {
	quizID    string
	questions []domain.QuizQuestion
	bonus     int
	index     int
	score     int
	done      bool
}

func NewQuizRun(quizID string, questions []domain.QuizQuestion, bonus int) *QuizRun {
	return &QuizRun{quizID: quizID, questions: questions, bonus: bonus}
}

// Current returns the question awaiting an answer, or false when the run is
// over or empty.
func (r *QuizRun) Current() (domain.QuizQuestion, bool) {
	if r.done || r.index >= len(r.questions) {
		return domain.QuizQuestion{}, false
	}
	return r.questions[r.index], true
}

// Answer scores the selected option against the current question and
// advances. The last answer flips the run into its done state.
func (r *QuizRun) Answer(option int) (AnswerOutcome, error) {
	q, ok := r.Current()
	if !ok {
		return AnswerOutcome{}, domain.ErrQuizFinished
	}
	correct := option == q.Answer
	if correct {
		r.score++
	}
	r.index++
	if r.index >= len(r.questions) {
		r.done = true
	}
	return AnswerOutcome{Correct: correct, CorrectOption: q.Answer, Done: r.done}, nil
}

func (r *QuizRun) QuizID() string { return r.quizID }
func (r *QuizRun) Score() int     { return r.score }
func (r *QuizRun) Total() int     { return len(r.questions) }
func (r *QuizRun) Index() int     { return r.index }
func (r *QuizRun) Done() bool     { return r.done }

// XPAward is the XP a completed run is worth: 10 per correct answer plus the
// run's fixed bonus.
func (r *QuizRun) XPAward() int {
	return r.score*10 + r.bonus
}

// Restart zeroes all counters and returns to the pre-start state.
func (r *QuizRun) Restart() {
	r.index = 0
	r.score = 0
	r.done = false
}

// QuizService starts and settles quiz runs against user progress.
type QuizService struct {
	catalog  *catalog.Catalog
	progress *ProgressService
}

func NewQuizService(cat *catalog.Catalog, progress *ProgressService) *QuizService {
	return &QuizService{catalog: cat, progress: progress}
}

// StartHeritageQuiz begins a run over the full standalone question set.
func (s *QuizService) StartHeritageQuiz() *QuizRun {
	return NewQuizRun(HeritageQuizID, s.catalog.QuizQuestions(), StandaloneQuizBonus)
}

// StartStoryQuiz begins a run over a story's attached quiz.
func (s *QuizService) StartStoryQuiz(ctx context.Context, storyID string) (*QuizRun, error) {
	story, err := s.catalog.Story(ctx, storyID)
	if err != nil {
		return nil, err
	}
	return NewQuizRun(story.ID, story.Quiz, StoryQuizBonus), nil
}

// Complete awards the run's XP and records its score. XP is granted on every
// completion, repeats included; only story/site completion is idempotent.
func (s *QuizService) Complete(ctx context.Context, userID string, run *QuizRun) (int, domain.UserProgress) {
	if !run.Done() {
		return 0, s.progress.Get(ctx, userID)
	}
	award := run.XPAward()
	s.progress.RecordQuizScore(ctx, userID, domain.QuizScore{
		QuizID: run.QuizID(),
		Score:  run.Score(),
		Total:  run.Total(),
	})
	return award, s.progress.AddXP(ctx, userID, award)
}
