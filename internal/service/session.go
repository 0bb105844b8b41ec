package service

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"radaquest/internal/models"
)

// ErrNoQuestions means the selected filters matched nothing. The session
// refuses to start; the user should adjust the filters.
var ErrNoQuestions = errors.New("no questions match the selected filters")

// ErrAlreadyAnswered guards against double submission of the same question
var ErrAlreadyAnswered = errors.New("question has already been answered")

// ErrSessionComplete is returned when submitting after the last question
var ErrSessionComplete = errors.New("session is complete")

// ProgressStore is the injected persistence capability. Load returns
// (nil, nil) when no saved progress exists. All failures are best-effort:
// the session logs and continues with in-memory state.
type ProgressStore interface {
	Load() (*models.UserProgress, error)
	Save(progress models.UserProgress) error
}

// Filter narrows the working question set before shuffling. Zero values
// mean "all".
type Filter struct {
	Difficulty models.Difficulty
	Type       models.QuestionType
}

func (f Filter) matches(q models.Question) bool {
	base := q.Base()
	if f.Difficulty != "" && base.Difficulty != f.Difficulty {
		return false
	}
	if f.Type != "" && base.Type != f.Type {
		return false
	}
	return true
}

// AnswerRecord is one entry in the per-session answer history, kept for
// post-session review
type AnswerRecord struct {
	QuestionID    string
	IsCorrect     bool
	PointsAwarded int
	Question      models.Question
}

// Summary aggregates a session for the completion screen
type Summary struct {
	TotalPoints       int
	QuestionsAnswered int
	Accuracy          float64
	Level             models.Difficulty
	Badges            []string
}

// QuizSession sequences questions through a single play-through. It owns
// the live UserProgress; persistence is a side effect after each answer.
// All methods run synchronously on the caller's goroutine.
type QuizSession struct {
	id        string
	bank      []models.Question
	filter    Filter
	questions []models.Question
	index     int
	progress  models.UserProgress
	minLevel  models.Difficulty
	history   []AnswerRecord
	answered  map[string]bool
	store     ProgressStore
	rng       *rand.Rand
}

// NewSession builds a session over the filtered, shuffled question bank.
// Every matching question appears exactly once; order is unspecified unless
// a seeded rng is supplied. Saved progress is loaded from the store, falling
// back silently to initial progress. Choosing a concrete difficulty pins it
// as the session's minimum level.
func NewSession(bank []models.Question, filter Filter, store ProgressStore, rng *rand.Rand) (*QuizSession, error) {
	var working []models.Question
	for _, q := range bank {
		if filter.matches(q) {
			working = append(working, q)
		}
	}
	if len(working) == 0 {
		return nil, ErrNoQuestions
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(working), func(i, j int) {
		working[i], working[j] = working[j], working[i]
	})

	s := &QuizSession{
		id:        uuid.New().String(),
		bank:      bank,
		filter:    filter,
		questions: working,
		progress:  models.InitialProgress(),
		minLevel:  models.DifficultyBeginner,
		answered:  make(map[string]bool),
		store:     store,
		rng:       rng,
	}

	if filter.Difficulty != "" {
		s.minLevel = filter.Difficulty
	}

	if store != nil {
		saved, err := store.Load()
		if err != nil {
			log.Printf("[STORAGE] failed to load saved progress, starting fresh: %v", err)
		} else if saved != nil {
			s.progress = *saved
		}
	}
	s.progress.Level = models.MaxDifficulty(s.progress.Level, s.minLevel)

	return s, nil
}

// ID returns the session identifier
func (s *QuizSession) ID() string {
	return s.id
}

// CurrentQuestion returns the question at the cursor, or nil once the
// session is complete
func (s *QuizSession) CurrentQuestion() models.Question {
	if s.index >= len(s.questions) {
		return nil
	}
	return s.questions[s.index]
}

// Submit grades the response for the current question, folds the outcome
// into the progress, records history, and persists best-effort. Submitting
// the same question twice is rejected.
func (s *QuizSession) Submit(response models.Response) (GradeResult, error) {
	question := s.CurrentQuestion()
	if question == nil {
		return GradeResult{}, ErrSessionComplete
	}
	base := question.Base()
	if s.answered[base.ID] {
		return GradeResult{}, ErrAlreadyAnswered
	}

	outcome, err := Grade(question, response)
	if err != nil {
		return GradeResult{}, err
	}

	s.progress = UpdateProgressWithFloor(s.progress, outcome.Correct, outcome.PointsAwarded, question, s.minLevel)
	s.answered[base.ID] = true
	s.history = append(s.history, AnswerRecord{
		QuestionID:    base.ID,
		IsCorrect:     outcome.Correct,
		PointsAwarded: outcome.PointsAwarded,
		Question:      question,
	})

	s.persist()
	return outcome, nil
}

// persist writes the progress snapshot. Storage is best-effort: a failed
// write is logged and never blocks progression.
func (s *QuizSession) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.progress); err != nil {
		log.Printf("[STORAGE] failed to save progress: %v", err)
	}
}

// Advance moves the cursor to the next question. Advancing past the last
// question completes the session.
func (s *QuizSession) Advance() {
	if s.index < len(s.questions) {
		s.index++
	}
}

// Previous moves the cursor back for review. Navigation never re-grades.
func (s *QuizSession) Previous() {
	if s.index > 0 {
		s.index--
	}
}

// IsComplete reports whether the cursor has moved past the last question
func (s *QuizSession) IsComplete() bool {
	return s.index >= len(s.questions)
}

// Position returns the zero-based cursor and the total question count
func (s *QuizSession) Position() (int, int) {
	return s.index, len(s.questions)
}

// Progress returns a copy of the live progress
func (s *QuizSession) Progress() models.UserProgress {
	p := s.progress
	p.Badges = append([]string{}, s.progress.Badges...)
	return p
}

// History returns a copy of the answer log in submission order
func (s *QuizSession) History() []AnswerRecord {
	return append([]AnswerRecord{}, s.history...)
}

// Summarize builds the completion view of the session
func (s *QuizSession) Summarize() Summary {
	return Summary{
		TotalPoints:       s.progress.TotalPoints,
		QuestionsAnswered: s.progress.QuestionsAnswered,
		Accuracy:          s.progress.Accuracy(),
		Level:             s.progress.Level,
		Badges:            append([]string{}, s.progress.Badges...),
	}
}

// Restart discards the session state wholesale: progress resets to
// initial, the history clears, the pinned minimum level clears, and the
// full bank is refiltered and reshuffled.
func (s *QuizSession) Restart() error {
	var working []models.Question
	for _, q := range s.bank {
		if s.filter.matches(q) {
			working = append(working, q)
		}
	}
	if len(working) == 0 {
		return ErrNoQuestions
	}
	s.rng.Shuffle(len(working), func(i, j int) {
		working[i], working[j] = working[j], working[i]
	})

	s.questions = working
	s.index = 0
	s.progress = models.InitialProgress()
	s.minLevel = models.DifficultyBeginner
	s.history = nil
	s.answered = make(map[string]bool)
	s.persist()
	return nil
}
