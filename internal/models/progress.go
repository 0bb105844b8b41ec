package models

// UserProgress is the running gamification state for a session. The JSON
// field names match the persisted browser payload so saved progress from
// the original web app keeps loading.
type UserProgress struct {
	TotalPoints       int        `json:"totalPoints"`
	Level             Difficulty `json:"level"`
	Badges            []string   `json:"badges"`
	QuestionsAnswered int        `json:"questionsAnswered"`
	CorrectAnswers    int        `json:"correctAnswers"`
	Streak            int        `json:"streak"`
}

// InitialProgress returns a fresh zero-state progress
func InitialProgress() UserProgress {
	return UserProgress{
		Level:  DifficultyBeginner,
		Badges: []string{},
	}
}

// HasBadge reports whether the badge has already been earned
func (p UserProgress) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// Accuracy returns the fraction of answered questions that were correct,
// or 0 when nothing has been answered yet
func (p UserProgress) Accuracy() float64 {
	if p.QuestionsAnswered == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.QuestionsAnswered)
}

// Badge describes an earnable badge for display purposes
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement string `json:"requirement"`
}
