package service

import "radaquest/internal/models"

// Badge names. Streak and level badges match on exact equality, and the
// not-already-held guard makes every badge fire at most once per session.
const (
	BadgeFirstSteps     = "First Steps"
	BadgePerfectScore   = "Perfect Score"
	BadgeHotStreak      = "Hot Streak"
	BadgeOnFire         = "On Fire"
	BadgePointCollector = "Point Collector"
	BadgePointMaster    = "Point Master"
	BadgePointLegend    = "Point Legend"
	BadgeLevelUp        = "Level Up"
	BadgeCyberExpert    = "Cyber Expert"
	BadgeMultiSelector  = "Multi-Selector"
	BadgeDragMaster     = "Drag Master"
)

// Level thresholds on total points
const (
	intermediateThreshold = 100
	expertThreshold       = 250
)

// BadgeCatalog lists every earnable badge for display purposes
var BadgeCatalog = []models.Badge{
	{Name: BadgeFirstSteps, Description: "Answered your first question", Icon: "footprints", Requirement: "Answer 1 question"},
	{Name: BadgePerfectScore, Description: "Every answer correct", Icon: "target", Requirement: "5+ questions, all correct"},
	{Name: BadgeHotStreak, Description: "Five correct answers in a row", Icon: "flame", Requirement: "Streak of 5"},
	{Name: BadgeOnFire, Description: "Ten correct answers in a row", Icon: "fire", Requirement: "Streak of 10"},
	{Name: BadgePointCollector, Description: "Collected 50 points", Icon: "coins", Requirement: "50 points"},
	{Name: BadgePointMaster, Description: "Collected 150 points", Icon: "gem", Requirement: "150 points"},
	{Name: BadgePointLegend, Description: "Collected 300 points", Icon: "crown", Requirement: "300 points"},
	{Name: BadgeLevelUp, Description: "Reached intermediate level", Icon: "arrow-up", Requirement: "Reach intermediate"},
	{Name: BadgeCyberExpert, Description: "Reached expert level", Icon: "shield", Requirement: "Reach expert"},
	{Name: BadgeMultiSelector, Description: "Answered a multi-select question", Icon: "list-checks", Requirement: "Answer an msq question"},
	{Name: BadgeDragMaster, Description: "Answered a drag-and-drop question", Icon: "hand", Requirement: "Answer a drag-drop question"},
}

// CalculateLevel derives the user level from total points
func CalculateLevel(totalPoints int) models.Difficulty {
	if totalPoints >= expertThreshold {
		return models.DifficultyExpert
	}
	if totalPoints >= intermediateThreshold {
		return models.DifficultyIntermediate
	}
	return models.DifficultyBeginner
}

// UpdateProgress folds a grading outcome into the running progress. It is
// pure and total: the input progress is never mutated.
func UpdateProgress(progress models.UserProgress, isCorrect bool, points int, question models.Question) models.UserProgress {
	return UpdateProgressWithFloor(progress, isCorrect, points, question, models.DifficultyBeginner)
}

// UpdateProgressWithFloor is UpdateProgress with a pinned minimum level:
// the derived level is clamped to max(formula level, floor). The floor is
// a floor only, it never prevents the formula from exceeding it.
func UpdateProgressWithFloor(progress models.UserProgress, isCorrect bool, points int, question models.Question, floor models.Difficulty) models.UserProgress {
	updated := models.UserProgress{
		TotalPoints:       progress.TotalPoints + points,
		Badges:            append([]string{}, progress.Badges...),
		QuestionsAnswered: progress.QuestionsAnswered + 1,
	}
	updated.Level = models.MaxDifficulty(CalculateLevel(updated.TotalPoints), floor)
	if isCorrect {
		updated.CorrectAnswers = progress.CorrectAnswers + 1
		updated.Streak = progress.Streak + 1
	} else {
		updated.CorrectAnswers = progress.CorrectAnswers
		updated.Streak = 0
	}

	updated.Badges = append(updated.Badges, checkBadges(updated, question)...)
	return updated
}

// checkBadges returns the badges newly earned by the updated progress.
// Badges already held are never returned, so the set is strictly additive.
func checkBadges(progress models.UserProgress, question models.Question) []string {
	var earned []string
	award := func(name string, condition bool) {
		if condition && !progress.HasBadge(name) {
			earned = append(earned, name)
		}
	}

	award(BadgeFirstSteps, progress.QuestionsAnswered == 1)
	award(BadgePerfectScore, progress.QuestionsAnswered >= 5 && progress.CorrectAnswers == progress.QuestionsAnswered)
	award(BadgeHotStreak, progress.Streak == 5)
	award(BadgeOnFire, progress.Streak == 10)
	award(BadgePointCollector, progress.TotalPoints >= 50)
	award(BadgePointMaster, progress.TotalPoints >= 150)
	award(BadgePointLegend, progress.TotalPoints >= 300)
	award(BadgeLevelUp, progress.Level == models.DifficultyIntermediate)
	award(BadgeCyberExpert, progress.Level == models.DifficultyExpert)

	questionType := question.Base().Type
	award(BadgeMultiSelector, questionType == models.TypeMSQ)
	award(BadgeDragMaster, questionType == models.TypeDragDrop)

	return earned
}
