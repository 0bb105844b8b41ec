package service

import (
	"testing"

	"radaquest/internal/models"
)

func pointsQuestion(id string, points int) *models.ClickSelectQuestion {
	return &models.ClickSelectQuestion{
		BaseQuestion: models.BaseQuestion{
			ID:         id,
			Type:       models.TypeClickSelect,
			Difficulty: models.DifficultyBeginner,
			Prompt:     "Pick one",
			Points:     points,
		},
		Options: []models.Option{
			{ID: "a", Text: "A", IsCorrect: true},
			{ID: "b", Text: "B"},
		},
	}
}

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		points int
		want   models.Difficulty
	}{
		{points: 0, want: models.DifficultyBeginner},
		{points: 99, want: models.DifficultyBeginner},
		{points: 100, want: models.DifficultyIntermediate},
		{points: 249, want: models.DifficultyIntermediate},
		{points: 250, want: models.DifficultyExpert},
		{points: 1000, want: models.DifficultyExpert},
	}

	for _, tt := range tests {
		if got := CalculateLevel(tt.points); got != tt.want {
			t.Errorf("CalculateLevel(%d) = %v, want %v", tt.points, got, tt.want)
		}
	}
}

func TestFirstCorrectAnswer(t *testing.T) {
	q := msqFixture()
	p := UpdateProgress(models.InitialProgress(), true, 20, q)

	if p.TotalPoints != 20 {
		t.Errorf("TotalPoints = %d, want 20", p.TotalPoints)
	}
	if p.QuestionsAnswered != 1 || p.CorrectAnswers != 1 || p.Streak != 1 {
		t.Errorf("counters = %d answered, %d correct, %d streak; want 1,1,1",
			p.QuestionsAnswered, p.CorrectAnswers, p.Streak)
	}
	if p.Level != models.DifficultyBeginner {
		t.Errorf("Level = %v, want beginner", p.Level)
	}
	if !p.HasBadge(BadgeFirstSteps) {
		t.Error("First Steps badge not awarded on first answer")
	}
	if !p.HasBadge(BadgeMultiSelector) {
		t.Error("Multi-Selector badge not awarded for msq question")
	}
}

func TestLevelUpAtHundredPoints(t *testing.T) {
	start := models.UserProgress{
		TotalPoints:       90,
		Level:             models.DifficultyBeginner,
		Badges:            []string{BadgeFirstSteps, BadgePointCollector},
		QuestionsAnswered: 6,
		CorrectAnswers:    5,
		Streak:            2,
	}

	p := UpdateProgress(start, true, 15, pointsQuestion("q", 15))

	if p.TotalPoints != 105 {
		t.Errorf("TotalPoints = %d, want 105", p.TotalPoints)
	}
	if p.Level != models.DifficultyIntermediate {
		t.Errorf("Level = %v, want intermediate", p.Level)
	}
	if !p.HasBadge(BadgeLevelUp) {
		t.Error("Level Up badge not awarded on reaching intermediate")
	}
	// Already held badges are kept, not duplicated
	count := 0
	for _, b := range p.Badges {
		if b == BadgePointCollector {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Point Collector appears %d times, want 1", count)
	}
}

func TestStreakBadgeSurvivesReset(t *testing.T) {
	q := pointsQuestion("q", 10)
	p := models.InitialProgress()

	for i := 0; i < 5; i++ {
		p = UpdateProgress(p, true, 10, q)
	}
	if p.Streak != 5 {
		t.Fatalf("Streak = %d, want 5", p.Streak)
	}
	if !p.HasBadge(BadgeHotStreak) {
		t.Fatal("Hot Streak badge not awarded at streak 5")
	}

	p = UpdateProgress(p, false, 0, q)
	if p.Streak != 0 {
		t.Errorf("Streak = %d after incorrect answer, want 0", p.Streak)
	}
	if !p.HasBadge(BadgeHotStreak) {
		t.Error("Hot Streak badge was removed on streak reset")
	}
}

func TestBadgeFiresAtMostOnce(t *testing.T) {
	q := pointsQuestion("q", 10)
	p := models.InitialProgress()

	// Reach streak 5 twice in one session
	for i := 0; i < 5; i++ {
		p = UpdateProgress(p, true, 10, q)
	}
	p = UpdateProgress(p, false, 0, q)
	for i := 0; i < 5; i++ {
		p = UpdateProgress(p, true, 10, q)
	}

	count := 0
	for _, b := range p.Badges {
		if b == BadgeHotStreak {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Hot Streak awarded %d times, want 1", count)
	}
}

func TestOnFireAtStreakTen(t *testing.T) {
	q := pointsQuestion("q", 5)
	p := models.InitialProgress()
	for i := 0; i < 10; i++ {
		p = UpdateProgress(p, true, 5, q)
	}
	if !p.HasBadge(BadgeOnFire) {
		t.Error("On Fire badge not awarded at streak 10")
	}
}

func TestPointBadgeThresholds(t *testing.T) {
	q := pointsQuestion("q", 0)

	tests := []struct {
		points int
		badge  string
		want   bool
	}{
		{points: 49, badge: BadgePointCollector, want: false},
		{points: 50, badge: BadgePointCollector, want: true},
		{points: 150, badge: BadgePointMaster, want: true},
		{points: 300, badge: BadgePointLegend, want: true},
		{points: 299, badge: BadgePointLegend, want: false},
	}

	for _, tt := range tests {
		p := UpdateProgress(models.InitialProgress(), true, tt.points, q)
		if got := p.HasBadge(tt.badge); got != tt.want {
			t.Errorf("at %d points, HasBadge(%s) = %v, want %v", tt.points, tt.badge, got, tt.want)
		}
	}
}

// Total points accumulate commutatively: answering A then B yields the same
// total as B then A. Streak and badge order remain sequence-dependent.
func TestTotalPointsOrderIndependent(t *testing.T) {
	qa := pointsQuestion("a", 15)
	qb := pointsQuestion("b", 40)

	ab := UpdateProgress(UpdateProgress(models.InitialProgress(), true, 15, qa), false, 0, qb)
	ba := UpdateProgress(UpdateProgress(models.InitialProgress(), false, 0, qb), true, 15, qa)

	if ab.TotalPoints != ba.TotalPoints {
		t.Errorf("TotalPoints order-dependent: A,B=%d B,A=%d", ab.TotalPoints, ba.TotalPoints)
	}
}

func TestLevelFloorIsNeverUndercut(t *testing.T) {
	q := pointsQuestion("q", 5)
	p := models.InitialProgress()

	for i := 0; i < 4; i++ {
		p = UpdateProgressWithFloor(p, true, 5, q, models.DifficultyIntermediate)
		if p.Level.Rank() < models.DifficultyIntermediate.Rank() {
			t.Fatalf("Level = %v dropped below pinned minimum", p.Level)
		}
	}
}

func TestLevelFloorIsNotACeiling(t *testing.T) {
	q := pointsQuestion("q", 300)
	p := UpdateProgressWithFloor(models.InitialProgress(), true, 300, q, models.DifficultyIntermediate)
	if p.Level != models.DifficultyExpert {
		t.Errorf("Level = %v, want expert: the floor must not cap the formula", p.Level)
	}
	if !p.HasBadge(BadgeCyberExpert) {
		t.Error("Cyber Expert badge not awarded at expert level")
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	q := pointsQuestion("q", 10)
	before := models.UserProgress{
		TotalPoints: 10,
		Level:       models.DifficultyBeginner,
		Badges:      []string{BadgeFirstSteps},
		Streak:      1,
	}

	_ = UpdateProgress(before, true, 10, q)

	if before.TotalPoints != 10 || before.Streak != 1 || len(before.Badges) != 1 {
		t.Errorf("input progress was mutated: %+v", before)
	}
}

func TestPerfectScoreNeedsFiveAnswers(t *testing.T) {
	q := pointsQuestion("q", 1)
	p := models.InitialProgress()

	for i := 0; i < 4; i++ {
		p = UpdateProgress(p, true, 1, q)
		if p.HasBadge(BadgePerfectScore) {
			t.Fatalf("Perfect Score awarded after only %d answers", i+1)
		}
	}
	p = UpdateProgress(p, true, 1, q)
	if !p.HasBadge(BadgePerfectScore) {
		t.Error("Perfect Score not awarded after 5 straight correct answers")
	}
}

func TestBadgeCatalogCoversEveryBadge(t *testing.T) {
	names := map[string]bool{}
	for _, b := range BadgeCatalog {
		names[b.Name] = true
	}
	for _, want := range []string{
		BadgeFirstSteps, BadgePerfectScore, BadgeHotStreak, BadgeOnFire,
		BadgePointCollector, BadgePointMaster, BadgePointLegend,
		BadgeLevelUp, BadgeCyberExpert, BadgeMultiSelector, BadgeDragMaster,
	} {
		if !names[want] {
			t.Errorf("badge catalog is missing %q", want)
		}
	}
}
