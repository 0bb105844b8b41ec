package service

import (
	"errors"
	"testing"

	"radaquest/internal/models"
)

func msqFixture() *models.MSQQuestion {
	return &models.MSQQuestion{
		BaseQuestion: models.BaseQuestion{
			ID:         "msq1",
			Type:       models.TypeMSQ,
			Difficulty: models.DifficultyBeginner,
			Prompt:     "Pick the correct options",
			Points:     20,
		},
		Options: []models.Option{
			{ID: "a", Text: "A", IsCorrect: true},
			{ID: "b", Text: "B", IsCorrect: true},
			{ID: "c", Text: "C", IsCorrect: false},
			{ID: "d", Text: "D", IsCorrect: false},
		},
	}
}

func clickSelectFixture() *models.ClickSelectQuestion {
	return &models.ClickSelectQuestion{
		BaseQuestion: models.BaseQuestion{
			ID:         "click1",
			Type:       models.TypeClickSelect,
			Difficulty: models.DifficultyBeginner,
			Prompt:     "Pick one",
			Points:     10,
		},
		Options: []models.Option{
			{ID: "a", Text: "A", IsCorrect: false},
			{ID: "b", Text: "B", IsCorrect: true},
			{ID: "c", Text: "C", IsCorrect: false},
		},
	}
}

func dragDropFixture() *models.DragDropQuestion {
	return &models.DragDropQuestion{
		BaseQuestion: models.BaseQuestion{
			ID:         "drag1",
			Type:       models.TypeDragDrop,
			Difficulty: models.DifficultyIntermediate,
			Prompt:     "Sort the items",
			Points:     30,
		},
		Items: []models.DragItem{
			{ID: "i1", Text: "One", Category: "c1"},
			{ID: "i2", Text: "Two", Category: "c2"},
			{ID: "i3", Text: "Three", Category: "c1"},
		},
		Categories: []models.DragCategory{
			{ID: "c1", Name: "First"},
			{ID: "c2", Name: "Second"},
		},
	}
}

func wordGridQuestionFixture() *models.WordGridQuestion {
	l := models.Letter
	return &models.WordGridQuestion{
		BaseQuestion: models.BaseQuestion{
			ID:         "grid1",
			Type:       models.TypeWordGrid,
			Difficulty: models.DifficultyExpert,
			Prompt:     "Fill the grid",
			Points:     25,
		},
		Grid: [][]*string{
			{nil, nil},
			{nil, nil},
		},
		Solution: [][]*string{
			{l("N"), l("O")},
			{nil, nil},
		},
		Terms: []models.Term{
			{Word: "NO", Clue: "negative", Position: models.GridPosition{Row: 0, Col: 0, Direction: models.DirectionAcross}},
		},
	}
}

func TestGradeMSQ(t *testing.T) {
	q := msqFixture()

	tests := []struct {
		name        string
		selected    []string
		wantCorrect bool
	}{
		{name: "exact correct set", selected: []string{"a", "b"}, wantCorrect: true},
		{name: "order does not matter", selected: []string{"b", "a"}, wantCorrect: true},
		{name: "subset of correct gets no credit", selected: []string{"a"}, wantCorrect: false},
		{name: "superset fails", selected: []string{"a", "b", "c"}, wantCorrect: false},
		{name: "wrong option", selected: []string{"c", "d"}, wantCorrect: false},
		{name: "duplicate selections collapse", selected: []string{"a", "a", "b"}, wantCorrect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grade(q, &models.SelectionResponse{OptionIDs: tt.selected})
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("Grade() correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
			wantPoints := 0
			if tt.wantCorrect {
				wantPoints = q.Points
			}
			if got.PointsAwarded != wantPoints {
				t.Errorf("Grade() points = %d, want %d", got.PointsAwarded, wantPoints)
			}
		})
	}
}

func TestGradeMSQEmptySelection(t *testing.T) {
	_, err := Grade(msqFixture(), &models.SelectionResponse{})
	if !errors.Is(err, ErrIncompleteResponse) {
		t.Errorf("Grade() error = %v, want ErrIncompleteResponse", err)
	}
}

func TestGradeClickSelect(t *testing.T) {
	q := clickSelectFixture()

	tests := []struct {
		name        string
		selected    []string
		wantCorrect bool
		wantErr     bool
	}{
		{name: "correct option", selected: []string{"b"}, wantCorrect: true},
		{name: "incorrect option", selected: []string{"a"}},
		{name: "unknown option id grades incorrect", selected: []string{"zzz"}},
		{name: "no selection", selected: nil, wantErr: true},
		{name: "two selections", selected: []string{"a", "b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grade(q, &models.SelectionResponse{OptionIDs: tt.selected})
			if tt.wantErr {
				if !errors.Is(err, ErrIncompleteResponse) {
					t.Errorf("Grade() error = %v, want ErrIncompleteResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("Grade() correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
		})
	}
}

func TestGradeDragDrop(t *testing.T) {
	q := dragDropFixture()

	tests := []struct {
		name        string
		placements  map[string]string
		wantCorrect bool
		wantErr     bool
	}{
		{
			name:        "all placed correctly",
			placements:  map[string]string{"i1": "c1", "i2": "c2", "i3": "c1"},
			wantCorrect: true,
		},
		{
			name:       "one of three misplaced fails the whole question",
			placements: map[string]string{"i1": "c1", "i2": "c2", "i3": "c2"},
		},
		{
			name:       "all misplaced",
			placements: map[string]string{"i1": "c2", "i2": "c1", "i3": "c2"},
		},
		{
			name:       "unplaced item blocks submission",
			placements: map[string]string{"i1": "c1", "i2": "c2"},
			wantErr:    true,
		},
		{
			name:       "nothing placed",
			placements: map[string]string{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grade(q, &models.PlacementResponse{Placements: tt.placements})
			if tt.wantErr {
				if !errors.Is(err, ErrIncompleteResponse) {
					t.Errorf("Grade() error = %v, want ErrIncompleteResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("Grade() correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
			if !tt.wantCorrect && got.PointsAwarded != 0 {
				t.Errorf("Grade() awarded %d points for an incorrect answer", got.PointsAwarded)
			}
		})
	}
}

func TestGradeWordGrid(t *testing.T) {
	l := models.Letter
	q := wordGridQuestionFixture()

	tests := []struct {
		name        string
		cells       [][]*string
		wantCorrect bool
	}{
		{
			name:        "solution filled",
			cells:       [][]*string{{l("N"), l("O")}, {nil, nil}},
			wantCorrect: true,
		},
		{
			name:        "lowercase letters still match",
			cells:       [][]*string{{l("n"), l("o")}, {nil, nil}},
			wantCorrect: true,
		},
		{
			name:        "filler cells never affect the verdict",
			cells:       [][]*string{{l("N"), l("O")}, {l("X"), l("Y")}},
			wantCorrect: true,
		},
		{
			name:  "wrong letter",
			cells: [][]*string{{l("N"), l("A")}, {nil, nil}},
		},
		{
			name:  "empty grid may be submitted and grades incorrect",
			cells: [][]*string{{nil, nil}, {nil, nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grade(q, &models.GridResponse{Cells: tt.cells})
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("Grade() correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
		})
	}
}

func TestGradeTypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		question models.Question
		response models.Response
	}{
		{name: "placement against msq", question: msqFixture(), response: &models.PlacementResponse{}},
		{name: "grid against click-select", question: clickSelectFixture(), response: &models.GridResponse{}},
		{name: "selection against drag-drop", question: dragDropFixture(), response: &models.SelectionResponse{OptionIDs: []string{"a"}}},
		{name: "selection against word grid", question: wordGridQuestionFixture(), response: &models.SelectionResponse{OptionIDs: []string{"a"}}},
		{
			name:     "wrong grid dimensions",
			question: wordGridQuestionFixture(),
			response: &models.GridResponse{Cells: [][]*string{{nil}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Grade(tt.question, tt.response)
			var mismatchErr *models.TypeMismatchError
			if !errors.As(err, &mismatchErr) {
				t.Errorf("Grade() error = %v, want TypeMismatchError", err)
			}
		})
	}
}
