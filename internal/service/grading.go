package service

import (
	"errors"
	"fmt"
	"strings"

	"radaquest/internal/models"
)

// ErrIncompleteResponse is returned when a response is missing required
// selections or placements. The caller must block submission until the
// response is complete.
var ErrIncompleteResponse = errors.New("incomplete response")

// GradeResult is the outcome of grading a single question
type GradeResult struct {
	Correct       bool
	PointsAwarded int
}

// Grade decides correctness and points for a question/response pair. It is
// a pure function: no partial credit, full points on a correct answer and
// zero otherwise.
func Grade(question models.Question, response models.Response) (GradeResult, error) {
	switch q := question.(type) {
	case *models.MSQQuestion:
		resp, ok := response.(*models.SelectionResponse)
		if !ok {
			return GradeResult{}, mismatch(question, response)
		}
		return gradeMSQ(q, resp)
	case *models.ClickSelectQuestion:
		resp, ok := response.(*models.SelectionResponse)
		if !ok {
			return GradeResult{}, mismatch(question, response)
		}
		return gradeClickSelect(q, resp)
	case *models.DragDropQuestion:
		resp, ok := response.(*models.PlacementResponse)
		if !ok {
			return GradeResult{}, mismatch(question, response)
		}
		return gradeDragDrop(q, resp)
	case *models.WordGridQuestion:
		resp, ok := response.(*models.GridResponse)
		if !ok {
			return GradeResult{}, mismatch(question, response)
		}
		return gradeWordGrid(q, resp)
	default:
		return GradeResult{}, fmt.Errorf("unsupported question type %T", question)
	}
}

func mismatch(q models.Question, resp models.Response) error {
	base := q.Base()
	return &models.TypeMismatchError{QuestionID: base.ID, QuestionType: base.Type, Response: resp}
}

func result(correct bool, points int) GradeResult {
	if !correct {
		return GradeResult{}
	}
	return GradeResult{Correct: true, PointsAwarded: points}
}

// gradeMSQ requires the selected set to equal the correct set exactly.
// Missing a correct option or selecting an incorrect one both fail.
func gradeMSQ(q *models.MSQQuestion, resp *models.SelectionResponse) (GradeResult, error) {
	if len(resp.OptionIDs) == 0 {
		return GradeResult{}, fmt.Errorf("%w: at least one option must be selected", ErrIncompleteResponse)
	}

	correct := make(map[string]bool)
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correct[opt.ID] = true
		}
	}

	selected := make(map[string]bool, len(resp.OptionIDs))
	for _, id := range resp.OptionIDs {
		selected[id] = true
	}

	if len(selected) != len(correct) {
		return result(false, 0), nil
	}
	for id := range selected {
		if !correct[id] {
			return result(false, 0), nil
		}
	}
	return result(true, q.Points), nil
}

// gradeClickSelect requires exactly one selection; it is correct when the
// chosen option carries the isCorrect flag
func gradeClickSelect(q *models.ClickSelectQuestion, resp *models.SelectionResponse) (GradeResult, error) {
	if len(resp.OptionIDs) != 1 {
		return GradeResult{}, fmt.Errorf("%w: exactly one option must be selected, got %d", ErrIncompleteResponse, len(resp.OptionIDs))
	}
	for _, opt := range q.Options {
		if opt.ID == resp.OptionIDs[0] {
			return result(opt.IsCorrect, q.Points), nil
		}
	}
	// Selecting an id that is not part of the question grades incorrect
	return result(false, 0), nil
}

// gradeDragDrop is all-or-nothing: every item must be placed, and every
// placement must match the item's category
func gradeDragDrop(q *models.DragDropQuestion, resp *models.PlacementResponse) (GradeResult, error) {
	for _, item := range q.Items {
		if _, placed := resp.Placements[item.ID]; !placed {
			return GradeResult{}, fmt.Errorf("%w: item %q is not placed", ErrIncompleteResponse, item.ID)
		}
	}
	for _, item := range q.Items {
		if resp.Placements[item.ID] != item.Category {
			return result(false, 0), nil
		}
	}
	return result(true, q.Points), nil
}

// gradeWordGrid compares only cells where the solution holds a letter;
// filler cells never affect the verdict. Submission is always allowed for
// this variant, even with an empty grid.
func gradeWordGrid(q *models.WordGridQuestion, resp *models.GridResponse) (GradeResult, error) {
	if len(resp.Cells) != len(q.Solution) {
		return GradeResult{}, mismatch(q, resp)
	}
	for r := range q.Solution {
		if len(resp.Cells[r]) != len(q.Solution[r]) {
			return GradeResult{}, mismatch(q, resp)
		}
		for c := range q.Solution[r] {
			want := q.Solution[r][c]
			if want == nil {
				continue
			}
			got := resp.Cells[r][c]
			if got == nil || !strings.EqualFold(*got, *want) {
				return result(false, 0), nil
			}
		}
	}
	return result(true, q.Points), nil
}
