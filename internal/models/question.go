package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionType identifies the interaction variant of a question
type QuestionType string

const (
	TypeMSQ         QuestionType = "msq"
	TypeClickSelect QuestionType = "click-select"
	TypeDragDrop    QuestionType = "drag-drop"
	TypeWordGrid    QuestionType = "sudoku"
)

// Difficulty represents a question difficulty or user level
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
)

// Rank returns the ordering of a difficulty (beginner < intermediate < expert)
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyIntermediate:
		return 1
	case DifficultyExpert:
		return 2
	default:
		return 0
	}
}

// IsValid reports whether the difficulty is one of the known levels
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert:
		return true
	}
	return false
}

// MaxDifficulty returns the higher of two difficulties
func MaxDifficulty(a, b Difficulty) Difficulty {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// BaseQuestion holds the fields shared by every question variant
type BaseQuestion struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Difficulty  Difficulty   `json:"difficulty"`
	Prompt      string       `json:"question"`
	Explanation string       `json:"explanation"`
	Points      int          `json:"points"`
}

// Base returns the shared question fields
func (b BaseQuestion) Base() BaseQuestion {
	return b
}

func (b BaseQuestion) validateBase() error {
	if b.ID == "" {
		return &ContentError{QuestionID: b.ID, Reason: "missing question id"}
	}
	if !b.Difficulty.IsValid() {
		return &ContentError{QuestionID: b.ID, Reason: fmt.Sprintf("unknown difficulty %q", b.Difficulty)}
	}
	if b.Prompt == "" {
		return &ContentError{QuestionID: b.ID, Reason: "missing question text"}
	}
	if b.Points <= 0 {
		return &ContentError{QuestionID: b.ID, Reason: fmt.Sprintf("point value must be positive, got %d", b.Points)}
	}
	return nil
}

// Question is the tagged union over the four interaction variants.
// Grading dispatches on the concrete type.
type Question interface {
	Base() BaseQuestion
	Validate() error
}

// Option is a selectable answer choice for msq and click-select questions
type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// MSQQuestion allows multiple selections; zero or more options are correct
type MSQQuestion struct {
	BaseQuestion
	Options []Option `json:"options"`
}

// Validate checks the msq invariants at load time
func (q *MSQQuestion) Validate() error {
	if err := q.validateBase(); err != nil {
		return err
	}
	return validateOptions(q.ID, q.Options)
}

// ClickSelectQuestion has exactly one correct option
type ClickSelectQuestion struct {
	BaseQuestion
	Options []Option `json:"options"`
}

// Validate checks the click-select invariants at load time
func (q *ClickSelectQuestion) Validate() error {
	if err := q.validateBase(); err != nil {
		return err
	}
	if err := validateOptions(q.ID, q.Options); err != nil {
		return err
	}
	correct := 0
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("click-select needs exactly one correct option, got %d", correct)}
	}
	return nil
}

func validateOptions(questionID string, options []Option) error {
	if len(options) == 0 {
		return &ContentError{QuestionID: questionID, Reason: "question has no options"}
	}
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if opt.ID == "" {
			return &ContentError{QuestionID: questionID, Reason: "option with empty id"}
		}
		if seen[opt.ID] {
			return &ContentError{QuestionID: questionID, Reason: fmt.Sprintf("duplicate option id %q", opt.ID)}
		}
		seen[opt.ID] = true
	}
	return nil
}

// DragItem is a draggable item that belongs to exactly one category
type DragItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// DragCategory is a drop target for drag-drop questions
type DragCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DragDropQuestion asks the user to sort items into categories
type DragDropQuestion struct {
	BaseQuestion
	Items      []DragItem     `json:"items"`
	Categories []DragCategory `json:"categories"`
}

// Validate checks that every item references an existing category and that
// item and category ids are unique
func (q *DragDropQuestion) Validate() error {
	if err := q.validateBase(); err != nil {
		return err
	}
	if len(q.Items) == 0 || len(q.Categories) == 0 {
		return &ContentError{QuestionID: q.ID, Reason: "drag-drop question needs items and categories"}
	}
	categories := make(map[string]bool, len(q.Categories))
	for _, cat := range q.Categories {
		if cat.ID == "" {
			return &ContentError{QuestionID: q.ID, Reason: "category with empty id"}
		}
		if categories[cat.ID] {
			return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("duplicate category id %q", cat.ID)}
		}
		categories[cat.ID] = true
	}
	items := make(map[string]bool, len(q.Items))
	for _, item := range q.Items {
		if item.ID == "" {
			return &ContentError{QuestionID: q.ID, Reason: "item with empty id"}
		}
		if items[item.ID] {
			return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("duplicate item id %q", item.ID)}
		}
		items[item.ID] = true
		if !categories[item.Category] {
			return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("item %q references unknown category %q", item.ID, item.Category)}
		}
	}
	return nil
}

// Direction is the orientation of a word placement in the grid
type Direction string

const (
	DirectionAcross Direction = "across"
	DirectionDown   Direction = "down"
)

// GridPosition is the starting cell and orientation of a term
type GridPosition struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
}

// Term is a word hidden in the grid together with its clue and placement
type Term struct {
	Word     string       `json:"word"`
	Clue     string       `json:"clue"`
	Position GridPosition `json:"position"`
}

// WordGridQuestion is the word-fill puzzle variant. Grid cells are either a
// fixed pre-filled letter or nil (fillable by the user). Solution cells that
// are nil mark filler cells that never affect grading.
type WordGridQuestion struct {
	BaseQuestion
	Grid     [][]*string `json:"grid"`
	Solution [][]*string `json:"solution"`
	Terms    []Term      `json:"terms"`
	Hints    []string    `json:"hints,omitempty"`
}

// Validate checks grid/solution dimensions, that pre-filled cells agree with
// the solution, and that tracing every term over the solution yields the
// term's letters
func (q *WordGridQuestion) Validate() error {
	if err := q.validateBase(); err != nil {
		return err
	}
	if len(q.Grid) == 0 || len(q.Grid) != len(q.Solution) {
		return &ContentError{QuestionID: q.ID, Reason: "grid and solution dimensions do not match"}
	}
	for r := range q.Grid {
		if len(q.Grid[r]) != len(q.Solution[r]) {
			return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("grid and solution differ in row %d", r)}
		}
		for c := range q.Grid[r] {
			if q.Grid[r][c] == nil {
				continue
			}
			if q.Solution[r][c] == nil || !strings.EqualFold(*q.Grid[r][c], *q.Solution[r][c]) {
				return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("pre-filled cell (%d,%d) disagrees with solution", r, c)}
			}
		}
	}
	if len(q.Terms) == 0 {
		return &ContentError{QuestionID: q.ID, Reason: "word-grid question has no terms"}
	}
	for _, term := range q.Terms {
		if term.Word == "" {
			return &ContentError{QuestionID: q.ID, Reason: "term with empty word"}
		}
		for i := 0; i < len(term.Word); i++ {
			r, c := term.Position.Row, term.Position.Col
			switch term.Position.Direction {
			case DirectionAcross:
				c += i
			case DirectionDown:
				r += i
			default:
				return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("term %q has unknown direction %q", term.Word, term.Position.Direction)}
			}
			if r >= len(q.Solution) || c >= len(q.Solution[r]) || r < 0 || c < 0 {
				return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("term %q runs off the grid", term.Word)}
			}
			cell := q.Solution[r][c]
			if cell == nil || !strings.EqualFold(*cell, string(term.Word[i])) {
				return &ContentError{QuestionID: q.ID, Reason: fmt.Sprintf("term %q does not match solution at (%d,%d)", term.Word, r, c)}
			}
		}
	}
	return nil
}

// TermAt returns the first term whose placement covers the given cell, or
// nil when the cell belongs to no term
func (q *WordGridQuestion) TermAt(row, col int) *Term {
	for i := range q.Terms {
		term := &q.Terms[i]
		pos := term.Position
		switch pos.Direction {
		case DirectionAcross:
			if pos.Row == row && col >= pos.Col && col < pos.Col+len(term.Word) {
				return term
			}
		case DirectionDown:
			if pos.Col == col && row >= pos.Row && row < pos.Row+len(term.Word) {
				return term
			}
		}
	}
	return nil
}

// DecodeQuestion unmarshals a single question, dispatching on its "type"
// field. Unknown types are a content error.
func DecodeQuestion(data []byte) (Question, error) {
	var probe struct {
		ID   string       `json:"id"`
		Type QuestionType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode question: %w", err)
	}

	var q Question
	switch probe.Type {
	case TypeMSQ:
		q = &MSQQuestion{}
	case TypeClickSelect:
		q = &ClickSelectQuestion{}
	case TypeDragDrop:
		q = &DragDropQuestion{}
	case TypeWordGrid:
		q = &WordGridQuestion{}
	default:
		return nil, &ContentError{QuestionID: probe.ID, Reason: fmt.Sprintf("unknown question type %q", probe.Type)}
	}
	if err := json.Unmarshal(data, q); err != nil {
		return nil, fmt.Errorf("failed to decode %s question: %w", probe.Type, err)
	}
	return q, nil
}

// Letter is a convenience for building grid literals
func Letter(s string) *string {
	return &s
}
