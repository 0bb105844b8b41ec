package models

// Response is the user's raw answer to a question. Each variant has its own
// shape; grading rejects a response whose shape does not match the question.
type Response interface {
	isResponse()
}

// SelectionResponse carries the selected option ids for msq and
// click-select questions
type SelectionResponse struct {
	OptionIDs []string
}

func (SelectionResponse) isResponse() {}

// PlacementResponse maps item ids to the category id the user placed them
// in. Items absent from the map are unplaced.
type PlacementResponse struct {
	Placements map[string]string
}

func (PlacementResponse) isResponse() {}

// GridResponse is a snapshot of the filled word grid. Empty cells are nil.
type GridResponse struct {
	Cells [][]*string
}

func (GridResponse) isResponse() {}
