package models

import "fmt"

// ContentError marks a question that violates a data-model invariant.
// Such questions are refused at load time and never graded.
type ContentError struct {
	QuestionID string
	Reason     string
}

func (e *ContentError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("invalid question: %s", e.Reason)
	}
	return fmt.Sprintf("invalid question %q: %s", e.QuestionID, e.Reason)
}

// TypeMismatchError indicates a response whose shape does not match the
// question variant it was graded against. This is a caller bug, not a
// user-facing condition.
type TypeMismatchError struct {
	QuestionID   string
	QuestionType QuestionType
	Response     Response
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("response %T does not match %s question %q", e.Response, e.QuestionType, e.QuestionID)
}
