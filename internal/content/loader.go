package content

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"radaquest/internal/models"
)

// LoadReport summarizes a question feed load
type LoadReport struct {
	Total   int      `json:"total"`
	Loaded  int      `json:"loaded"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// LoadQuestions decodes a JSON array of questions and validates each one
// exactly once. Questions that fail to decode or violate a model invariant
// are skipped and reported, never graded against.
func LoadQuestions(r io.Reader) ([]models.Question, *LoadReport, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("failed to decode question feed: %w", err)
	}

	report := &LoadReport{Total: len(raw)}
	questions := make([]models.Question, 0, len(raw))
	for i, entry := range raw {
		question, err := models.DecodeQuestion(entry)
		if err != nil {
			report.skip(i, err)
			continue
		}
		if err := question.Validate(); err != nil {
			report.skip(i, err)
			continue
		}
		questions = append(questions, question)
		report.Loaded++
	}
	return questions, report, nil
}

func (r *LoadReport) skip(index int, err error) {
	r.Skipped++
	r.Errors = append(r.Errors, err.Error())
	log.Printf("[CONTENT] skipping question %d: %v", index, err)
}
