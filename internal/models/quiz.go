package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// QuizQuestion is a single multiple-choice question attached to a submission.
// CorrectAnswer indexes into Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizQuestions is the ordered question list stored as a jsonb column.
type QuizQuestions []QuizQuestion

// Value implements driver.Valuer for jsonb storage.
func (q QuizQuestions) Value() (driver.Value, error) {
	if q == nil {
		q = QuizQuestions{}
	}
	return json.Marshal(q)
}

// Scan implements sql.Scanner for jsonb columns.
func (q *QuizQuestions) Scan(src interface{}) error {
	if src == nil {
		*q = QuizQuestions{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported quiz_questions type %T", src)
	}
	if len(raw) == 0 {
		*q = QuizQuestions{}
		return nil
	}
	return json.Unmarshal(raw, q)
}
