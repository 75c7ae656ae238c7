package models

import (
	"database/sql"
	"strings"
)

// Question represents one multiple-choice quiz item
type Question struct {
	ID            int           `json:"id" db:"id"`
	Question      string        `json:"question" db:"question"`
	CorrectAnswer string        `json:"correct_answer" db:"correct_answer"`
	Options       string        `json:"options" db:"options"` // joined by ListSeparator
	TestType      string        `json:"test_type" db:"test_type"`
	ThemeID       sql.NullInt64 `json:"theme_id" db:"theme_id"`
}

// OptionList returns the answer options in stored order
func (q *Question) OptionList() []string {
	if q.Options == "" {
		return nil
	}
	return strings.Split(q.Options, ListSeparator)
}

// SetOptions serializes the answer options into the stored column format
func (q *Question) SetOptions(options []string) {
	q.Options = strings.Join(options, ListSeparator)
}
