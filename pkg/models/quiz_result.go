package models

import "time"

// QuizResult records the outcome of one completed quiz run
type QuizResult struct {
	ID       int       `json:"id" db:"id"`
	TestType string    `json:"test_type" db:"test_type"`
	Total    int       `json:"total" db:"total"`
	Correct  int       `json:"correct" db:"correct"`
	TakenAt  time.Time `json:"taken_at" db:"taken_at"`
}
