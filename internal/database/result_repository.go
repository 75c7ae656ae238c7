package database

import (
	"fmt"
	"time"

	"github.com/example/norskbot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ResultRepository handles database operations for completed quiz results
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new repository instance
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create inserts a new quiz result
func (r *ResultRepository) Create(result *models.QuizResult) error {
	if result.TakenAt.IsZero() {
		result.TakenAt = time.Now()
	}

	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO quiz_results (test_type, total, correct, taken_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		err := r.db.QueryRow(query, result.TestType, result.Total, result.Correct, result.TakenAt).Scan(&result.ID)
		if err != nil {
			return fmt.Errorf("failed to create quiz result: %v", err)
		}
		return nil
	}

	res, err := r.db.Exec(
		"INSERT INTO quiz_results (test_type, total, correct, taken_at) VALUES (?, ?, ?, ?)",
		result.TestType, result.Total, result.Correct, result.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz result: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	result.ID = int(id)
	return nil
}

// GetRecent returns the most recent quiz results, newest first
func (r *ResultRepository) GetRecent(limit int) ([]models.QuizResult, error) {
	query := "SELECT id, test_type, total, correct, taken_at FROM quiz_results ORDER BY taken_at DESC, id DESC LIMIT ?"
	if r.db.DriverName() == "postgres" {
		query = sqlx.Rebind(sqlx.DOLLAR, query)
	}

	var results []models.QuizResult
	if err := r.db.Select(&results, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get quiz results: %v", err)
	}
	return results, nil
}
