package database

import (
	"fmt"

	"github.com/example/norskbot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// TestRepository handles database operations for grammar test questions
type TestRepository struct {
	db *sqlx.DB
}

// NewTestRepository creates a new repository instance
func NewTestRepository(db *sqlx.DB) *TestRepository {
	return &TestRepository{db: db}
}

// GetByTestType returns all questions for a test type in insertion order,
// so repeated sessions replay the same deterministic sequence
func (r *TestRepository) GetByTestType(testType string) ([]models.Question, error) {
	query := `
		SELECT id, question, correct_answer, options, test_type, theme_id
		FROM tests
		WHERE test_type = ?
		ORDER BY id
	`
	if r.db.DriverName() == "postgres" {
		query = sqlx.Rebind(sqlx.DOLLAR, query)
	}

	var questions []models.Question
	if err := r.db.Select(&questions, query, testType); err != nil {
		return nil, fmt.Errorf("failed to get questions for %q: %v", testType, err)
	}
	return questions, nil
}

// ReplaceAll clears the tests table and inserts the given questions in order
func (r *TestRepository) ReplaceAll(questions []models.Question) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tests"); err != nil {
		return fmt.Errorf("failed to clear tests: %v", err)
	}

	query := `
		INSERT INTO tests (question, correct_answer, options, test_type, theme_id)
		VALUES (?, ?, ?, ?, ?)
	`
	if r.db.DriverName() == "postgres" {
		query = sqlx.Rebind(sqlx.DOLLAR, query)
	}

	for _, q := range questions {
		_, err := tx.Exec(query, q.Question, q.CorrectAnswer, q.Options, q.TestType, q.ThemeID)
		if err != nil {
			return fmt.Errorf("failed to insert question %q: %v", q.Question, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit test replace: %v", err)
	}
	return nil
}
