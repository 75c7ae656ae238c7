package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/example/norskbot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ErrVerbNotFound is returned when no verb matches a lookup key
var ErrVerbNotFound = errors.New("verb not found")

// VerbRepository handles database operations for verb conjugations
type VerbRepository struct {
	db *sqlx.DB
}

// NewVerbRepository creates a new repository instance
func NewVerbRepository(db *sqlx.DB) *VerbRepository {
	return &VerbRepository{db: db}
}

// ReplaceAll clears the verb table and repopulates it in one transaction.
// Duplicate infinitives within the batch collapse last-write-wins.
func (r *VerbRepository) ReplaceAll(verbs []models.VerbForms) error {
	verbs = dedupeByInfinitive(verbs)

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM verb_forms"); err != nil {
		return fmt.Errorf("failed to clear verb_forms: %v", err)
	}

	query := `
		INSERT INTO verb_forms (infinitive, presens, preteritum, pres_perfektum, english)
		VALUES (?, ?, ?, ?, ?)
	`
	if r.db.DriverName() == "postgres" {
		query = sqlx.Rebind(sqlx.DOLLAR, query)
	}

	for _, v := range verbs {
		_, err := tx.Exec(query, v.Infinitive, v.Presens, v.Preteritum, v.PresPerfektum, v.English)
		if err != nil {
			return fmt.Errorf("failed to insert verb %q: %v", v.Infinitive, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit verb replace: %v", err)
	}
	return nil
}

// FindByNormalizedKey looks up a verb by its normalized infinitive. The key
// must already be lower-cased with any leading infinitive marker stripped.
// The REPLACE fallback strips 'å' from every position of the stored
// infinitive, not just the prefix; this can over-match verbs containing the
// letter medially but is kept for compatibility with the source data.
func (r *VerbRepository) FindByNormalizedKey(key string) (*models.VerbForms, error) {
	query := `
		SELECT id, infinitive, presens, preteritum, pres_perfektum, english
		FROM verb_forms
		WHERE LOWER(infinitive) = ? OR LOWER(REPLACE(infinitive, 'å', '')) = ?
	`
	if r.db.DriverName() == "postgres" {
		query = sqlx.Rebind(sqlx.DOLLAR, query)
	}

	var verb models.VerbForms
	err := r.db.Get(&verb, query, key, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVerbNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up verb: %v", err)
	}
	return &verb, nil
}

// GetAll returns all stored verbs ordered by infinitive
func (r *VerbRepository) GetAll() ([]models.VerbForms, error) {
	var verbs []models.VerbForms
	err := r.db.Select(&verbs, "SELECT id, infinitive, presens, preteritum, pres_perfektum, english FROM verb_forms ORDER BY infinitive")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbs: %v", err)
	}
	return verbs, nil
}

// Count returns the number of stored verbs
func (r *VerbRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM verb_forms"); err != nil {
		return 0, fmt.Errorf("failed to count verbs: %v", err)
	}
	return count, nil
}

// dedupeByInfinitive keeps one record per infinitive. A later duplicate
// overwrites the earlier value but keeps the earlier position.
func dedupeByInfinitive(verbs []models.VerbForms) []models.VerbForms {
	index := make(map[string]int, len(verbs))
	result := make([]models.VerbForms, 0, len(verbs))
	for _, v := range verbs {
		key := strings.TrimSpace(v.Infinitive)
		if key == "" {
			continue
		}
		if i, seen := index[key]; seen {
			result[i] = v
			continue
		}
		index[key] = len(result)
		result = append(result, v)
	}
	return result
}
