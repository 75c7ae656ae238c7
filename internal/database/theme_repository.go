package database

import (
	"fmt"

	"github.com/example/norskbot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ThemeRepository handles database operations for reference themes and texts
type ThemeRepository struct {
	db *sqlx.DB
}

// NewThemeRepository creates a new repository instance
func NewThemeRepository(db *sqlx.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// GetAllThemes returns all themes in insertion order
func (r *ThemeRepository) GetAllThemes() ([]models.Theme, error) {
	var themes []models.Theme
	if err := r.db.Select(&themes, "SELECT id, title FROM themes ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get themes: %v", err)
	}
	return themes, nil
}

// GetTexts returns the texts belonging to a theme
func (r *ThemeRepository) GetTexts(themeID int64) ([]models.Text, error) {
	query := "SELECT id, theme_id, content FROM texts WHERE theme_id = ? ORDER BY id"
	if r.db.DriverName() == "postgres" {
		query = sqlx.Rebind(sqlx.DOLLAR, query)
	}

	var texts []models.Text
	if err := r.db.Select(&texts, query, themeID); err != nil {
		return nil, fmt.Errorf("failed to get texts for theme %d: %v", themeID, err)
	}
	return texts, nil
}

// ReplaceAll clears themes and texts and repopulates them in one transaction
func (r *ThemeRepository) ReplaceAll(content []models.ThemeContent) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	// texts reference themes, so they go first
	if _, err := tx.Exec("DELETE FROM texts"); err != nil {
		return fmt.Errorf("failed to clear texts: %v", err)
	}
	if _, err := tx.Exec("DELETE FROM themes"); err != nil {
		return fmt.Errorf("failed to clear themes: %v", err)
	}

	for _, c := range content {
		themeID, err := r.insertTheme(tx, c.Title)
		if err != nil {
			return err
		}

		textQuery := "INSERT INTO texts (theme_id, content) VALUES (?, ?)"
		if r.db.DriverName() == "postgres" {
			textQuery = sqlx.Rebind(sqlx.DOLLAR, textQuery)
		}
		for _, text := range c.Texts {
			if _, err := tx.Exec(textQuery, themeID, text); err != nil {
				return fmt.Errorf("failed to insert text for theme %q: %v", c.Title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit theme replace: %v", err)
	}
	return nil
}

// insertTheme inserts one theme row and returns its ID
func (r *ThemeRepository) insertTheme(tx *sqlx.Tx, title string) (int64, error) {
	if r.db.DriverName() == "postgres" {
		var id int64
		err := tx.QueryRow("INSERT INTO themes (title) VALUES ($1) RETURNING id", title).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert theme %q: %v", title, err)
		}
		return id, nil
	}

	// SQLite has no RETURNING on this version, use LastInsertId
	result, err := tx.Exec("INSERT INTO themes (title) VALUES (?)", title)
	if err != nil {
		return 0, fmt.Errorf("failed to insert theme %q: %v", title, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %v", err)
	}
	return id, nil
}
