package models

// Theme represents a reference topic (e.g. an oral exam theme)
type Theme struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

// Text represents one piece of reference content belonging to a theme
type Text struct {
	ID      int64  `json:"id" db:"id"`
	ThemeID int64  `json:"theme_id" db:"theme_id"`
	Content string `json:"content" db:"content"`
}

// ThemeContent pairs a theme title with its texts for seeding
type ThemeContent struct {
	Title string
	Texts []string
}
