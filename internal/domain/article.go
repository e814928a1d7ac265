package domain

import "time"

// Article is an editorial content item, typically sourced from a design blog.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"cover_image"`
	CategoryID string    `json:"category_id"`
	Featured   bool      `json:"featured"`
	Source     string    `json:"source"`
	SourceURL  string    `json:"source_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
