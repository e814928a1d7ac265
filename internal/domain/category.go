package domain

import "time"

// Category groups products and articles. The slug is the external lookup
// key; the id is the internal foreign-key target. Deleting a category does
// not cascade, so content may carry a dangling CategoryID.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
