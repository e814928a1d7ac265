package domain

import "time"

// ContentType discriminates what a comment or social post refers to.
type ContentType string

const (
	ContentTypeProduct ContentType = "product"
	ContentTypeArticle ContentType = "article"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == ContentTypeProduct || t == ContentTypeArticle
}

// Comment is user feedback attached to a product or article via the
// (ContentID, ContentType) composite reference. Comments are append-only;
// only admins delete them.
type Comment struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	UserName    string      `json:"user_name"`
	ContentID   string      `json:"content_id"`
	ContentType ContentType `json:"content_type"`
	Text        string      `json:"text"`
	CreatedAt   time.Time   `json:"created_at"`
}
