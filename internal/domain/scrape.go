package domain

// ScrapedContent is the preview payload produced by a scrape request,
// before an admin turns it into a product or article.
type ScrapedContent struct {
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       int64       `json:"price,omitempty"` // cents, products only
	Images      []string    `json:"images,omitempty"`
	Content     string      `json:"content,omitempty"`
	Excerpt     string      `json:"excerpt,omitempty"`
	CoverImage  string      `json:"cover_image,omitempty"`
	Source      string      `json:"source,omitempty"`
	SourceURL   string      `json:"source_url"`
}
