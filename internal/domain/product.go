package domain

import "time"

// Store identifies the affiliate storefront a link points at.
type Store string

const (
	StoreAmazon     Store = "amazon"
	StoreAliexpress Store = "aliexpress"
	StoreOther      Store = "other"
)

// AffiliateLink is a third-party purchase URL with its own listed price,
// distinct from the canonical product price.
type AffiliateLink struct {
	ID    string `json:"id"`
	Store Store  `json:"store"`
	URL   string `json:"url"`
	Price int64  `json:"price"` // cents
}

// Product is an affiliate-linked catalog item.
type Product struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          int64           `json:"price"` // cents
	Images         []string        `json:"images"`
	CategoryID     string          `json:"category_id"`
	AffiliateLinks []AffiliateLink `json:"affiliate_links"`
	Featured       bool            `json:"featured"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"review_count"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
