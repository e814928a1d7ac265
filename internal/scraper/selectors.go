package scraper

import "github.com/2bleO/CoolStff.com/internal/domain"

// Selectors holds the CSS selectors a scrape worker should extract from a
// supported site.
type Selectors struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Images      string `json:"images"`
	Content     string `json:"content,omitempty"`
}

// SiteConfig declares how a supported host is scraped and what kind of
// content it yields.
type SiteConfig struct {
	Type      domain.ContentType
	Selectors Selectors
}

// siteConfigs maps supported hostnames to their scrape configuration.
var siteConfigs = map[string]SiteConfig{
	"amazon.com": {
		Type: domain.ContentTypeProduct,
		Selectors: Selectors{
			Title:       "#productTitle",
			Description: "#feature-bullets",
			Price:       ".a-price-whole",
			Images:      "#imgBlkFront",
		},
	},
	"aliexpress.com": {
		Type: domain.ContentTypeProduct,
		Selectors: Selectors{
			Title:       ".product-title-text",
			Description: ".product-description",
			Price:       ".product-price-value",
			Images:      ".magnifier-image",
		},
	},
	"trendhunter.com": {
		Type: domain.ContentTypeArticle,
		Selectors: Selectors{
			Title:   ".article-title",
			Content: ".article-body",
			Images:  ".article-image",
		},
	},
	"yankodesign.com": {
		Type: domain.ContentTypeArticle,
		Selectors: Selectors{
			Title:   ".entry-title",
			Content: ".entry-content",
			Images:  ".entry-content img",
		},
	},
}
