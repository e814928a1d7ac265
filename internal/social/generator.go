// Package social generates social-media caption drafts for catalog
// content. Template selection is the only non-determinism and sits behind
// an injectable randomness source.
package social

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// Rand supplies the template index choice. math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Post is a caption draft ready for an admin to review and publish.
type Post struct {
	Platform    Platform           `json:"platform"`
	ContentID   string             `json:"content_id"`
	ContentType domain.ContentType `json:"content_type"`
	Caption     string             `json:"caption"`
	ImageURL    string             `json:"image_url"`
}

// Content is the subset of a product or article the generator needs.
type Content struct {
	ID       string
	Type     domain.ContentType
	Title    string
	Price    int64 // cents, products only
	ImageURL string
}

// ProductContent adapts a product for caption generation. The draft image
// is the product's first image, if any.
func ProductContent(p domain.Product) Content {
	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return Content{
		ID:       p.ID,
		Type:     domain.ContentTypeProduct,
		Title:    p.Title,
		Price:    p.Price,
		ImageURL: image,
	}
}

// ArticleContent adapts an article for caption generation.
func ArticleContent(a domain.Article) Content {
	return Content{
		ID:       a.ID,
		Type:     domain.ContentTypeArticle,
		Title:    a.Title,
		ImageURL: a.CoverImage,
	}
}

// Generator produces caption drafts using the injected randomness source.
type Generator struct {
	rng Rand
}

// NewGenerator creates a generator. A nil rng falls back to math/rand's
// global source.
func NewGenerator(rng Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{rng: rng}
}

// GeneratePost picks one of the platform's templates for the content type
// uniformly at random and substitutes the placeholders. {title} is
// replaced for every content type; ${price} only for products, formatted
// as dollars with exactly two decimals. An unconfigured platform or an
// unknown content type is an invalid-input error.
func (g *Generator) GeneratePost(content Content, platform Platform) (Post, error) {
	cfg, ok := ConfigFor(platform)
	if !ok {
		return Post{}, apperrors.InvalidInput(fmt.Sprintf("platform %q is not configured for caption drafts", platform))
	}

	templates, ok := cfg.Templates[content.Type]
	if !ok || len(templates) == 0 {
		return Post{}, apperrors.InvalidInput(fmt.Sprintf("no %s templates for platform %q", content.Type, platform))
	}

	template := templates[g.rng.Intn(len(templates))]
	caption := strings.Replace(template, "{title}", content.Title, 1)
	if content.Type == domain.ContentTypeProduct {
		price := fmt.Sprintf("$%.2f", float64(content.Price)/100)
		caption = strings.Replace(caption, "${price}", price, 1)
	}

	return Post{
		Platform:    platform,
		ContentID:   content.ID,
		ContentType: content.Type,
		Caption:     caption,
		ImageURL:    content.ImageURL,
	}, nil
}

// GenerateAll produces one draft per configured platform.
func (g *Generator) GenerateAll(content Content) ([]Post, error) {
	platforms := ConfiguredPlatforms()
	posts := make([]Post, 0, len(platforms))
	for _, platform := range platforms {
		post, err := g.GeneratePost(content, platform)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
