package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/2bleO/CoolStff.com/internal/catalog"
	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/repository"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
	"github.com/2bleO/CoolStff.com/pkg/logger"
)

// CatalogService answers read queries over the content catalog. Listings
// load a snapshot from the store (through a short-lived redis cache) and
// shape it with the in-memory query engine.
type CatalogService struct {
	products   repository.ProductRepository
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
	cache      *ListingCache
	logger     *slog.Logger
}

// NewCatalogService creates the catalog read service. A nil cache
// disables caching.
func NewCatalogService(
	products repository.ProductRepository,
	articles repository.ArticleRepository,
	categories repository.CategoryRepository,
	cache *ListingCache,
	log *slog.Logger,
) *CatalogService {
	return &CatalogService{
		products:   products,
		articles:   articles,
		categories: categories,
		cache:      cache,
		logger:     log.With(slog.String("service", "catalog")),
	}
}

// CategoryListing is a filtered, sorted, paginated slice of a category's
// products.
type CategoryListing struct {
	Category *domain.Category
	Products []domain.Product
	Articles []domain.Article
	Total    int
}

// CategoryListing resolves a category by slug and runs the catalog query
// over its product snapshot.
func (s *CatalogService) CategoryListing(ctx context.Context, slug string, filter catalog.FilterSpec, sortKey catalog.SortKey, page *catalog.Page) (*CategoryListing, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	items, cached := s.cache.get(ctx, category.ID)
	if !cached {
		items, err = s.products.ListByCategory(ctx, category.ID)
		if err != nil {
			return nil, apperrors.StoreUnavailable(err)
		}
		s.cache.set(ctx, category.ID, items)
	}

	result, err := catalog.Query(items, filter, sortKey, page)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	return &CategoryListing{
		Category: category,
		Products: result.Products,
		Articles: articles,
		Total:    result.Total,
	}, nil
}

// ProductWithCategory pairs a product with its resolved category; the
// category is nil when the reference dangles.
type ProductWithCategory struct {
	Product  domain.Product
	Category *domain.Category
}

// AllProducts returns every product with its category resolved. Dangling
// category references resolve to nil rather than failing the listing.
func (s *CatalogService) AllProducts(ctx context.Context) ([]ProductWithCategory, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	resolved := catalog.ResolveCategory(products, categories)
	out := make([]ProductWithCategory, len(products))
	for i, p := range products {
		out[i] = ProductWithCategory{Product: p, Category: resolved[p.ID]}
	}
	return out, nil
}

// ProductDetail is a product with its resolved category.
type ProductDetail struct {
	Product  *domain.Product
	Category *domain.Category
}

// ProductDetail loads one product and softly resolves its category: a
// deleted category yields a nil Category, not an error.
func (s *CatalogService) ProductDetail(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{Product: product}
	if product.CategoryID != "" {
		category, err := s.categories.GetByID(ctx, product.CategoryID)
		switch {
		case err == nil:
			detail.Category = category
		case errors.Is(err, apperrors.ErrNotFound):
			logger.FromContext(ctx).DebugContext(ctx, "product references missing category",
				slog.String("product_id", product.ID),
				slog.String("category_id", product.CategoryID),
			)
		default:
			return nil, err
		}
	}
	return detail, nil
}

// FeaturedProducts returns up to limit featured products, newest first.
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	products, err := s.products.ListFeatured(ctx, limit)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return products, nil
}

// FeaturedArticles returns up to limit featured articles, newest first.
func (s *CatalogService) FeaturedArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	articles, err := s.articles.ListFeatured(ctx, limit)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return articles, nil
}

// Categories lists all categories.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return categories, nil
}
