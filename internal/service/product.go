package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/event"
	"github.com/2bleO/CoolStff.com/internal/repository"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// ProductInput carries the fields an admin supplies when creating or
// updating a product. Prices are in cents.
type ProductInput struct {
	Title          string
	Description    string
	Price          int64
	Images         []string
	CategoryID     string
	AffiliateLinks []AffiliateLinkInput
	Featured       bool
	Rating         float64
	ReviewCount    int
}

// AffiliateLinkInput is one affiliate link in a product input.
type AffiliateLinkInput struct {
	Store string
	URL   string
	Price int64
}

// ProductService owns product writes: validation, persistence, events,
// and cache invalidation.
type ProductService struct {
	repo      repository.ProductRepository
	publisher *event.Publisher
	cache     *ListingCache
	logger    *slog.Logger
}

// NewProductService creates the product write service.
func NewProductService(repo repository.ProductRepository, publisher *event.Publisher, cache *ListingCache, log *slog.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		logger:    log.With(slog.String("service", "product")),
	}
}

func (in ProductInput) links() ([]domain.AffiliateLink, error) {
	links := make([]domain.AffiliateLink, len(in.AffiliateLinks))
	for i, l := range in.AffiliateLinks {
		store := domain.Store(l.Store)
		switch store {
		case domain.StoreAmazon, domain.StoreAliexpress, domain.StoreOther:
		default:
			return nil, apperrors.InvalidInput("unknown affiliate store " + l.Store)
		}
		links[i] = domain.AffiliateLink{
			ID:    uuid.New().String(),
			Store: store,
			URL:   l.URL,
			Price: l.Price,
		}
	}
	return links, nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	links, err := in.links()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:             uuid.New().String(),
		Title:          in.Title,
		Description:    in.Description,
		Price:          in.Price,
		Images:         in.Images,
		CategoryID:     in.CategoryID,
		AffiliateLinks: links,
		Featured:       in.Featured,
		Rating:         in.Rating,
		ReviewCount:    in.ReviewCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.invalidate(ctx, product.CategoryID)
	if err := s.publisher.ProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product created", slog.String("product_id", product.ID))
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	links, err := in.links()
	if err != nil {
		return nil, err
	}

	previousCategory := existing.CategoryID
	existing.Title = in.Title
	existing.Description = in.Description
	existing.Price = in.Price
	existing.Images = in.Images
	existing.CategoryID = in.CategoryID
	existing.AffiliateLinks = links
	existing.Featured = in.Featured
	existing.Rating = in.Rating
	existing.ReviewCount = in.ReviewCount
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.cache.invalidate(ctx, existing.CategoryID)
	if previousCategory != existing.CategoryID {
		s.cache.invalidate(ctx, previousCategory)
	}
	if err := s.publisher.ProductUpdated(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.updated",
			slog.String("product_id", existing.ID),
			slog.String("error", err.Error()),
		)
	}

	return existing, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.invalidate(ctx, existing.CategoryID)
	if err := s.publisher.ProductDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}
