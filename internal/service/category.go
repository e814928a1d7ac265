package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/repository"
	"github.com/2bleO/CoolStff.com/pkg/slug"
)

// CategoryService owns category writes. Deleting a category never touches
// the content that references it.
type CategoryService struct {
	repo   repository.CategoryRepository
	cache  *ListingCache
	logger *slog.Logger
}

// NewCategoryService creates the category write service.
func NewCategoryService(repo repository.CategoryRepository, cache *ListingCache, log *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		cache:  cache,
		logger: log.With(slog.String("service", "category")),
	}
}

func (s *CategoryService) Create(ctx context.Context, name, description, imageURL string) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Generate(name),
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.invalidate(ctx, id)
	s.logger.InfoContext(ctx, "category deleted", slog.String("category_id", id))
	return nil
}
