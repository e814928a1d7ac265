package service

import (
	"context"
	"log/slog"

	"github.com/2bleO/CoolStff.com/internal/catalog"
	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/repository"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// FavoriteService manages per-user favorite sets. Toggles compute the new
// set in memory and hand the store a full-set write; reads resolve ids
// against live products and silently drop stale ones.
type FavoriteService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewFavoriteService creates the favorite service.
func NewFavoriteService(users repository.UserRepository, products repository.ProductRepository, log *slog.Logger) *FavoriteService {
	return &FavoriteService{
		users:    users,
		products: products,
		logger:   log.With(slog.String("service", "favorite")),
	}
}

// ToggleResult reports the outcome of a favorite toggle.
type ToggleResult struct {
	ProductID string   `json:"product_id"`
	Favorited bool     `json:"favorited"`
	Favorites []string `json:"favorites"`
}

// Toggle flips the product's membership in the user's favorite set and
// persists the resulting set.
func (s *FavoriteService) Toggle(ctx context.Context, userID, productID string) (*ToggleResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := catalog.NewFavoriteSet(user.Favorites).Toggle(productID)
	ids := next.IDs()

	if err := s.users.ReplaceFavorites(ctx, userID, ids); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "favorites updated",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Bool("favorited", next.Contains(productID)),
	)

	return &ToggleResult{
		ProductID: productID,
		Favorited: next.Contains(productID),
		Favorites: ids,
	}, nil
}

// List returns the user's favorited products. Ids referencing deleted
// products are dropped from the result, not treated as errors.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.Product, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	if dropped := len(user.Favorites) - len(products); dropped > 0 {
		s.logger.DebugContext(ctx, "dropped stale favorite ids",
			slog.String("user_id", userID),
			slog.Int("count", dropped),
		)
	}
	return products, nil
}
