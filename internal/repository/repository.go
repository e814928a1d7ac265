// Package repository defines the content store contracts the services
// depend on. Implementations live in subpackages; postgres is the only
// one today. Store failures surface as opaque errors the caller maps to
// a store-unavailable condition; the repositories never retry.
package repository

import (
	"context"

	"github.com/2bleO/CoolStff.com/internal/domain"
)

// ProductRepository supplies product snapshots and persists admin writes.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// ArticleRepository supplies article snapshots and persists admin writes.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Article, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository manages categories. Delete does not cascade;
// content referencing a deleted category keeps its dangling id.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository persists append-only comments. ListForContent returns
// them in whatever order the store finds natural; display ordering is the
// catalog engine's job.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListForContent(ctx context.Context, contentID string, contentType domain.ContentType) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository manages accounts and the per-user favorite set.
// ReplaceFavorites writes the full set computed by the caller.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ReplaceFavorites(ctx context.Context, userID string, productIDs []string) error
}

// SubscriberRepository captures newsletter signups.
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *domain.Subscriber) error
}
