package http

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/2bleO/CoolStff.com/internal/auth"
	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/event"
	"github.com/2bleO/CoolStff.com/internal/scraper"
	"github.com/2bleO/CoolStff.com/internal/service"
	"github.com/2bleO/CoolStff.com/internal/social"
	"github.com/2bleO/CoolStff.com/pkg/health"
	"github.com/2bleO/CoolStff.com/pkg/kafka"
	"github.com/2bleO/CoolStff.com/pkg/middleware"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, limit)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockArticleRepository struct {
	mock.Mock
}

func (m *mockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Article, error) {
	args := m.Called(ctx, categoryID)
	if a := args.Get(0); a != nil {
		return a.([]domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Article, error) {
	args := m.Called(ctx, limit)
	if a := args.Get(0); a != nil {
		return a.([]domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]domain.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockArticleRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if c := args.Get(0); c != nil {
		return c.(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepository) ListForContent(ctx context.Context, contentID string, contentType domain.ContentType) ([]domain.Comment, error) {
	args := m.Called(ctx, contentID, contentType)
	if c := args.Get(0); c != nil {
		return c.([]domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) ReplaceFavorites(ctx context.Context, userID string, productIDs []string) error {
	return m.Called(ctx, userID, productIDs).Error(0)
}

type mockSubscriberRepository struct {
	mock.Mock
}

func (m *mockSubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	return m.Called(ctx, subscriber).Error(0)
}

type noopProducer struct{}

func (noopProducer) Publish(context.Context, *kafka.Event) error { return nil }
func (noopProducer) Close() error                                { return nil }

// testEnv bundles the repo mocks behind a fully wired router.
type testEnv struct {
	products    *mockProductRepository
	articles    *mockArticleRepository
	categories  *mockCategoryRepository
	comments    *mockCommentRepository
	users       *mockUserRepository
	subscribers *mockSubscriberRepository
	tokens      *auth.Manager
	router      *chi.Mux
}

func newTestEnv() *testEnv {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewManager("handler-test-secret", "coolstff", 15*time.Minute, 24*time.Hour)
	publisher := event.NewPublisherWithProducers(noopProducer{}, noopProducer{}, noopProducer{}, log)

	env := &testEnv{
		products:    new(mockProductRepository),
		articles:    new(mockArticleRepository),
		categories:  new(mockCategoryRepository),
		comments:    new(mockCommentRepository),
		users:       new(mockUserRepository),
		subscribers: new(mockSubscriberRepository),
		tokens:      tokens,
	}

	catalogSvc := service.NewCatalogService(env.products, env.articles, env.categories, nil, log)
	productSvc := service.NewProductService(env.products, publisher, nil, log)
	articleSvc := service.NewArticleService(env.articles, publisher, log)
	categorySvc := service.NewCategoryService(env.categories, nil, log)
	commentSvc := service.NewCommentService(env.comments, publisher, log)
	favoriteSvc := service.NewFavoriteService(env.users, env.products, log)
	userSvc := service.NewUserService(env.users, tokens, log)
	newsletterSvc := service.NewNewsletterService(env.subscribers, log)
	socialSvc := service.NewSocialService(env.products, env.articles, social.NewGenerator(nil), log)
	scraperSvc := scraper.NewService(nil, "", log)

	env.router = NewRouter(RouterConfig{
		Logger:     log,
		Tokens:     tokens,
		Health:     health.NewHandler(),
		CORS:       middleware.DefaultCORSConfig(),
		Auth:       NewAuthHandler(userSvc),
		Catalog:    NewCatalogHandler(catalogSvc, articleSvc),
		Comments:   NewCommentHandler(commentSvc, userSvc),
		Favorites:  NewFavoriteHandler(favoriteSvc),
		Newsletter: NewNewsletterHandler(newsletterSvc),
		Admin:      NewAdminHandler(productSvc, articleSvc, categorySvc, scraperSvc, socialSvc),
	})
	return env
}

func (e *testEnv) tokenFor(user *domain.User) string {
	pair, err := e.tokens.GeneratePair(user)
	if err != nil {
		panic(err)
	}
	return pair.AccessToken
}
