package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/2bleO/CoolStff.com/internal/auth"
	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
	"github.com/2bleO/CoolStff.com/pkg/health"
	"github.com/2bleO/CoolStff.com/pkg/httputil"
	"github.com/2bleO/CoolStff.com/pkg/middleware"
)

// RouterConfig bundles the handlers and cross-cutting pieces the router
// mounts.
type RouterConfig struct {
	Logger     *slog.Logger
	Tokens     *auth.Manager
	Health     *health.Handler
	CORS       middleware.CORSConfig
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Comments   *CommentHandler
	Favorites  *FavoriteHandler
	Newsletter *NewsletterHandler
	Admin      *AdminHandler
}

// NewRouter assembles the full route tree with the shared middleware
// stack.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.PrometheusMetrics("marketplace-api"))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	validateAccess := tokenValidator(cfg.Tokens)
	requireAuth := middleware.Auth(validateAccess)
	requireAdmin := middleware.RequireRole(string(domain.RoleAdmin))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.Auth.Register)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/refresh", cfg.Auth.Refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(60 * time.Second))

			r.Get("/categories", cfg.Catalog.ListCategories)
			r.Get("/categories/{slug}", cfg.Catalog.CategoryListing)
			r.Get("/products", cfg.Catalog.ListProducts)
			r.Get("/products/{id}", cfg.Catalog.GetProduct)
			r.Get("/articles/{id}", cfg.Catalog.GetArticle)
			r.Get("/featured/products", cfg.Catalog.FeaturedProducts)
			r.Get("/featured/articles", cfg.Catalog.FeaturedArticles)
		})

		r.Get("/comments", cfg.Comments.List)
		r.Post("/newsletter/subscribe", cfg.Newsletter.Subscribe)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/comments", cfg.Comments.Create)
			r.Get("/favorites", cfg.Favorites.List)
			r.Post("/favorites/{productID}/toggle", cfg.Favorites.Toggle)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(requireAdmin)

			r.Post("/products", cfg.Admin.CreateProduct)
			r.Put("/products/{id}", cfg.Admin.UpdateProduct)
			r.Delete("/products/{id}", cfg.Admin.DeleteProduct)

			r.Post("/articles", cfg.Admin.CreateArticle)
			r.Put("/articles/{id}", cfg.Admin.UpdateArticle)
			r.Delete("/articles/{id}", cfg.Admin.DeleteArticle)

			r.Post("/categories", cfg.Admin.CreateCategory)
			r.Delete("/categories/{id}", cfg.Admin.DeleteCategory)

			r.Delete("/comments/{id}", cfg.Comments.Delete)

			r.Post("/scrape", cfg.Admin.Scrape)
			r.Post("/social-posts", cfg.Admin.SocialPosts)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, r, apperrors.NotFound("route", r.URL.Path), "route not found")
	})

	return r
}

func tokenValidator(mgr *auth.Manager) middleware.TokenValidator {
	return func(token string) (*middleware.Claims, error) {
		claims, err := mgr.ValidateAccess(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}, nil
	}
}
