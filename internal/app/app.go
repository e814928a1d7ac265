// Package app assembles the marketplace API: configuration, storage,
// messaging, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/2bleO/CoolStff.com/internal/auth"
	"github.com/2bleO/CoolStff.com/internal/config"
	"github.com/2bleO/CoolStff.com/internal/event"
	httphandler "github.com/2bleO/CoolStff.com/internal/handler/http"
	"github.com/2bleO/CoolStff.com/internal/repository/postgres"
	"github.com/2bleO/CoolStff.com/internal/scraper"
	"github.com/2bleO/CoolStff.com/internal/service"
	"github.com/2bleO/CoolStff.com/internal/social"
	"github.com/2bleO/CoolStff.com/migrations"
	"github.com/2bleO/CoolStff.com/pkg/database"
	"github.com/2bleO/CoolStff.com/pkg/health"
	"github.com/2bleO/CoolStff.com/pkg/httpclient"
	"github.com/2bleO/CoolStff.com/pkg/middleware"
)

// App owns the long-lived resources of the service.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	pool      *pgxpool.Pool
	redis     *redis.Client
	publisher *event.Publisher
	server    *http.Server
}

// New builds the full application graph and prepares the HTTP server.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pgCfg := cfg.Postgres()
	pool, err := database.NewPostgresPool(initCtx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := database.RunMigrations(initCtx, pool, migrations.Files, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient, err = database.NewRedisClient(initCtx, cfg.Redis())
		if err != nil {
			logger.Warn("redis unavailable, listings will not be cached", slog.String("error", err.Error()))
			redisClient = nil
		}
	}

	publisher := event.NewPublisher(cfg.KafkaBrokers, logger)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	productRepo := postgres.NewProductRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	subscriberRepo := postgres.NewSubscriberRepository(pool)

	cache := service.NewListingCache(redisClient, cfg.CacheTTL, logger)

	catalogSvc := service.NewCatalogService(productRepo, articleRepo, categoryRepo, cache, logger)
	productSvc := service.NewProductService(productRepo, publisher, cache, logger)
	articleSvc := service.NewArticleService(articleRepo, publisher, logger)
	categorySvc := service.NewCategoryService(categoryRepo, cache, logger)
	commentSvc := service.NewCommentService(commentRepo, publisher, logger)
	favoriteSvc := service.NewFavoriteService(userRepo, productRepo, logger)
	userSvc := service.NewUserService(userRepo, tokens, logger)
	newsletterSvc := service.NewNewsletterService(subscriberRepo, logger)
	socialSvc := service.NewSocialService(productRepo, articleRepo, social.NewGenerator(nil), logger)

	scrapeClient := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("scraper-api"),
	)
	scraperSvc := scraper.NewService(scrapeClient, cfg.ScraperAPIEndpoint, logger)

	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	if redisClient != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins

	router := httphandler.NewRouter(httphandler.RouterConfig{
		Logger: logger,
		Tokens: tokens,
		Health: healthHandler,
		CORS:   corsCfg,
		Auth:       httphandler.NewAuthHandler(userSvc),
		Catalog:    httphandler.NewCatalogHandler(catalogSvc, articleSvc),
		Comments:   httphandler.NewCommentHandler(commentSvc, userSvc),
		Favorites:  httphandler.NewFavoriteHandler(favoriteSvc),
		Newsletter: httphandler.NewNewsletterHandler(newsletterSvc),
		Admin:      httphandler.NewAdminHandler(productSvc, articleSvc, categorySvc, scraperSvc, socialSvc),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		pool:      pool,
		redis:     redisClient,
		publisher: publisher,
		server:    server,
	}, nil
}

// Run serves HTTP until the context is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		return a.Shutdown()
	}
}

// Shutdown drains the HTTP server and closes all resources.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPShutdownTimeout)
	defer cancel()

	var firstErr error
	if err := a.server.Shutdown(ctx); err != nil {
		firstErr = fmt.Errorf("shutdown http server: %w", err)
	}
	if err := a.publisher.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close kafka producers: %w", err)
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close redis: %w", err)
		}
	}
	a.pool.Close()

	a.logger.Info("shutdown complete")
	return firstErr
}
