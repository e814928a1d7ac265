package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/event"
	"github.com/2bleO/CoolStff.com/internal/repository"
)

// ArticleInput carries the fields an admin supplies when creating or
// updating an article.
type ArticleInput struct {
	Title      string
	Content    string
	Excerpt    string
	CoverImage string
	CategoryID string
	Featured   bool
	Source     string
	SourceURL  string
}

// ArticleService owns article writes.
type ArticleService struct {
	repo      repository.ArticleRepository
	publisher *event.Publisher
	logger    *slog.Logger
}

// NewArticleService creates the article write service.
func NewArticleService(repo repository.ArticleRepository, publisher *event.Publisher, log *slog.Logger) *ArticleService {
	return &ArticleService{
		repo:      repo,
		publisher: publisher,
		logger:    log.With(slog.String("service", "article")),
	}
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArticleService) Create(ctx context.Context, in ArticleInput) (*domain.Article, error) {
	now := time.Now().UTC()
	article := &domain.Article{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CoverImage: in.CoverImage,
		CategoryID: in.CategoryID,
		Featured:   in.Featured,
		Source:     in.Source,
		SourceURL:  in.SourceURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	if err := s.publisher.ArticleCreated(ctx, article); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish article.created",
			slog.String("article_id", article.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "article created", slog.String("article_id", article.ID))
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, in ArticleInput) (*domain.Article, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Content = in.Content
	existing.Excerpt = in.Excerpt
	existing.CoverImage = in.CoverImage
	existing.CategoryID = in.CategoryID
	existing.Featured = in.Featured
	existing.Source = in.Source
	existing.SourceURL = in.SourceURL
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err := s.publisher.ArticleUpdated(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish article.updated",
			slog.String("article_id", existing.ID),
			slog.String("error", err.Error()),
		)
	}

	return existing, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.ArticleDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish article.deleted",
			slog.String("article_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "article deleted", slog.String("article_id", id))
	return nil
}
