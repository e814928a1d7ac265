package service

import (
	"context"
	"log/slog"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/repository"
	"github.com/2bleO/CoolStff.com/internal/social"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// SocialService produces caption drafts for existing catalog content.
type SocialService struct {
	products  repository.ProductRepository
	articles  repository.ArticleRepository
	generator *social.Generator
	logger    *slog.Logger
}

// NewSocialService creates the social draft service.
func NewSocialService(products repository.ProductRepository, articles repository.ArticleRepository, generator *social.Generator, log *slog.Logger) *SocialService {
	return &SocialService{
		products:  products,
		articles:  articles,
		generator: generator,
		logger:    log.With(slog.String("service", "social")),
	}
}

// Drafts generates caption drafts for the content item. With a platform
// it returns a single draft; without, one per configured platform.
func (s *SocialService) Drafts(ctx context.Context, contentType domain.ContentType, contentID string, platform *social.Platform) ([]social.Post, error) {
	content, err := s.load(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	if platform != nil {
		post, err := s.generator.GeneratePost(content, *platform)
		if err != nil {
			return nil, err
		}
		return []social.Post{post}, nil
	}

	posts, err := s.generator.GenerateAll(content)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "caption drafts generated",
		slog.String("content_id", contentID),
		slog.String("content_type", string(contentType)),
		slog.Int("count", len(posts)),
	)
	return posts, nil
}

func (s *SocialService) load(ctx context.Context, contentType domain.ContentType, contentID string) (social.Content, error) {
	switch contentType {
	case domain.ContentTypeProduct:
		product, err := s.products.GetByID(ctx, contentID)
		if err != nil {
			return social.Content{}, err
		}
		return social.ProductContent(*product), nil
	case domain.ContentTypeArticle:
		article, err := s.articles.GetByID(ctx, contentID)
		if err != nil {
			return social.Content{}, err
		}
		return social.ArticleContent(*article), nil
	default:
		return social.Content{}, apperrors.InvalidInput("unknown content type " + string(contentType))
	}
}
