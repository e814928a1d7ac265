package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/2bleO/CoolStff.com/internal/catalog"
	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/event"
	"github.com/2bleO/CoolStff.com/internal/repository"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// CommentService owns comment reads and writes. The newest-first display
// order is applied here, on top of whatever order the store returns.
type CommentService struct {
	repo      repository.CommentRepository
	publisher *event.Publisher
	logger    *slog.Logger
}

// NewCommentService creates the comment service.
func NewCommentService(repo repository.CommentRepository, publisher *event.Publisher, log *slog.Logger) *CommentService {
	return &CommentService{
		repo:      repo,
		publisher: publisher,
		logger:    log.With(slog.String("service", "comment")),
	}
}

// Create appends a comment to a product or article.
func (s *CommentService) Create(ctx context.Context, userID, userName, contentID string, contentType domain.ContentType, text string) (*domain.Comment, error) {
	if !contentType.Valid() {
		return nil, apperrors.InvalidInput("unknown content type " + string(contentType))
	}

	comment := &domain.Comment{
		ID:          uuid.New().String(),
		UserID:      userID,
		UserName:    userName,
		ContentID:   contentID,
		ContentType: contentType,
		Text:        text,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.publisher.CommentCreated(ctx, comment); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish comment.created",
			slog.String("comment_id", comment.ID),
			slog.String("error", err.Error()),
		)
	}

	return comment, nil
}

// ListForContent returns a content item's comments newest first.
func (s *CommentService) ListForContent(ctx context.Context, contentID string, contentType domain.ContentType) ([]domain.Comment, error) {
	if !contentType.Valid() {
		return nil, apperrors.InvalidInput("unknown content type " + string(contentType))
	}

	comments, err := s.repo.ListForContent(ctx, contentID, contentType)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return catalog.CommentsFor(comments, contentID, contentType), nil
}

// Delete removes a comment. Admin only; enforced at the router.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "comment deleted", slog.String("comment_id", id))
	return nil
}
