package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/repository"
)

// NewsletterService captures newsletter signups.
type NewsletterService struct {
	repo   repository.SubscriberRepository
	logger *slog.Logger
}

// NewNewsletterService creates the newsletter service.
func NewNewsletterService(repo repository.SubscriberRepository, log *slog.Logger) *NewsletterService {
	return &NewsletterService{
		repo:   repo,
		logger: log.With(slog.String("service", "newsletter")),
	}
}

// Subscribe records an email address. A duplicate email surfaces as an
// already-exists error for the handler to map.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	subscriber := &domain.Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, subscriber); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "newsletter subscription", slog.String("subscriber_id", subscriber.ID))
	return subscriber, nil
}
