package postgres

import (
	"context"
	"fmt"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// SubscriberRepository is the postgres-backed newsletter signup store.
type SubscriberRepository struct {
	db DB
}

// NewSubscriberRepository creates a subscriber repository.
func NewSubscriberRepository(db DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO subscribers (id, email, created_at)
		VALUES ($1, $2, $3)`,
		subscriber.ID, subscriber.Email, subscriber.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("subscriber", "email", subscriber.Email)
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}
