package postgres

import (
	"context"
	"fmt"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// CommentRepository is the postgres-backed comment store. Comments are
// append-only; only deletes happen after creation.
type CommentRepository struct {
	db DB
}

// NewCommentRepository creates a comment repository.
func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO comments (id, user_id, user_name, content_id, content_type, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		comment.ID, comment.UserID, comment.UserName, comment.ContentID,
		comment.ContentType, comment.Text, comment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("comment", "id", comment.ID)
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListForContent returns comments in creation order. The catalog engine
// owns the newest-first display contract.
func (r *CommentRepository) ListForContent(ctx context.Context, contentID string, contentType domain.ContentType) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, user_name, content_id, content_type, text, created_at
		FROM comments
		WHERE content_id = $1 AND content_type = $2
		ORDER BY created_at`,
		contentID, contentType,
	)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.UserName, &c.ContentID, &c.ContentType, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("comment", id)
	}
	return nil
}
