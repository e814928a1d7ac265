package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// UserRepository is the postgres-backed account store. The favorite set
// lives on the user row as a text array; writes always replace the full
// set the caller computed.
type UserRepository struct {
	db DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, display_name, password_hash, role, favorites, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	favorites := user.Favorites
	if favorites == nil {
		favorites = []string{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, display_name, password_hash, role, favorites, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.Role, favorites,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("user", "email", user.Email)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanOne(row, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return r.scanOne(row, email)
}

func (r *UserRepository) ReplaceFavorites(ctx context.Context, userID string, productIDs []string) error {
	if productIDs == nil {
		productIDs = []string{}
	}

	tag, err := r.db.Exec(ctx, `UPDATE users SET favorites = $2, updated_at = NOW() WHERE id = $1`, userID, productIDs)
	if err != nil {
		return fmt.Errorf("update favorites: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("user", userID)
	}
	return nil
}

func (r *UserRepository) scanOne(row pgx.Row, key string) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Role, &u.Favorites, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("user", key)
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}
