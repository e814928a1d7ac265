package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/2bleO/CoolStff.com/internal/auth"
	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/repository"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// UserService handles registration, login, and token refresh.
type UserService struct {
	repo   repository.UserRepository
	tokens *auth.Manager
	logger *slog.Logger
}

// NewUserService creates the user service.
func NewUserService(repo repository.UserRepository, tokens *auth.Manager, log *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		logger: log.With(slog.String("service", "user")),
	}
}

// AuthResult pairs the account with its freshly issued tokens.
type AuthResult struct {
	User   *domain.User   `json:"user"`
	Tokens auth.TokenPair `json:"tokens"`
}

// Register creates an account with a bcrypt-hashed password and signs the
// user in.
func (s *UserService) Register(ctx context.Context, email, displayName, password string) (*AuthResult, error) {
	if len(password) < minPasswordLength {
		return nil, apperrors.InvalidInput("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password produce the same error so accounts cannot be enumerated.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	tokens, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("account no longer exists")
		}
		return nil, err
	}

	tokens, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Get loads an account by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
