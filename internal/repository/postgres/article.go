package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// ArticleRepository is the postgres-backed article store.
type ArticleRepository struct {
	db DB
}

// NewArticleRepository creates an article repository.
func NewArticleRepository(db DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = `id, title, content, excerpt, cover_image, category_id, featured, source, source_url, created_at, updated_at`

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO articles (id, title, content, excerpt, cover_image, category_id, featured, source, source_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		article.ID, article.Title, article.Content, article.Excerpt, article.CoverImage,
		article.CategoryID, article.Featured, article.Source, article.SourceURL,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("article", "id", article.ID)
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("article", id)
		}
		return nil, fmt.Errorf("select article: %w", err)
	}
	return article, nil
}

func (r *ArticleRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Article, error) {
	rows, err := r.db.Query(ctx, `SELECT `+articleColumns+` FROM articles WHERE category_id = $1 ORDER BY created_at DESC`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("select articles by category: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *ArticleRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Article, error) {
	rows, err := r.db.Query(ctx, `SELECT `+articleColumns+` FROM articles WHERE featured ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select featured articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.db.Query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE articles
		SET title = $2, content = $3, excerpt = $4, cover_image = $5, category_id = $6,
		    featured = $7, source = $8, source_url = $9, updated_at = $10
		WHERE id = $1`,
		article.ID, article.Title, article.Content, article.Excerpt, article.CoverImage,
		article.CategoryID, article.Featured, article.Source, article.SourceURL,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("article", article.ID)
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("article", id)
	}
	return nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Excerpt, &a.CoverImage, &a.CategoryID,
		&a.Featured, &a.Source, &a.SourceURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]domain.Article, error) {
	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}
