package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// ProductRepository is the postgres-backed product store. Affiliate links
// are stored as a jsonb column since they are only ever read with their
// product.
type ProductRepository struct {
	db DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, title, description, price, images, category_id, affiliate_links, featured, rating, review_count, created_at, updated_at`

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	links, err := json.Marshal(product.AffiliateLinks)
	if err != nil {
		return fmt.Errorf("marshal affiliate links: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO products (id, title, description, price, images, category_id, affiliate_links, featured, rating, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		product.ID, product.Title, product.Description, product.Price, product.Images,
		product.CategoryID, links, product.Featured, product.Rating, product.ReviewCount,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "id", product.ID)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY created_at DESC`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("select products by category: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("select products by ids: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE featured ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select featured products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	links, err := json.Marshal(product.AffiliateLinks)
	if err != nil {
		return fmt.Errorf("marshal affiliate links: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET title = $2, description = $3, price = $4, images = $5, category_id = $6,
		    affiliate_links = $7, featured = $8, rating = $9, review_count = $10, updated_at = $11
		WHERE id = $1`,
		product.ID, product.Title, product.Description, product.Price, product.Images,
		product.CategoryID, links, product.Featured, product.Rating, product.ReviewCount,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("product", product.ID)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var links []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Images, &p.CategoryID,
		&links, &p.Featured, &p.Rating, &p.ReviewCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &p.AffiliateLinks); err != nil {
			return nil, fmt.Errorf("unmarshal affiliate links: %w", err)
		}
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
