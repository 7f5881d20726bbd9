package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/pkg/database"
	apperrors "github.com/frbhusen/EPay-Store/pkg/errors"
)

// CategoryRepository implements repository.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	pool database.DBTX
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool database.DBTX) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	if categories == nil {
		categories = []domain.Category{}
	}

	return categories, nil
}

// GetByID retrieves a category by its identifier.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1`

	var c domain.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("category", id)
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}

	return &c, nil
}
