package postgres

import (
	"context"
	"fmt"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/pkg/database"
)

// SubCategoryRepository implements repository.SubCategoryRepository using
// PostgreSQL.
type SubCategoryRepository struct {
	pool database.DBTX
}

// NewSubCategoryRepository creates a new PostgreSQL-backed subcategory
// repository.
func NewSubCategoryRepository(pool database.DBTX) *SubCategoryRepository {
	return &SubCategoryRepository{pool: pool}
}

// List returns all subcategories ordered by name.
func (r *SubCategoryRepository) List(ctx context.Context) ([]domain.SubCategory, error) {
	query := `
		SELECT id, name, category_id, created_at, updated_at
		FROM subcategories
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var subs []domain.SubCategory
	for rows.Next() {
		var (
			sc         domain.SubCategory
			categoryID string
		)
		if err := rows.Scan(&sc.ID, &sc.Name, &categoryID, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		sc.Category = domain.Ref{ID: categoryID}
		subs = append(subs, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subcategory rows: %w", err)
	}

	if subs == nil {
		subs = []domain.SubCategory{}
	}

	return subs, nil
}
