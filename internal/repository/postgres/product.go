package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/repository"
	"github.com/frbhusen/EPay-Store/pkg/database"
	apperrors "github.com/frbhusen/EPay-Store/pkg/errors"
)

const productColumns = `id, name, description, price, type, discount, image,
	category_id, subcategory_id, sort_order, stock, active, currency,
	most_visited, ratings, reviews, created_at, updated_at`

// ProductRepository implements repository.ProductRepository using PostgreSQL.
// The embedded rating and review collections are stored as JSONB arrays, so
// a product round-trips as one document the way the storefront consumes it.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// rowScanner matches both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, extra ...any) (*domain.Product, error) {
	var (
		p             domain.Product
		subCategoryID *string
		ratingsJSON   []byte
		reviewsJSON   []byte
		categoryID    string
	)

	dest := []any{
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Type, &p.Discount,
		&p.Image, &categoryID, &subCategoryID, &p.Order, &p.Stock,
		&p.Active, &p.Currency, &p.MostVisited, &ratingsJSON, &reviewsJSON,
		&p.CreatedAt, &p.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	p.Category = domain.Ref{ID: categoryID}
	if subCategoryID != nil {
		p.SubCategory = &domain.Ref{ID: *subCategoryID}
	}

	if len(ratingsJSON) > 0 {
		if err := json.Unmarshal(ratingsJSON, &p.Ratings); err != nil {
			return nil, fmt.Errorf("unmarshal ratings: %w", err)
		}
	}
	if len(reviewsJSON) > 0 {
		if err := json.Unmarshal(reviewsJSON, &p.Reviews); err != nil {
			return nil, fmt.Errorf("unmarshal reviews: %w", err)
		}
	}

	if p.Ratings == nil {
		p.Ratings = []domain.Rating{}
	}
	if p.Reviews == nil {
		p.Reviews = []domain.Review{}
	}

	return &p, nil
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1`, productColumns)

	ctx, end := database.TraceQuery(ctx, "GetProduct", query)
	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	end(err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	return p, nil
}

// List returns products matching the filter with the total count.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argIndex))
		args = append(args, *filter.CategoryID)
		argIndex++
	}

	if filter.SubCategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("subcategory_id = $%d", argIndex))
		args = append(args, *filter.SubCategoryID)
		argIndex++
	}

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIndex))
		args = append(args, *filter.Type)
		argIndex++
	}

	if filter.MostVisited != nil {
		conditions = append(conditions, fmt.Sprintf("most_visited = $%d", argIndex))
		args = append(args, *filter.MostVisited)
		argIndex++
	}

	if filter.ActiveOnly {
		conditions = append(conditions, "active = TRUE")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// count(*) OVER() returns the total matching count in a single query.
	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER() AS total_count
		FROM products
		%s
		ORDER BY sort_order, created_at DESC
		LIMIT $%d OFFSET $%d`,
		productColumns, whereClause, argIndex, argIndex+1,
	)

	limit := filter.PerPage
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	args = append(args, limit, offset)

	ctx, end := database.TraceQuery(ctx, "ListProducts", query)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		end(err)
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products   []domain.Product
		totalCount int
	)

	for rows.Next() {
		p, err := scanProduct(rows, &totalCount)
		if err != nil {
			end(err)
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, *p)
	}

	err = rows.Err()
	end(err)
	if err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, totalCount, nil
}

// ListActive returns every active product in manual sort order.
func (r *ProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE active = TRUE
		ORDER BY sort_order, created_at DESC`, productColumns)

	ctx, end := database.TraceQuery(ctx, "ListActiveProducts", query)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		end(err)
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			end(err)
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, *p)
	}

	err = rows.Err()
	end(err)
	if err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

// AppendReview appends one review and one rating to the product's embedded
// collections in a single UPDATE, so concurrent submissions are serialized
// by the store. It returns the updated product.
func (r *ProductRepository) AppendReview(ctx context.Context, productID string, review domain.Review, rating domain.Rating) (*domain.Product, error) {
	reviewJSON, err := json.Marshal([]domain.Review{review})
	if err != nil {
		return nil, fmt.Errorf("marshal review: %w", err)
	}
	ratingJSON, err := json.Marshal([]domain.Rating{rating})
	if err != nil {
		return nil, fmt.Errorf("marshal rating: %w", err)
	}

	query := `
		UPDATE products
		SET reviews = reviews || $2::jsonb,
		    ratings = ratings || $3::jsonb,
		    updated_at = $4
		WHERE id = $1`

	ctx, end := database.TraceQuery(ctx, "AppendReview", query)
	tag, err := r.pool.Exec(ctx, query, productID, reviewJSON, ratingJSON, review.CreatedAt)
	end(err)
	if err != nil {
		return nil, fmt.Errorf("append review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NotFound("product", productID)
	}

	return r.GetByID(ctx, productID)
}
