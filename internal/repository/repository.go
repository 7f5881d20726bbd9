package repository

import (
	"context"

	"github.com/frbhusen/EPay-Store/internal/domain"
)

// ProductFilter defines filter criteria for listing products.
type ProductFilter struct {
	CategoryID    *string
	SubCategoryID *string
	Type          *string
	MostVisited   *bool
	ActiveOnly    bool
	Page          int
	PerPage       int
}

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)

	// GetByID retrieves a category by its identifier.
	GetByID(ctx context.Context, id string) (*domain.Category, error)
}

// SubCategoryRepository defines subcategory persistence operations.
type SubCategoryRepository interface {
	// List returns all subcategories ordered by name.
	List(ctx context.Context) ([]domain.SubCategory, error)
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	// List returns products matching the filter, paginated, with the total count.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)

	// ListActive returns every active product in manual sort order. Used by
	// the navigation views, which assemble the tree in memory.
	ListActive(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// AppendReview atomically appends one review and one rating to the
	// product's embedded collections and returns the updated product.
	AppendReview(ctx context.Context, productID string, review domain.Review, rating domain.Rating) (*domain.Product, error)
}

// PreferenceRepository persists the per-session currency display preference.
type PreferenceRepository interface {
	// GetCurrency returns the stored preference for the session, or the base
	// currency when none is stored.
	GetCurrency(ctx context.Context, sessionID string) (domain.CurrencyCode, error)

	// SaveCurrency stores the preference for the session.
	SaveCurrency(ctx context.Context, sessionID string, currency domain.CurrencyCode) error
}
