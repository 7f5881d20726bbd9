package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/repository"
)

// ProductService implements the read side of the product catalog.
type ProductService struct {
	repo         repository.ProductRepository
	preferences  repository.PreferenceRepository
	exchangeRate float64
	logger       *slog.Logger
}

// NewProductService creates a new product service. The exchange rate is the
// configured SYP amount per one USD.
func NewProductService(
	repo repository.ProductRepository,
	preferences repository.PreferenceRepository,
	exchangeRate float64,
	logger *slog.Logger,
) *ProductService {
	if exchangeRate <= 0 {
		exchangeRate = domain.DefaultExchangeRate
	}
	return &ProductService{
		repo:         repo,
		preferences:  preferences,
		exchangeRate: exchangeRate,
		logger:       logger,
	}
}

// ListProducts returns a filtered, paginated list of products annotated with
// their derived display fields.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter, sessionID string) ([]domain.ProductView, int, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	currency := s.displayCurrency(ctx, sessionID)

	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.annotate(p, currency))
	}
	return views, total, nil
}

// GetProduct retrieves a single product annotated with its derived display
// fields, priced in the session's preferred currency when one is stored.
func (s *ProductService) GetProduct(ctx context.Context, id, sessionID string) (*domain.ProductView, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	view := s.annotate(*product, s.displayCurrency(ctx, sessionID))
	return &view, nil
}

// displayCurrency resolves the session's stored preference. Lookup failures
// fall back to the base currency so reads never break on a preference store
// outage.
func (s *ProductService) displayCurrency(ctx context.Context, sessionID string) domain.CurrencyCode {
	if sessionID == "" {
		return domain.BaseCurrency
	}
	currency, err := s.preferences.GetCurrency(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load currency preference",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		return domain.BaseCurrency
	}
	return currency
}

// annotate builds the product view and fills in the display prices denominated
// in the viewer's currency.
func (s *ProductService) annotate(p domain.Product, display domain.CurrencyCode) domain.ProductView {
	view := domain.NewProductView(p)

	stored := domain.BaseCurrency
	if p.Currency != nil && domain.IsValidCurrency(domain.CurrencyCode(*p.Currency)) {
		stored = domain.CurrencyCode(*p.Currency)
	}

	view.DisplayPrice = domain.FormatPrice(p.Price, stored, display, s.exchangeRate)
	view.DisplayFinalPrice = domain.FormatPrice(view.FinalPrice, stored, display, s.exchangeRate)
	return view
}
