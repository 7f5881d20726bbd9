package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/frbhusen/EPay-Store/pkg/errors"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/repository"
)

func newTestProductService(repo *mockProductRepository, prefs *mockPreferenceRepository) *ProductService {
	return NewProductService(repo, prefs, domain.DefaultExchangeRate, newTestLogger())
}

func TestListProductsClampsPagination(t *testing.T) {
	repo := new(mockProductRepository)
	prefs := new(mockPreferenceRepository)
	svc := newTestProductService(repo, prefs)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ProductFilter) bool {
		return f.Page == 1 && f.PerPage == 100
	})).Return([]domain.Product{}, 0, nil)

	_, _, err := svc.ListProducts(context.Background(), repository.ProductFilter{Page: -5, PerPage: 500}, "")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListProductsAnnotates(t *testing.T) {
	repo := new(mockProductRepository)
	prefs := new(mockPreferenceRepository)
	svc := newTestProductService(repo, prefs)

	products := []domain.Product{
		{
			ID:       "p-1",
			Name:     "Widget",
			Price:    200,
			Discount: 50,
			Ratings:  []domain.Rating{{User: "a", Rating: 3}, {User: "b", Rating: 5}},
			Reviews:  []domain.Review{{User: "a", Comment: "ok", Rating: 3}},
		},
	}
	repo.On("List", mock.Anything, mock.Anything).Return(products, 1, nil)

	views, total, err := svc.ListProducts(context.Background(), repository.ProductFilter{}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, views, 1)

	assert.InDelta(t, 100, views[0].FinalPrice, 1e-9)
	assert.InDelta(t, 4.0, views[0].AverageRating, 1e-9)
	assert.Equal(t, 1, views[0].ReviewCount)
	// No session, so prices display in the base currency.
	assert.Equal(t, "200.00 SYP", views[0].DisplayPrice)
	assert.Equal(t, "100.00 SYP", views[0].DisplayFinalPrice)
}

func TestGetProductUsesSessionCurrency(t *testing.T) {
	repo := new(mockProductRepository)
	prefs := new(mockPreferenceRepository)
	svc := newTestProductService(repo, prefs)

	product := &domain.Product{ID: "p-1", Name: "Widget", Price: 118.5}
	repo.On("GetByID", mock.Anything, "p-1").Return(product, nil)
	prefs.On("GetCurrency", mock.Anything, "sess-1").Return(domain.CurrencyUSD, nil)

	view, err := svc.GetProduct(context.Background(), "p-1", "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "1.00 USD", view.DisplayPrice)
	assert.Equal(t, "1.00 USD", view.DisplayFinalPrice)
	repo.AssertExpectations(t)
	prefs.AssertExpectations(t)
}

func TestGetProductUSDStoredPrice(t *testing.T) {
	repo := new(mockProductRepository)
	prefs := new(mockPreferenceRepository)
	svc := newTestProductService(repo, prefs)

	// A product priced in USD displays converted for a SYP viewer.
	product := &domain.Product{ID: "p-1", Name: "Import", Price: 2, Currency: strPtr("USD")}
	repo.On("GetByID", mock.Anything, "p-1").Return(product, nil)
	prefs.On("GetCurrency", mock.Anything, "sess-1").Return(domain.CurrencySYP, nil)

	view, err := svc.GetProduct(context.Background(), "p-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "237.00 SYP", view.DisplayPrice)
}

func TestGetProductPreferenceFailureFallsBack(t *testing.T) {
	repo := new(mockProductRepository)
	prefs := new(mockPreferenceRepository)
	svc := newTestProductService(repo, prefs)

	product := &domain.Product{ID: "p-1", Name: "Widget", Price: 50}
	repo.On("GetByID", mock.Anything, "p-1").Return(product, nil)
	prefs.On("GetCurrency", mock.Anything, "sess-1").
		Return(domain.CurrencyCode(""), errors.New("redis down"))

	view, err := svc.GetProduct(context.Background(), "p-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "50.00 SYP", view.DisplayPrice)
}

func TestGetProductNotFound(t *testing.T) {
	repo := new(mockProductRepository)
	prefs := new(mockPreferenceRepository)
	svc := newTestProductService(repo, prefs)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NotFound("product", "missing"))

	_, err := svc.GetProduct(context.Background(), "missing", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
