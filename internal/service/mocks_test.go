package service

import (
	"context"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/repository"
)

// --- Mock Repositories ---

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

type mockSubCategoryRepository struct {
	mock.Mock
}

func (m *mockSubCategoryRepository) List(ctx context.Context) ([]domain.SubCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubCategory), args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *mockProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) AppendReview(ctx context.Context, productID string, review domain.Review, rating domain.Rating) (*domain.Product, error) {
	args := m.Called(ctx, productID, review, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type mockPreferenceRepository struct {
	mock.Mock
}

func (m *mockPreferenceRepository) GetCurrency(ctx context.Context, sessionID string) (domain.CurrencyCode, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.CurrencyCode), args.Error(1)
}

func (m *mockPreferenceRepository) SaveCurrency(ctx context.Context, sessionID string, currency domain.CurrencyCode) error {
	args := m.Called(ctx, sessionID, currency)
	return args.Error(0)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func subRef(id string) *domain.Ref {
	return &domain.Ref{ID: id}
}

func strPtr(s string) *string {
	return &s
}
