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
)

func newTestCurrencyService(prefs *mockPreferenceRepository) *CurrencyService {
	return NewCurrencyService(prefs, nil, domain.DefaultExchangeRate, newTestLogger())
}

func TestGetPreference(t *testing.T) {
	prefs := new(mockPreferenceRepository)
	svc := newTestCurrencyService(prefs)

	prefs.On("GetCurrency", mock.Anything, "sess-1").Return(domain.CurrencyUSD, nil)

	got, err := svc.GetPreference(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyUSD, got)
	prefs.AssertExpectations(t)
}

func TestGetPreferenceDefaultsWithoutSession(t *testing.T) {
	prefs := new(mockPreferenceRepository)
	svc := newTestCurrencyService(prefs)

	got, err := svc.GetPreference(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.BaseCurrency, got)
	prefs.AssertNotCalled(t, "GetCurrency", mock.Anything, mock.Anything)
}

func TestSetPreference(t *testing.T) {
	prefs := new(mockPreferenceRepository)
	svc := newTestCurrencyService(prefs)

	prefs.On("SaveCurrency", mock.Anything, "sess-1", domain.CurrencyUSD).Return(nil)

	require.NoError(t, svc.SetPreference(context.Background(), "sess-1", domain.CurrencyUSD))
	prefs.AssertExpectations(t)
}

func TestSetPreferenceRejectsUnknownCurrency(t *testing.T) {
	prefs := new(mockPreferenceRepository)
	svc := newTestCurrencyService(prefs)

	err := svc.SetPreference(context.Background(), "sess-1", domain.CurrencyCode("EUR"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	prefs.AssertNotCalled(t, "SaveCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func TestTogglePreference(t *testing.T) {
	tests := []struct {
		name     string
		stored   domain.CurrencyCode
		expected domain.CurrencyCode
	}{
		{
			name:     "SYP to USD",
			stored:   domain.CurrencySYP,
			expected: domain.CurrencyUSD,
		},
		{
			name:     "USD to SYP",
			stored:   domain.CurrencyUSD,
			expected: domain.CurrencySYP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := new(mockPreferenceRepository)
			svc := newTestCurrencyService(prefs)

			prefs.On("GetCurrency", mock.Anything, "sess-1").Return(tt.stored, nil)
			prefs.On("SaveCurrency", mock.Anything, "sess-1", tt.expected).Return(nil)

			got, err := svc.TogglePreference(context.Background(), "sess-1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			prefs.AssertExpectations(t)
		})
	}
}

func TestTogglePreferenceRequiresSession(t *testing.T) {
	svc := newTestCurrencyService(new(mockPreferenceRepository))

	_, err := svc.TogglePreference(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestTogglePreferenceSaveError(t *testing.T) {
	prefs := new(mockPreferenceRepository)
	svc := newTestCurrencyService(prefs)

	prefs.On("GetCurrency", mock.Anything, "sess-1").Return(domain.CurrencySYP, nil)
	prefs.On("SaveCurrency", mock.Anything, "sess-1", domain.CurrencyUSD).
		Return(errors.New("redis down"))

	_, err := svc.TogglePreference(context.Background(), "sess-1")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	svc := newTestCurrencyService(new(mockPreferenceRepository))

	got, err := svc.Convert(118.5, domain.CurrencySYP, domain.CurrencyUSD)
	require.NoError(t, err)
	assert.InDelta(t, 1.00, got, 1e-9)

	_, err = svc.Convert(10, domain.CurrencyCode("EUR"), domain.CurrencyUSD)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
