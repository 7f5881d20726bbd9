package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/event"
	"github.com/frbhusen/EPay-Store/internal/repository"
	apperrors "github.com/frbhusen/EPay-Store/pkg/errors"
)

// CurrencyService manages the per-session display currency preference.
type CurrencyService struct {
	preferences  repository.PreferenceRepository
	producer     *event.Producer
	exchangeRate float64
	logger       *slog.Logger
}

// NewCurrencyService creates a new currency service. The exchange rate is the
// configured SYP amount per one USD.
func NewCurrencyService(
	preferences repository.PreferenceRepository,
	producer *event.Producer,
	exchangeRate float64,
	logger *slog.Logger,
) *CurrencyService {
	if exchangeRate <= 0 {
		exchangeRate = domain.DefaultExchangeRate
	}
	return &CurrencyService{
		preferences:  preferences,
		producer:     producer,
		exchangeRate: exchangeRate,
		logger:       logger,
	}
}

// GetPreference returns the session's stored display currency, defaulting to
// the base currency. A read without a session has no stored preference, so it
// also defaults rather than failing.
func (s *CurrencyService) GetPreference(ctx context.Context, sessionID string) (domain.CurrencyCode, error) {
	if sessionID == "" {
		return domain.BaseCurrency, nil
	}

	currency, err := s.preferences.GetCurrency(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("get currency preference: %w", err)
	}
	return currency, nil
}

// SetPreference stores an explicit display currency for the session.
func (s *CurrencyService) SetPreference(ctx context.Context, sessionID string, currency domain.CurrencyCode) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}
	if !domain.IsValidCurrency(currency) {
		return apperrors.Validation("currency must be SYP or USD")
	}

	if err := s.preferences.SaveCurrency(ctx, sessionID, currency); err != nil {
		return fmt.Errorf("save currency preference: %w", err)
	}

	s.publishPreferred(ctx, sessionID, currency)
	return nil
}

// TogglePreference flips the session's display currency between SYP and USD
// and returns the new value.
func (s *CurrencyService) TogglePreference(ctx context.Context, sessionID string) (domain.CurrencyCode, error) {
	if sessionID == "" {
		return "", apperrors.InvalidInput("session id is required")
	}

	current, err := s.preferences.GetCurrency(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("get currency preference: %w", err)
	}

	next := current.Toggle()
	if err := s.preferences.SaveCurrency(ctx, sessionID, next); err != nil {
		return "", fmt.Errorf("save currency preference: %w", err)
	}

	s.logger.InfoContext(ctx, "currency preference toggled",
		slog.String("session_id", sessionID),
		slog.String("from", string(current)),
		slog.String("to", string(next)),
	)

	s.publishPreferred(ctx, sessionID, next)
	return next, nil
}

// Convert converts an amount between the supported currencies at the
// configured rate.
func (s *CurrencyService) Convert(amount float64, from, to domain.CurrencyCode) (float64, error) {
	if !domain.IsValidCurrency(from) || !domain.IsValidCurrency(to) {
		return 0, apperrors.Validation("currency must be SYP or USD")
	}
	return domain.ConvertPrice(amount, from, to, s.exchangeRate), nil
}

func (s *CurrencyService) publishPreferred(ctx context.Context, sessionID string, currency domain.CurrencyCode) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishCurrencyPreferred(ctx, sessionID, currency); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish currency.preferred event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}
}
