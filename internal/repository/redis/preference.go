package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/frbhusen/EPay-Store/internal/domain"
)

const keyPrefix = "currency:"

// PreferenceRepository implements repository.PreferenceRepository using
// Redis. Preferences survive across visits until the TTL lapses.
type PreferenceRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreferenceRepository creates a new Redis-backed preference repository.
func NewPreferenceRepository(client *redis.Client, ttl time.Duration) *PreferenceRepository {
	return &PreferenceRepository{
		client: client,
		ttl:    ttl,
	}
}

// GetCurrency returns the stored preference for the session. A missing key
// or an unrecognized stored value yields the base currency.
func (r *PreferenceRepository) GetCurrency(ctx context.Context, sessionID string) (domain.CurrencyCode, error) {
	key := keyPrefix + sessionID

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.BaseCurrency, nil
		}
		return domain.BaseCurrency, fmt.Errorf("redis get currency preference: %w", err)
	}

	code := domain.CurrencyCode(val)
	if !domain.IsValidCurrency(code) {
		return domain.BaseCurrency, nil
	}

	return code, nil
}

// SaveCurrency stores the preference for the session with the configured TTL.
func (r *PreferenceRepository) SaveCurrency(ctx context.Context, sessionID string, currency domain.CurrencyCode) error {
	key := keyPrefix + sessionID

	if err := r.client.Set(ctx, key, string(currency), r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set currency preference: %w", err)
	}

	return nil
}
