package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:jti:"

var isRevokedDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "pathport_token_revocation_check_duration_seconds",
	Help:    "Latency of token revocation checks",
	Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05},
})

// Store - список отозванных JWT (logout). Ключ живет до истечения самого токена.
type Store struct {
	client redis.Cmdable
}

func New(client redis.Cmdable) *Store {
	return &Store{client: client}
}

func (s *Store) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		// токен уже истек, отзывать нечего
		return nil
	}

	err := s.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err()
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	start := time.Now()
	defer func() {
		isRevokedDuration.Observe(time.Since(start).Seconds())
	}()

	if tokenID == "" {
		return false, nil
	}

	err := s.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return true, nil
}
