package ports

import (
	"context"
	"time"

	"goldvest-ledger/internal/core/domain"
)

// AccountProvider supplies read-only account snapshots to the quote services.
// It returns (nil, nil) when the account does not exist.
type AccountProvider interface {
	GetSnapshot(ctx context.Context, accountID string) (*domain.AccountSnapshot, error)
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
