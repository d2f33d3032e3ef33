// Package memory provides an in-process AccountProvider seeded with demo
// accounts, used when no snapshot database is configured.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"goldvest-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Provider implements ports.AccountProvider from a map of snapshots.
type Provider struct {
	mu       sync.RWMutex
	accounts map[string]domain.AccountSnapshot
}

// NewProvider returns a provider holding the given snapshots.
func NewProvider(snapshots ...domain.AccountSnapshot) *Provider {
	p := &Provider{accounts: make(map[string]domain.AccountSnapshot, len(snapshots))}
	for _, s := range snapshots {
		p.accounts[s.ID] = s
	}
	return p
}

// NewDemoProvider returns a provider seeded with DemoAccounts.
func NewDemoProvider() *Provider {
	return NewProvider(DemoAccounts()...)
}

// GetSnapshot returns a copy of the stored snapshot, or (nil, nil) when the
// account is unknown.
func (p *Provider) GetSnapshot(ctx context.Context, accountID string) (*domain.AccountSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	s, ok := p.accounts[accountID]
	p.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Put stores or replaces a snapshot.
func (p *Provider) Put(s domain.AccountSnapshot) {
	p.mu.Lock()
	p.accounts[s.ID] = s
	p.mu.Unlock()
}

// Len returns the number of stored accounts.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.accounts)
}

// DemoAccounts are the sample accounts shown on the member dashboard.
func DemoAccounts() []domain.AccountSnapshot {
	seeded := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []domain.AccountSnapshot{
		{
			ID:              "GV-12345",
			DisplayName:     "John Doe",
			Role:            domain.RoleInvestor,
			Plan:            domain.PlanProfessional,
			WalletBalance:   decimal.NewFromInt(3250),
			TotalInvested:   decimal.NewFromInt(12500),
			TotalPaidOut:    decimal.NewFromInt(1875),
			DirectReferrals: 12,
			UpdatedAt:       seeded,
		},
		{
			ID:              "GV-45678",
			DisplayName:     "Sarah Chen",
			Role:            domain.RoleNetworker,
			Plan:            domain.PlanStarter,
			WalletBalance:   decimal.RequireFromString("420.50"),
			TotalInvested:   decimal.NewFromInt(500),
			TotalPaidOut:    decimal.NewFromInt(310),
			DirectReferrals: 7,
			UpdatedAt:       seeded,
		},
		{
			ID:              "GV-98765",
			DisplayName:     "Marcus Webb",
			Role:            domain.RoleInvestor,
			Plan:            domain.PlanElite,
			WalletBalance:   decimal.NewFromInt(8),
			TotalInvested:   decimal.NewFromInt(25000),
			TotalPaidOut:    decimal.NewFromInt(50000),
			DirectReferrals: 0,
			UpdatedAt:       seeded,
		},
	}
}

var errEmpty = errors.New("account store is empty")

// HealthCheck implements ports.HealthChecker. The in-memory store is always
// reachable; it reports unhealthy only when empty.
type HealthCheck struct {
	provider *Provider
}

func NewHealthCheck(p *Provider) *HealthCheck {
	return &HealthCheck{provider: p}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.provider.Len() == 0 {
		return errEmpty
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "memory"
}
