package memory

import (
	"context"
	"sync"
	"testing"

	"goldvest-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoProvider_SeededAccount(t *testing.T) {
	p := NewDemoProvider()

	a, err := p.GetSnapshot(context.Background(), "GV-12345")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "3250", a.WalletBalance.String())
	assert.Equal(t, "12500", a.TotalInvested.String())
	assert.Equal(t, 12, a.DirectReferrals)
	assert.Equal(t, domain.PlanProfessional, a.Plan)
}

func TestDemoProvider_AllIDsWellFormed(t *testing.T) {
	for _, a := range DemoAccounts() {
		assert.True(t, domain.ValidAccountID(a.ID), a.ID)
	}
}

func TestProvider_UnknownAccount(t *testing.T) {
	p := NewDemoProvider()

	a, err := p.GetSnapshot(context.Background(), "GV-00000")
	assert.NoError(t, err)
	assert.Nil(t, a)
}

func TestProvider_ReturnsCopy(t *testing.T) {
	p := NewDemoProvider()
	ctx := context.Background()

	a, err := p.GetSnapshot(ctx, "GV-12345")
	require.NoError(t, err)
	a.WalletBalance = decimal.Zero

	again, err := p.GetSnapshot(ctx, "GV-12345")
	require.NoError(t, err)
	assert.Equal(t, "3250", again.WalletBalance.String())
}

func TestProvider_Put(t *testing.T) {
	p := NewProvider()
	p.Put(domain.AccountSnapshot{ID: "GV-11111", WalletBalance: decimal.NewFromInt(5)})

	a, err := p.GetSnapshot(context.Background(), "GV-11111")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "5", a.WalletBalance.String())
	assert.Equal(t, 1, p.Len())
}

func TestProvider_CancelledContext(t *testing.T) {
	p := NewDemoProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetSnapshot(ctx, "GV-12345")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProvider_ConcurrentAccess(t *testing.T) {
	p := NewDemoProvider()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = p.GetSnapshot(ctx, "GV-12345")
		}()
		go func() {
			defer wg.Done()
			p.Put(domain.AccountSnapshot{ID: "GV-22222"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, p.Len())
}

func TestHealthCheck(t *testing.T) {
	hc := NewHealthCheck(NewDemoProvider())
	assert.NoError(t, hc.Ping(context.Background()))
	assert.Equal(t, "memory", hc.Name())

	empty := NewHealthCheck(NewProvider())
	assert.Error(t, empty.Ping(context.Background()))
}
