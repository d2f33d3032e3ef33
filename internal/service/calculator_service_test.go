package service

import (
	"context"
	"io"
	"testing"

	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/rules"
	"goldvest-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func newCalculator() *CalculatorServiceImpl {
	return NewCalculatorService(rules.New(rules.DefaultSettings()), DefaultCapPolicy(), newTestLogger())
}

func TestCalculatorService_Overview(t *testing.T) {
	svc := newCalculator()

	ov := svc.Overview()
	assertDecimal(t, "0.10", ov.Fees.WithdrawalFeeRate)
	assertDecimal(t, "0.05", ov.Fees.P2PFeeRate)
	assertDecimal(t, "10", ov.MinWithdrawal)
	assert.Equal(t, 10, ov.RequiredDirectReferrals)
	assertDecimal(t, "25", ov.Commission[0].Percentage)
	assertDecimal(t, "0.07", ov.DirectCommissionRate)
	assertDecimal(t, "2", ov.InvestorCapMultiplier)
	assertDecimal(t, "3", ov.NetworkerCapMultiplier)
	assert.Len(t, ov.Plans, 3)
}

func TestCalculatorService_QuoteWithdrawal(t *testing.T) {
	svc := newCalculator()

	q, err := svc.QuoteWithdrawal(context.Background(), dec("500"), dec("3250"))
	require.NoError(t, err)
	assertDecimal(t, "50", q.Fee)
	assertDecimal(t, "450", q.NetAmount)
}

func TestCalculatorService_QuoteWithdrawal_Errors(t *testing.T) {
	svc := newCalculator()
	ctx := context.Background()

	_, err := svc.QuoteWithdrawal(ctx, dec("5"), dec("3250"))
	assertAppError(t, err, apperror.CodeBelowMinimum)

	_, err = svc.QuoteWithdrawal(ctx, dec("5000"), dec("3250"))
	assertAppError(t, err, apperror.CodeInsufficientBalance)
}

func TestCalculatorService_QuoteTransfer(t *testing.T) {
	svc := newCalculator()

	q, err := svc.QuoteTransfer(context.Background(), dec("200"), dec("3250"))
	require.NoError(t, err)
	assertDecimal(t, "10", q.Fee)
	assertDecimal(t, "210", q.TotalDeducted)

	_, err = svc.QuoteTransfer(context.Background(), dec("0"), dec("3250"))
	assertAppError(t, err, apperror.CodeInvalidAmount)
}

func TestCalculatorService_QuoteLevelCommission(t *testing.T) {
	svc := newCalculator()

	amount, err := svc.QuoteLevelCommission(context.Background(), 2, dec("1000"))
	require.NoError(t, err)
	assertDecimal(t, "150", amount)

	_, err = svc.QuoteLevelCommission(context.Background(), 11, dec("1000"))
	assertAppError(t, err, apperror.CodeLevelOutOfRange)
}

func TestCalculatorService_QuoteDistribution(t *testing.T) {
	svc := newCalculator()

	d, err := svc.QuoteDistribution(context.Background(), dec("2500"), 12)
	require.NoError(t, err)
	assertDecimal(t, "1550", d.Total)
	assert.True(t, d.Unlock.Unlocked)
	assert.Len(t, d.Levels, domain.CommissionLevels)
}

func TestCalculatorService_QuoteCap(t *testing.T) {
	svc := newCalculator()

	st, err := svc.QuoteCap(context.Background(), dec("1000"), dec("2500"), dec("2"))
	require.NoError(t, err)
	assertDecimal(t, "2000", st.CapAmount)
	assertDecimal(t, "0", st.RemainingCapacity)
	assert.True(t, st.Reached)

	_, err = svc.QuoteCap(context.Background(), dec("1000"), dec("0"), dec("0"))
	assertAppError(t, err, apperror.CodeInvalidAmount)
}

func TestCalculatorService_LevelUnlock(t *testing.T) {
	svc := newCalculator()

	u := svc.LevelUnlock(7)
	assert.False(t, u.Unlocked)
	assert.Equal(t, 3, u.Remaining)
	assert.Equal(t, 10, u.RequiredReferrals)
}
