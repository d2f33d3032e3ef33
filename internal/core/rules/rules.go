// Package rules computes fees, net settlement amounts, commission shares and
// payout-cap status. Every function is pure: results depend only on the
// arguments, nothing is logged or stored, and the caller owns balances.
//
// Amounts keep full precision through each calculation and are rounded to
// cents (half-up) only in the returned values.
package rules

import (
	"goldvest-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Settings is the immutable configuration the engine is built from.
type Settings struct {
	Fees                    domain.FeeSchedule
	MinWithdrawal           decimal.Decimal
	Commission              domain.CommissionTable
	RequiredDirectReferrals int
}

// DefaultSettings returns the platform's published rules.
func DefaultSettings() Settings {
	return Settings{
		Fees:                    domain.DefaultFeeSchedule(),
		MinWithdrawal:           domain.DefaultMinWithdrawal(),
		Commission:              domain.DefaultCommissionTable(),
		RequiredDirectReferrals: domain.DefaultRequiredDirectReferrals,
	}
}

// Engine binds Settings to the package functions. It is a value type with no
// mutable state and is safe to share between goroutines.
type Engine struct {
	settings Settings
}

// New creates an Engine from s.
func New(s Settings) Engine {
	return Engine{settings: s}
}

// Settings returns a copy of the engine configuration.
func (e Engine) Settings() Settings {
	return e.settings
}

// Withdrawal quotes a withdrawal against balance.
func (e Engine) Withdrawal(requested, balance decimal.Decimal) (WithdrawalQuote, error) {
	return ComputeWithdrawal(requested, balance, e.settings.Fees, e.settings.MinWithdrawal)
}

// Transfer quotes a peer-to-peer transfer against balance.
func (e Engine) Transfer(amount, balance decimal.Decimal) (TransferQuote, error) {
	return ComputeP2PTransfer(amount, balance, e.settings.Fees)
}

// Unlock reports level-unlock status for a direct referral count.
func (e Engine) Unlock(direct int) LevelUnlock {
	return ComputeLevelUnlock(direct, e.settings.RequiredDirectReferrals)
}

// Commission returns the share paid at level on base.
func (e Engine) Commission(level int, base decimal.Decimal) (decimal.Decimal, error) {
	return CommissionForLevel(level, base, e.settings.Commission)
}

// Distribution returns every level's share of base for an account with
// direct referrals.
func (e Engine) Distribution(base decimal.Decimal, direct int) (Distribution, error) {
	return CommissionDistribution(base, e.settings.Commission, e.Unlock(direct))
}

func validateAmounts(named ...namedAmount) error {
	for _, n := range named {
		if err := domain.ValidateAmount(n.name, n.value); err != nil {
			return err
		}
	}
	return nil
}

type namedAmount struct {
	name  string
	value decimal.Decimal
}
