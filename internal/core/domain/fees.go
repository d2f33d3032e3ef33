package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FeeSchedule holds the fixed percentage rates charged per operation,
// expressed as fractions (0.10 == 10%).
type FeeSchedule struct {
	WithdrawalFeeRate decimal.Decimal `json:"withdrawal_fee_rate"`
	P2PFeeRate        decimal.Decimal `json:"p2p_fee_rate"`
}

// DefaultFeeSchedule returns the platform rates: 10% on withdrawals,
// 5% on peer-to-peer transfers.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		WithdrawalFeeRate: decimal.RequireFromString("0.10"),
		P2PFeeRate:        decimal.RequireFromString("0.05"),
	}
}

// Validate checks that both rates lie in [0, 1).
func (f FeeSchedule) Validate() error {
	if err := validateRate("withdrawal fee rate", f.WithdrawalFeeRate); err != nil {
		return err
	}
	return validateRate("p2p fee rate", f.P2PFeeRate)
}

func validateRate(name string, r decimal.Decimal) error {
	if r.IsNegative() || r.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s %s outside [0, 1)", name, r.String())
	}
	return nil
}

// DefaultMinWithdrawal is the smallest withdrawal accepted, in dollars.
func DefaultMinWithdrawal() decimal.Decimal {
	return decimal.NewFromInt(10)
}
