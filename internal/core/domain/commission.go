package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// CommissionLevels is the depth of the referral tree that earns profit share.
	CommissionLevels = 10

	// DefaultRequiredDirectReferrals is the number of direct referrals
	// needed before all commission levels are active.
	DefaultRequiredDirectReferrals = 10
)

// CommissionLevel is one row of the profit-share table. Percentage is in
// percent units (25 == 25%).
type CommissionLevel struct {
	Level      int             `json:"level"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CommissionTable is the ordered profit-share table. The array length pins
// it to exactly CommissionLevels rows.
type CommissionTable [CommissionLevels]CommissionLevel

// DefaultCommissionTable returns the business-model percentages for
// levels 1 through 10.
func DefaultCommissionTable() CommissionTable {
	pcts := [CommissionLevels]string{"25", "15", "7", "4", "3", "2.5", "2", "1.5", "1", "1"}

	var t CommissionTable
	for i, p := range pcts {
		t[i] = CommissionLevel{Level: i + 1, Percentage: decimal.RequireFromString(p)}
	}
	return t
}

// Validate checks that levels run contiguously from 1 and percentages are
// not negative.
func (t CommissionTable) Validate() error {
	for i, row := range t {
		if row.Level != i+1 {
			return fmt.Errorf("commission table row %d has level %d, want %d", i, row.Level, i+1)
		}
		if row.Percentage.IsNegative() {
			return fmt.Errorf("commission level %d has negative percentage", row.Level)
		}
	}
	return nil
}

// Percentage returns the rate for level. ok is false when level is
// outside 1..CommissionLevels.
func (t CommissionTable) Percentage(level int) (pct decimal.Decimal, ok bool) {
	if level < 1 || level > CommissionLevels {
		return decimal.Zero, false
	}
	return t[level-1].Percentage, true
}

// DirectCommissionRate is the share of a direct referral's investment paid to
// the referrer, as a fraction.
func DirectCommissionRate() decimal.Decimal {
	return decimal.RequireFromString("0.07")
}
