package rules

import (
	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LevelUnlock reports whether an account has enough direct referrals to
// activate every commission level.
type LevelUnlock struct {
	DirectReferrals   int
	RequiredReferrals int
	Unlocked          bool
	Remaining         int
}

// ComputeLevelUnlock is total over its inputs; negative counts are treated
// as zero.
func ComputeLevelUnlock(directReferrals, requiredReferrals int) LevelUnlock {
	direct := max(directReferrals, 0)
	required := max(requiredReferrals, 0)

	return LevelUnlock{
		DirectReferrals:   direct,
		RequiredReferrals: required,
		Unlocked:          direct >= required,
		Remaining:         max(required-direct, 0),
	}
}

// LevelActive reports whether commission level is paid out. Until every
// level is unlocked, one level opens per direct referral.
func (u LevelUnlock) LevelActive(level int) bool {
	if level < 1 || level > domain.CommissionLevels {
		return false
	}
	return u.Unlocked || level <= u.DirectReferrals
}

// ActiveLevels counts the levels currently paid out.
func (u LevelUnlock) ActiveLevels() int {
	if u.Unlocked {
		return domain.CommissionLevels
	}
	return min(u.DirectReferrals, domain.CommissionLevels)
}

// CommissionForLevel returns base * pct(level) / 100, rounded to cents.
func CommissionForLevel(level int, base decimal.Decimal, table domain.CommissionTable) (decimal.Decimal, error) {
	share, err := levelShare(level, base, table)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.RoundMoney(share), nil
}

func levelShare(level int, base decimal.Decimal, table domain.CommissionTable) (decimal.Decimal, error) {
	pct, ok := table.Percentage(level)
	if !ok {
		return decimal.Zero, apperror.ErrLevelOutOfRange(level, domain.CommissionLevels)
	}
	if err := domain.ValidateAmount("base amount", base); err != nil {
		return decimal.Zero, err
	}
	return base.Mul(pct).Div(hundred), nil
}

// LevelShare is one row of a commission distribution.
type LevelShare struct {
	Level      int
	Percentage decimal.Decimal
	Amount     decimal.Decimal
	Active     bool
}

// Distribution is the commission every level would earn on a base amount.
// Total sums active levels only.
type Distribution struct {
	Base   decimal.Decimal
	Levels []LevelShare
	Total  decimal.Decimal
	Unlock LevelUnlock
}

// CommissionDistribution computes the share of base at all levels. Inactive
// levels still report their amount but do not count toward Total.
func CommissionDistribution(base decimal.Decimal, table domain.CommissionTable, unlock LevelUnlock) (Distribution, error) {
	if err := domain.ValidateAmount("base amount", base); err != nil {
		return Distribution{}, err
	}

	d := Distribution{
		Base:   domain.RoundMoney(base),
		Levels: make([]LevelShare, 0, domain.CommissionLevels),
		Unlock: unlock,
	}
	total := decimal.Zero
	for _, row := range table {
		share, err := levelShare(row.Level, base, table)
		if err != nil {
			return Distribution{}, err
		}
		active := unlock.LevelActive(row.Level)
		if active {
			total = total.Add(share)
		}
		d.Levels = append(d.Levels, LevelShare{
			Level:      row.Level,
			Percentage: row.Percentage,
			Amount:     domain.RoundMoney(share),
			Active:     active,
		})
	}
	d.Total = domain.RoundMoney(total)
	return d, nil
}
