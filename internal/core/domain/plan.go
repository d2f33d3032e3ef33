package domain

import (
	"strings"

	"goldvest-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// PlanName identifies an investment plan tier.
type PlanName string

const (
	PlanStarter      PlanName = "STARTER"
	PlanProfessional PlanName = "PROFESSIONAL"
	PlanElite        PlanName = "ELITE"
)

// Plan describes an investment tier. MaxInvestment is zero for the open-ended
// top tier. MonthlyROI is a fraction (0.075 == 7.5%).
type Plan struct {
	Name          PlanName        `json:"name"`
	MinInvestment decimal.Decimal `json:"min_investment"`
	MaxInvestment decimal.Decimal `json:"max_investment"`
	MonthlyROI    decimal.Decimal `json:"monthly_roi"`
	CapMultiplier decimal.Decimal `json:"cap_multiplier"`
}

// Unbounded reports whether the plan has no investment ceiling.
func (p Plan) Unbounded() bool {
	return p.MaxInvestment.IsZero()
}

// Accepts reports whether amount falls inside the plan's investment band.
func (p Plan) Accepts(amount decimal.Decimal) bool {
	if amount.LessThan(p.MinInvestment) {
		return false
	}
	return p.Unbounded() || amount.LessThanOrEqual(p.MaxInvestment)
}

// Plans returns the tiers ordered from smallest to largest.
func Plans() []Plan {
	return []Plan{
		{
			Name:          PlanStarter,
			MinInvestment: decimal.NewFromInt(100),
			MaxInvestment: decimal.NewFromInt(999),
			MonthlyROI:    decimal.RequireFromString("0.06"),
			CapMultiplier: decimal.NewFromInt(2),
		},
		{
			Name:          PlanProfessional,
			MinInvestment: decimal.NewFromInt(1000),
			MaxInvestment: decimal.NewFromInt(9999),
			MonthlyROI:    decimal.RequireFromString("0.075"),
			CapMultiplier: decimal.RequireFromString("2.5"),
		},
		{
			Name:          PlanElite,
			MinInvestment: decimal.NewFromInt(10000),
			MonthlyROI:    decimal.RequireFromString("0.09"),
			CapMultiplier: decimal.NewFromInt(3),
		},
	}
}

// PlanForAmount picks the tier whose band contains amount. Amounts between
// two bands (e.g. 999.50) fall into the lower tier.
func PlanForAmount(amount decimal.Decimal) (Plan, error) {
	plans := Plans()
	if amount.LessThan(plans[0].MinInvestment) {
		return Plan{}, apperror.ErrInvalidAmount("below the smallest plan minimum of $" + plans[0].MinInvestment.String())
	}
	for i := len(plans) - 1; i >= 0; i-- {
		if amount.GreaterThanOrEqual(plans[i].MinInvestment) {
			return plans[i], nil
		}
	}
	return plans[0], nil
}

// PlanByName looks a plan up case-insensitively.
func PlanByName(name string) (Plan, bool) {
	for _, p := range Plans() {
		if strings.EqualFold(string(p.Name), name) {
			return p, true
		}
	}
	return Plan{}, false
}
