package rules

import (
	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// CapStatus describes how much more an account may be paid before reaching
// its payout ceiling. It is informational: nothing in this package refuses a
// withdrawal or credit because the cap is reached.
type CapStatus struct {
	TotalInvested     decimal.Decimal
	Multiplier        decimal.Decimal
	CapAmount         decimal.Decimal
	TotalPaidOut      decimal.Decimal
	RemainingCapacity decimal.Decimal
	Reached           bool
}

// InvestmentCapStatus computes cap = invested * multiplier and the capacity
// left after paidOut, floored at zero.
func InvestmentCapStatus(invested, paidOut, multiplier decimal.Decimal) (CapStatus, error) {
	if err := validateAmounts(
		namedAmount{"total invested", invested},
		namedAmount{"total paid out", paidOut},
	); err != nil {
		return CapStatus{}, err
	}
	if !multiplier.IsPositive() {
		return CapStatus{}, apperror.ErrInvalidAmount("cap multiplier must be greater than zero")
	}

	capAmount := invested.Mul(multiplier)
	remaining := decimal.Max(capAmount.Sub(paidOut), decimal.Zero)

	return CapStatus{
		TotalInvested:     domain.RoundMoney(invested),
		Multiplier:        multiplier,
		CapAmount:         domain.RoundMoney(capAmount),
		TotalPaidOut:      domain.RoundMoney(paidOut),
		RemainingCapacity: domain.RoundMoney(remaining),
		Reached:           remaining.IsZero(),
	}, nil
}

// CapMultiplierFor returns the larger of the plan multiplier and the role
// multiplier supplied by configuration.
func CapMultiplierFor(plan domain.Plan, role domain.Role, investor, networker decimal.Decimal) decimal.Decimal {
	roleMultiplier := investor
	if role == domain.RoleNetworker {
		roleMultiplier = networker
	}
	return decimal.Max(plan.CapMultiplier, roleMultiplier)
}
