package rules

import (
	"goldvest-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// MonthlyROI is the yield credited for one month on invested under plan.
func MonthlyROI(invested decimal.Decimal, plan domain.Plan) (decimal.Decimal, error) {
	if err := domain.ValidateAmount("total invested", invested); err != nil {
		return decimal.Zero, err
	}
	return domain.RoundMoney(invested.Mul(plan.MonthlyROI)), nil
}

// DirectCommission is the one-off share paid to a referrer when a direct
// referral invests base. rate is a fraction.
func DirectCommission(base, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmounts(
		namedAmount{"base amount", base},
		namedAmount{"commission rate", rate},
	); err != nil {
		return decimal.Zero, err
	}
	return domain.RoundMoney(base.Mul(rate)), nil
}
