package rules

import (
	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// WithdrawalQuote is the outcome of a valid withdrawal request. The fee is
// taken out of the requested amount: the account is debited Requested and
// receives NetAmount.
type WithdrawalQuote struct {
	Requested decimal.Decimal
	FeeRate   decimal.Decimal
	Fee       decimal.Decimal
	NetAmount decimal.Decimal
}

// ComputeWithdrawal validates a withdrawal and splits it into fee and net.
//
// Checks run in order: non-negative inputs, requested >= minWithdrawal
// (BelowMinimum), requested <= balance (InsufficientBalance). NetAmount is
// derived from the unrounded fee.
func ComputeWithdrawal(requested, balance decimal.Decimal, fees domain.FeeSchedule, minWithdrawal decimal.Decimal) (WithdrawalQuote, error) {
	if err := validateAmounts(
		namedAmount{"requested amount", requested},
		namedAmount{"wallet balance", balance},
	); err != nil {
		return WithdrawalQuote{}, err
	}

	if requested.LessThan(minWithdrawal) {
		return WithdrawalQuote{}, apperror.ErrBelowMinimum(minWithdrawal.String())
	}
	if requested.GreaterThan(balance) {
		return WithdrawalQuote{}, apperror.ErrInsufficientBalance()
	}

	fee := requested.Mul(fees.WithdrawalFeeRate)
	net := requested.Sub(fee)

	return WithdrawalQuote{
		Requested: domain.RoundMoney(requested),
		FeeRate:   fees.WithdrawalFeeRate,
		Fee:       domain.RoundMoney(fee),
		NetAmount: domain.RoundMoney(net),
	}, nil
}
