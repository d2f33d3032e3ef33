package rules

import (
	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// TransferQuote is the outcome of a valid peer-to-peer transfer. Unlike a
// withdrawal the fee is added on top: the recipient gets Amount and the
// sender pays TotalDeducted.
type TransferQuote struct {
	Amount        decimal.Decimal
	FeeRate       decimal.Decimal
	Fee           decimal.Decimal
	TotalDeducted decimal.Decimal
}

// ComputeP2PTransfer validates a transfer of amount from an account holding
// balance. amount must be > 0; there is no minimum beyond that.
func ComputeP2PTransfer(amount, balance decimal.Decimal, fees domain.FeeSchedule) (TransferQuote, error) {
	if !amount.IsPositive() {
		return TransferQuote{}, apperror.ErrInvalidAmount("transfer amount must be greater than zero")
	}
	if err := domain.ValidateAmount("wallet balance", balance); err != nil {
		return TransferQuote{}, err
	}

	fee := amount.Mul(fees.P2PFeeRate)
	total := amount.Add(fee)
	if total.GreaterThan(balance) {
		return TransferQuote{}, apperror.ErrInsufficientBalance()
	}

	return TransferQuote{
		Amount:        domain.RoundMoney(amount),
		FeeRate:       fees.P2PFeeRate,
		Fee:           domain.RoundMoney(fee),
		TotalDeducted: domain.RoundMoney(total),
	}, nil
}
