package ports

import (
	"context"

	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/rules"

	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// CalculatorService answers quotes from amounts supplied by the caller.
type CalculatorService interface {
	Overview() RulesOverview
	QuoteWithdrawal(ctx context.Context, amount, balance decimal.Decimal) (*rules.WithdrawalQuote, error)
	QuoteTransfer(ctx context.Context, amount, balance decimal.Decimal) (*rules.TransferQuote, error)
	QuoteLevelCommission(ctx context.Context, level int, base decimal.Decimal) (decimal.Decimal, error)
	QuoteDistribution(ctx context.Context, base decimal.Decimal, directReferrals int) (*rules.Distribution, error)
	QuoteCap(ctx context.Context, invested, paidOut, multiplier decimal.Decimal) (*rules.CapStatus, error)
	LevelUnlock(directReferrals int) rules.LevelUnlock
}

// RulesOverview is the published rule set.
type RulesOverview struct {
	Fees                    domain.FeeSchedule
	MinWithdrawal           decimal.Decimal
	Commission              domain.CommissionTable
	RequiredDirectReferrals int
	DirectCommissionRate    decimal.Decimal
	InvestorCapMultiplier   decimal.Decimal
	NetworkerCapMultiplier  decimal.Decimal
	Plans                   []domain.Plan
}

// AccountQuoteService answers quotes for a known account, taking balances
// and referral counts from an AccountProvider.
type AccountQuoteService interface {
	WithdrawalQuote(ctx context.Context, accountID string, amount decimal.Decimal) (*rules.WithdrawalQuote, error)
	TransferQuote(ctx context.Context, req TransferQuoteRequest) (*rules.TransferQuote, error)
	LevelsOverview(ctx context.Context, accountID string, base decimal.Decimal) (*LevelsOverview, error)
	CapStatus(ctx context.Context, accountID string) (*AccountCap, error)
}

// TransferQuoteRequest holds validated input for a transfer quote.
type TransferQuoteRequest struct {
	SenderID    string
	RecipientID string
	Amount      decimal.Decimal
}

// LevelsOverview combines unlock status with the commission each level
// earns on Base.
type LevelsOverview struct {
	AccountID        string
	Distribution     rules.Distribution
	DirectCommission decimal.Decimal
}

// AccountCap is the payout cap of an account plus its monthly yield.
type AccountCap struct {
	AccountID  string
	Plan       domain.PlanName
	Role       domain.Role
	Status     rules.CapStatus
	MonthlyROI decimal.Decimal
}
