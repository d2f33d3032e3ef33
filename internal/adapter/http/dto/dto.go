package dto

import (
	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/internal/core/rules"

	"github.com/shopspring/decimal"
)

// Amounts are accepted as JSON numbers or strings ("1000", "10.05") and are
// always returned as strings with two decimals.

// WithdrawalQuoteRequest is the body of POST /api/v1/quotes/withdrawal.
type WithdrawalQuoteRequest struct {
	Amount  *decimal.Decimal `json:"amount" binding:"required,amount"`
	Balance *decimal.Decimal `json:"balance" binding:"required,amount"`
}

// TransferQuoteRequest is the body of POST /api/v1/quotes/transfer.
type TransferQuoteRequest struct {
	Amount  *decimal.Decimal `json:"amount" binding:"required,amount"`
	Balance *decimal.Decimal `json:"balance" binding:"required,amount"`
}

// CommissionQuoteRequest is the body of POST /api/v1/quotes/commission.
// With Level set it quotes that one level; otherwise it returns the full
// distribution for DirectReferrals (all levels when omitted).
type CommissionQuoteRequest struct {
	Base            *decimal.Decimal `json:"base" binding:"required,amount"`
	Level           *int             `json:"level,omitempty"`
	DirectReferrals *int             `json:"direct_referrals,omitempty" binding:"omitempty,gte=0"`
}

// CapQuoteRequest is the body of POST /api/v1/quotes/cap.
type CapQuoteRequest struct {
	TotalInvested *decimal.Decimal `json:"total_invested" binding:"required,amount"`
	TotalPaidOut  *decimal.Decimal `json:"total_paid_out" binding:"required,amount"`
	Multiplier    *decimal.Decimal `json:"multiplier" binding:"required,amount"`
}

// AccountWithdrawalRequest is the body of POST /api/v1/accounts/:id/withdrawal-quote.
type AccountWithdrawalRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required,amount"`
}

// AccountTransferRequest is the body of POST /api/v1/accounts/:id/transfer-quote.
type AccountTransferRequest struct {
	RecipientID string           `json:"recipient_id" binding:"required,account_id"`
	Amount      *decimal.Decimal `json:"amount" binding:"required,amount"`
}

// WithdrawalQuoteResponse mirrors rules.WithdrawalQuote.
type WithdrawalQuoteResponse struct {
	Requested string `json:"requested"`
	FeeRate   string `json:"fee_rate"`
	Fee       string `json:"fee"`
	NetAmount string `json:"net_amount"`
}

func NewWithdrawalQuoteResponse(q *rules.WithdrawalQuote) WithdrawalQuoteResponse {
	return WithdrawalQuoteResponse{
		Requested: domain.FormatMoney(q.Requested),
		FeeRate:   q.FeeRate.String(),
		Fee:       domain.FormatMoney(q.Fee),
		NetAmount: domain.FormatMoney(q.NetAmount),
	}
}

// TransferQuoteResponse mirrors rules.TransferQuote.
type TransferQuoteResponse struct {
	RecipientID   string `json:"recipient_id,omitempty"`
	Amount        string `json:"amount"`
	FeeRate       string `json:"fee_rate"`
	Fee           string `json:"fee"`
	TotalDeducted string `json:"total_deducted"`
}

func NewTransferQuoteResponse(q *rules.TransferQuote, recipientID string) TransferQuoteResponse {
	return TransferQuoteResponse{
		RecipientID:   recipientID,
		Amount:        domain.FormatMoney(q.Amount),
		FeeRate:       q.FeeRate.String(),
		Fee:           domain.FormatMoney(q.Fee),
		TotalDeducted: domain.FormatMoney(q.TotalDeducted),
	}
}

// LevelCommissionResponse is a single-level commission quote.
type LevelCommissionResponse struct {
	Level      int    `json:"level"`
	Percentage string `json:"percentage"`
	Base       string `json:"base"`
	Amount     string `json:"amount"`
}

// LevelUnlockResponse mirrors rules.LevelUnlock.
type LevelUnlockResponse struct {
	DirectReferrals   int  `json:"direct_referrals"`
	RequiredReferrals int  `json:"required_referrals"`
	Unlocked          bool `json:"unlocked"`
	Remaining         int  `json:"remaining"`
	ActiveLevels      int  `json:"active_levels"`
}

func NewLevelUnlockResponse(u rules.LevelUnlock) LevelUnlockResponse {
	return LevelUnlockResponse{
		DirectReferrals:   u.DirectReferrals,
		RequiredReferrals: u.RequiredReferrals,
		Unlocked:          u.Unlocked,
		Remaining:         u.Remaining,
		ActiveLevels:      u.ActiveLevels(),
	}
}

type LevelShareResponse struct {
	Level      int    `json:"level"`
	Percentage string `json:"percentage"`
	Amount     string `json:"amount"`
	Active     bool   `json:"active"`
}

// DistributionResponse mirrors rules.Distribution.
type DistributionResponse struct {
	Base   string               `json:"base"`
	Levels []LevelShareResponse `json:"levels"`
	Total  string               `json:"total"`
	Unlock LevelUnlockResponse  `json:"unlock"`
}

func NewDistributionResponse(d *rules.Distribution) DistributionResponse {
	levels := make([]LevelShareResponse, 0, len(d.Levels))
	for _, l := range d.Levels {
		levels = append(levels, LevelShareResponse{
			Level:      l.Level,
			Percentage: l.Percentage.String(),
			Amount:     domain.FormatMoney(l.Amount),
			Active:     l.Active,
		})
	}
	return DistributionResponse{
		Base:   domain.FormatMoney(d.Base),
		Levels: levels,
		Total:  domain.FormatMoney(d.Total),
		Unlock: NewLevelUnlockResponse(d.Unlock),
	}
}

// AccountLevelsResponse is the body of GET /api/v1/accounts/:id/levels.
type AccountLevelsResponse struct {
	AccountID        string               `json:"account_id"`
	DirectCommission string               `json:"direct_commission"`
	Distribution     DistributionResponse `json:"distribution"`
}

func NewAccountLevelsResponse(ov *ports.LevelsOverview) AccountLevelsResponse {
	return AccountLevelsResponse{
		AccountID:        ov.AccountID,
		DirectCommission: domain.FormatMoney(ov.DirectCommission),
		Distribution:     NewDistributionResponse(&ov.Distribution),
	}
}

// CapStatusResponse mirrors rules.CapStatus.
type CapStatusResponse struct {
	TotalInvested     string `json:"total_invested"`
	Multiplier        string `json:"multiplier"`
	CapAmount         string `json:"cap_amount"`
	TotalPaidOut      string `json:"total_paid_out"`
	RemainingCapacity string `json:"remaining_capacity"`
	Reached           bool   `json:"reached"`
}

func NewCapStatusResponse(s *rules.CapStatus) CapStatusResponse {
	return CapStatusResponse{
		TotalInvested:     domain.FormatMoney(s.TotalInvested),
		Multiplier:        s.Multiplier.String(),
		CapAmount:         domain.FormatMoney(s.CapAmount),
		TotalPaidOut:      domain.FormatMoney(s.TotalPaidOut),
		RemainingCapacity: domain.FormatMoney(s.RemainingCapacity),
		Reached:           s.Reached,
	}
}

// AccountCapResponse is the body of GET /api/v1/accounts/:id/cap.
type AccountCapResponse struct {
	AccountID  string            `json:"account_id"`
	Plan       string            `json:"plan,omitempty"`
	Role       string            `json:"role"`
	MonthlyROI string            `json:"monthly_roi"`
	Cap        CapStatusResponse `json:"cap"`
}

func NewAccountCapResponse(c *ports.AccountCap) AccountCapResponse {
	return AccountCapResponse{
		AccountID:  c.AccountID,
		Plan:       string(c.Plan),
		Role:       string(c.Role),
		MonthlyROI: domain.FormatMoney(c.MonthlyROI),
		Cap:        NewCapStatusResponse(&c.Status),
	}
}

type PlanResponse struct {
	Name          string `json:"name"`
	MinInvestment string `json:"min_investment"`
	MaxInvestment string `json:"max_investment,omitempty"`
	MonthlyROI    string `json:"monthly_roi"`
	CapMultiplier string `json:"cap_multiplier"`
}

type CommissionLevelResponse struct {
	Level      int    `json:"level"`
	Percentage string `json:"percentage"`
}

// RulesResponse is the body of GET /api/v1/rules.
type RulesResponse struct {
	WithdrawalFeeRate       string                    `json:"withdrawal_fee_rate"`
	P2PFeeRate              string                    `json:"p2p_fee_rate"`
	MinWithdrawal           string                    `json:"min_withdrawal"`
	RequiredDirectReferrals int                       `json:"required_direct_referrals"`
	DirectCommissionRate    string                    `json:"direct_commission_rate"`
	InvestorCapMultiplier   string                    `json:"investor_cap_multiplier"`
	NetworkerCapMultiplier  string                    `json:"networker_cap_multiplier"`
	CommissionLevels        []CommissionLevelResponse `json:"commission_levels"`
	Plans                   []PlanResponse            `json:"plans"`
}

func NewRulesResponse(ov ports.RulesOverview) RulesResponse {
	levels := make([]CommissionLevelResponse, 0, len(ov.Commission))
	for _, l := range ov.Commission {
		levels = append(levels, CommissionLevelResponse{Level: l.Level, Percentage: l.Percentage.String()})
	}

	plans := make([]PlanResponse, 0, len(ov.Plans))
	for _, p := range ov.Plans {
		pr := PlanResponse{
			Name:          string(p.Name),
			MinInvestment: domain.FormatMoney(p.MinInvestment),
			MonthlyROI:    p.MonthlyROI.String(),
			CapMultiplier: p.CapMultiplier.String(),
		}
		if !p.Unbounded() {
			pr.MaxInvestment = domain.FormatMoney(p.MaxInvestment)
		}
		plans = append(plans, pr)
	}

	return RulesResponse{
		WithdrawalFeeRate:       ov.Fees.WithdrawalFeeRate.String(),
		P2PFeeRate:              ov.Fees.P2PFeeRate.String(),
		MinWithdrawal:           domain.FormatMoney(ov.MinWithdrawal),
		RequiredDirectReferrals: ov.RequiredDirectReferrals,
		DirectCommissionRate:    ov.DirectCommissionRate.String(),
		InvestorCapMultiplier:   ov.InvestorCapMultiplier.String(),
		NetworkerCapMultiplier:  ov.NetworkerCapMultiplier.String(),
		CommissionLevels:        levels,
		Plans:                   plans,
	}
}

// AccountURI binds the :id path parameter of account routes.
type AccountURI struct {
	ID string `uri:"id" binding:"required,account_id"`
}

// LevelsQuery binds GET /api/v1/accounts/:id/levels?base=. Base is kept as
// text so the amount bound applies before it is parsed.
type LevelsQuery struct {
	Base string `form:"base" binding:"omitempty,amount"`
}

// UnlockQuery binds GET /api/v1/levels/unlock?direct=N.
type UnlockQuery struct {
	Direct *int `form:"direct" binding:"required"`
}
