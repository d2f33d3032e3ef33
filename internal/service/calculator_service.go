package service

import (
	"context"

	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/internal/core/rules"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CapPolicy holds the role-based payout cap multipliers.
type CapPolicy struct {
	Investor  decimal.Decimal
	Networker decimal.Decimal
}

// DefaultCapPolicy is "Investor: 2x | Networker: 3x".
func DefaultCapPolicy() CapPolicy {
	return CapPolicy{
		Investor:  decimal.NewFromInt(2),
		Networker: decimal.NewFromInt(3),
	}
}

// CalculatorServiceImpl implements ports.CalculatorService on top of the
// rules engine. It holds no per-request state.
type CalculatorServiceImpl struct {
	engine rules.Engine
	caps   CapPolicy
	log    zerolog.Logger
}

// NewCalculatorService creates a new CalculatorServiceImpl.
func NewCalculatorService(engine rules.Engine, caps CapPolicy, log zerolog.Logger) *CalculatorServiceImpl {
	return &CalculatorServiceImpl{
		engine: engine,
		caps:   caps,
		log:    log,
	}
}

// Overview returns the rule set the engine was configured with.
func (s *CalculatorServiceImpl) Overview() ports.RulesOverview {
	settings := s.engine.Settings()
	return ports.RulesOverview{
		Fees:                    settings.Fees,
		MinWithdrawal:           settings.MinWithdrawal,
		Commission:              settings.Commission,
		RequiredDirectReferrals: settings.RequiredDirectReferrals,
		DirectCommissionRate:    domain.DirectCommissionRate(),
		InvestorCapMultiplier:   s.caps.Investor,
		NetworkerCapMultiplier:  s.caps.Networker,
		Plans:                   domain.Plans(),
	}
}

func (s *CalculatorServiceImpl) QuoteWithdrawal(_ context.Context, amount, balance decimal.Decimal) (*rules.WithdrawalQuote, error) {
	q, err := s.engine.Withdrawal(amount, balance)
	if err != nil {
		s.logRejected("withdrawal", amount, err)
		return nil, err
	}
	return &q, nil
}

func (s *CalculatorServiceImpl) QuoteTransfer(_ context.Context, amount, balance decimal.Decimal) (*rules.TransferQuote, error) {
	q, err := s.engine.Transfer(amount, balance)
	if err != nil {
		s.logRejected("transfer", amount, err)
		return nil, err
	}
	return &q, nil
}

func (s *CalculatorServiceImpl) QuoteLevelCommission(_ context.Context, level int, base decimal.Decimal) (decimal.Decimal, error) {
	amount, err := s.engine.Commission(level, base)
	if err != nil {
		s.logRejected("level_commission", base, err)
		return decimal.Zero, err
	}
	return amount, nil
}

func (s *CalculatorServiceImpl) QuoteDistribution(_ context.Context, base decimal.Decimal, directReferrals int) (*rules.Distribution, error) {
	d, err := s.engine.Distribution(base, directReferrals)
	if err != nil {
		s.logRejected("distribution", base, err)
		return nil, err
	}
	return &d, nil
}

func (s *CalculatorServiceImpl) QuoteCap(_ context.Context, invested, paidOut, multiplier decimal.Decimal) (*rules.CapStatus, error) {
	st, err := rules.InvestmentCapStatus(invested, paidOut, multiplier)
	if err != nil {
		s.logRejected("cap", invested, err)
		return nil, err
	}
	return &st, nil
}

func (s *CalculatorServiceImpl) LevelUnlock(directReferrals int) rules.LevelUnlock {
	return s.engine.Unlock(directReferrals)
}

// Rule rejections are expected user input errors, so they stay at debug.
func (s *CalculatorServiceImpl) logRejected(op string, amount decimal.Decimal, err error) {
	s.log.Debug().
		Err(err).
		Str("op", op).
		Str("amount", amount.String()).
		Msg("quote rejected")
}
