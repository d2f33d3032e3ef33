package service

import (
	"context"
	"fmt"

	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/internal/core/rules"
	"goldvest-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AccountQuoteServiceImpl implements ports.AccountQuoteService. Balances and
// referral counts come from the provider; quotes never change them.
type AccountQuoteServiceImpl struct {
	provider ports.AccountProvider
	engine   rules.Engine
	caps     CapPolicy
	log      zerolog.Logger
}

// NewAccountQuoteService creates a new AccountQuoteServiceImpl.
func NewAccountQuoteService(
	provider ports.AccountProvider,
	engine rules.Engine,
	caps CapPolicy,
	log zerolog.Logger,
) *AccountQuoteServiceImpl {
	return &AccountQuoteServiceImpl{
		provider: provider,
		engine:   engine,
		caps:     caps,
		log:      log,
	}
}

// WithdrawalQuote quotes a withdrawal of amount against the account's wallet.
func (s *AccountQuoteServiceImpl) WithdrawalQuote(ctx context.Context, accountID string, amount decimal.Decimal) (*rules.WithdrawalQuote, error) {
	acct, err := s.snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}

	q, err := s.engine.Withdrawal(amount, acct.WalletBalance)
	if err != nil {
		s.log.Debug().Err(err).Str("account_id", accountID).Str("amount", amount.String()).Msg("withdrawal quote rejected")
		return nil, err
	}

	s.log.Info().
		Str("account_id", accountID).
		Str("requested", q.Requested.String()).
		Str("fee", q.Fee.String()).
		Msg("withdrawal quoted")
	return &q, nil
}

// TransferQuote quotes a peer-to-peer transfer. Both accounts must exist and
// differ; only the sender's balance is consulted.
func (s *AccountQuoteServiceImpl) TransferQuote(ctx context.Context, req ports.TransferQuoteRequest) (*rules.TransferQuote, error) {
	if !domain.ValidAccountID(req.RecipientID) {
		return nil, apperror.Validation("recipient must be an account ID like GV-12345")
	}
	if req.SenderID == req.RecipientID {
		return nil, apperror.ErrSelfTransfer()
	}

	sender, err := s.snapshot(ctx, req.SenderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.snapshot(ctx, req.RecipientID); err != nil {
		return nil, err
	}

	q, err := s.engine.Transfer(req.Amount, sender.WalletBalance)
	if err != nil {
		s.log.Debug().Err(err).Str("account_id", req.SenderID).Str("amount", req.Amount.String()).Msg("transfer quote rejected")
		return nil, err
	}

	s.log.Info().
		Str("account_id", req.SenderID).
		Str("recipient_id", req.RecipientID).
		Str("total_deducted", q.TotalDeducted.String()).
		Msg("transfer quoted")
	return &q, nil
}

// LevelsOverview reports which commission levels the account has unlocked and
// what each pays on base.
func (s *AccountQuoteServiceImpl) LevelsOverview(ctx context.Context, accountID string, base decimal.Decimal) (*ports.LevelsOverview, error) {
	acct, err := s.snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}

	dist, err := s.engine.Distribution(base, acct.DirectReferrals)
	if err != nil {
		return nil, err
	}
	direct, err := rules.DirectCommission(base, domain.DirectCommissionRate())
	if err != nil {
		return nil, err
	}

	return &ports.LevelsOverview{
		AccountID:        acct.ID,
		Distribution:     dist,
		DirectCommission: direct,
	}, nil
}

// CapStatus reports the account's payout cap. The multiplier is the larger
// of the plan's and the role's.
func (s *AccountQuoteServiceImpl) CapStatus(ctx context.Context, accountID string) (*ports.AccountCap, error) {
	acct, err := s.snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}

	plan := s.planFor(acct)
	multiplier := rules.CapMultiplierFor(plan, acct.Role, s.caps.Investor, s.caps.Networker)

	status, err := rules.InvestmentCapStatus(acct.TotalInvested, acct.TotalPaidOut, multiplier)
	if err != nil {
		return nil, err
	}
	roi, err := rules.MonthlyROI(acct.TotalInvested, plan)
	if err != nil {
		return nil, err
	}

	if status.Reached {
		s.log.Warn().Str("account_id", accountID).Str("cap", status.CapAmount.String()).Msg("account at payout cap")
	}

	return &ports.AccountCap{
		AccountID:  acct.ID,
		Plan:       plan.Name,
		Role:       acct.Role,
		Status:     status,
		MonthlyROI: roi,
	}, nil
}

// planFor resolves the stored plan name, falling back to the band that
// contains TotalInvested. Accounts below every band get a zero plan, which
// leaves only the role multiplier and no ROI.
func (s *AccountQuoteServiceImpl) planFor(acct *domain.AccountSnapshot) domain.Plan {
	if p, ok := domain.PlanByName(string(acct.Plan)); ok {
		return p
	}
	if p, err := domain.PlanForAmount(acct.TotalInvested); err == nil {
		return p
	}
	return domain.Plan{}
}

func (s *AccountQuoteServiceImpl) snapshot(ctx context.Context, accountID string) (*domain.AccountSnapshot, error) {
	acct, err := s.provider.GetSnapshot(ctx, accountID)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", accountID).Msg("account provider failed")
		return nil, apperror.InternalError(fmt.Errorf("get snapshot %s: %w", accountID, err))
	}
	if acct == nil {
		return nil, apperror.ErrAccountNotFound(accountID)
	}
	return acct, nil
}
