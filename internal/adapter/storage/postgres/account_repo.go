package postgres

import (
	"context"
	"errors"
	"fmt"

	"goldvest-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepo implements ports.AccountProvider over the account_snapshots
// table. Money columns are NUMERIC and read back as text so no value passes
// through float64.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// GetSnapshot fetches one account. It returns (nil, nil) when the ID is unknown.
func (r *AccountRepo) GetSnapshot(ctx context.Context, accountID string) (*domain.AccountSnapshot, error) {
	query := `SELECT id, display_name, role, plan, wallet_balance::text, total_invested::text, total_paid_out::text, direct_referrals, updated_at
		FROM account_snapshots WHERE id = $1`

	var (
		a                          domain.AccountSnapshot
		role, plan                 string
		balance, invested, paidOut string
	)
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&a.ID, &a.DisplayName, &role, &plan,
		&balance, &invested, &paidOut,
		&a.DirectReferrals, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account snapshot: %w", err)
	}

	a.Role = domain.Role(role)
	a.Plan = domain.PlanName(plan)
	if a.WalletBalance, err = parseNumeric("wallet_balance", balance); err != nil {
		return nil, err
	}
	if a.TotalInvested, err = parseNumeric("total_invested", invested); err != nil {
		return nil, err
	}
	if a.TotalPaidOut, err = parseNumeric("total_paid_out", paidOut); err != nil {
		return nil, err
	}
	return &a, nil
}

func parseNumeric(column, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", column, s, err)
	}
	return d, nil
}
