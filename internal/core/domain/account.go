package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var accountIDRe = regexp.MustCompile(`^GV-[0-9]{5}$`)

// ValidAccountID reports whether id has the public "GV-12345" form.
func ValidAccountID(id string) bool {
	return accountIDRe.MatchString(id)
}

// Role decides which payout cap an account is held to.
type Role string

const (
	RoleInvestor  Role = "INVESTOR"
	RoleNetworker Role = "NETWORKER"
)

// AccountSnapshot is the read-only view of an account that the rules need.
// It is supplied by a data provider; nothing in this service writes it back.
type AccountSnapshot struct {
	ID              string          `json:"id"`
	DisplayName     string          `json:"display_name"`
	Role            Role            `json:"role"`
	Plan            PlanName        `json:"plan"`
	WalletBalance   decimal.Decimal `json:"wallet_balance"`
	TotalInvested   decimal.Decimal `json:"total_invested"`
	TotalPaidOut    decimal.Decimal `json:"total_paid_out"` // Withdrawn or credited to date
	DirectReferrals int             `json:"direct_referrals"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsNetworker returns true for accounts on the networker cap.
func (a *AccountSnapshot) IsNetworker() bool {
	return a.Role == RoleNetworker
}
