package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAccountTransferRequest_Valid(t *testing.T) {
	v := newValidator()

	req := AccountTransferRequest{RecipientID: "GV-45678", Amount: decPtr("200")}
	assert.NoError(t, v.Struct(req))
}

func TestAccountTransferRequest_BadRecipient(t *testing.T) {
	v := newValidator()

	for _, id := range []string{"", "GV-1234", "gv-12345", "GV-123456", "XX-12345", "GV-12a45"} {
		req := AccountTransferRequest{RecipientID: id, Amount: decPtr("200")}
		assert.Error(t, v.Struct(req), "expected invalid: %q", id)
	}
}

func TestAmountValidator_RequiredPointer(t *testing.T) {
	v := newValidator()

	err := v.Struct(WithdrawalQuoteRequest{Balance: decPtr("100")})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "amount", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
}

func TestAmountValidator_ZeroAndNegativePass(t *testing.T) {
	v := newValidator()

	// Sign is the engine's concern.
	assert.NoError(t, v.Struct(WithdrawalQuoteRequest{Amount: decPtr("0"), Balance: decPtr("100")}))
	assert.NoError(t, v.Struct(WithdrawalQuoteRequest{Amount: decPtr("-5"), Balance: decPtr("100")}))
}

func TestAmountValidator_Bounds(t *testing.T) {
	v := newValidator()

	tests := []struct {
		amount string
		valid  bool
	}{
		{"10.05", true},
		{"999999999999.99", true},
		{"1000000000000", false},
		{"1e100", false},
		{"0.12345678", true},
		{"0.123456789", false},
		{"10.500000000000", true},
		{"0", true},
		{"-999999999999.99999999", true},
		{"1e2000000", false},
		{"1e-2000000", false},
		{"100000000e-8", true},
		{"1" + strings.Repeat("0", 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := v.Struct(WithdrawalQuoteRequest{Amount: decPtr(tt.amount), Balance: decPtr("1")})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCommissionQuoteRequest_NegativeReferrals(t *testing.T) {
	v := newValidator()
	n := -1

	assert.Error(t, v.Struct(CommissionQuoteRequest{Base: decPtr("1000"), DirectReferrals: &n}))
}

func TestSanitizeStruct_TrimsAndEscapes(t *testing.T) {
	req := AccountTransferRequest{RecipientID: "  GV-<b>45678</b>  "}
	SanitizeStruct(&req)

	assert.Equal(t, "GV-&lt;b&gt;45678&lt;/b&gt;", req.RecipientID)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	s := "  note  "
	req := struct{ Note *string }{Note: &s}
	SanitizeStruct(&req)

	assert.Equal(t, "note", *req.Note)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	SanitizeStruct("hello")
}

func TestAmountValidator_HugeExponentRejectedQuickly(t *testing.T) {
	v := newValidator()

	for _, amount := range []string{"1e-2000000", "1e2000000", "5e-900000000"} {
		start := time.Now()
		err := v.Struct(WithdrawalQuoteRequest{Amount: decPtr(amount), Balance: decPtr("1")})
		assert.Error(t, err, amount)
		assert.Less(t, time.Since(start), 50*time.Millisecond, amount)
	}
}

func TestLevelsQuery_Base(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(LevelsQuery{}))
	assert.NoError(t, v.Struct(LevelsQuery{Base: "2500"}))
	assert.Error(t, v.Struct(LevelsQuery{Base: "1e2000000"}))
	assert.Error(t, v.Struct(LevelsQuery{Base: "abc"}))
}
