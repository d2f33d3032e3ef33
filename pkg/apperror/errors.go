package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code, so callers can
// match with errors.Is(err, apperror.ErrBelowMinimum(min)).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Codes of the rules taxonomy.
const (
	CodeBelowMinimum        = "RULE_001"
	CodeInsufficientBalance = "RULE_002"
	CodeInvalidAmount       = "RULE_003"
	CodeLevelOutOfRange     = "RULE_004"
	CodeAccountNotFound     = "ACC_001"
	CodeSelfTransfer        = "ACC_002"
	CodeValidation          = "REQ_001"
	CodeRateLimited         = "RATE_001"
	CodeInternal            = "SYS_001"
)

// ---- Ledger rules (RULE) ----

// ErrBelowMinimum is returned when a withdrawal is under the configured floor.
func ErrBelowMinimum(minimum string) *AppError {
	return New(CodeBelowMinimum, fmt.Sprintf("Minimum withdrawal is $%s", minimum), http.StatusUnprocessableEntity)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient wallet balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount(reason string) *AppError {
	return New(CodeInvalidAmount, fmt.Sprintf("Invalid amount: %s", reason), http.StatusBadRequest)
}

func ErrLevelOutOfRange(level, maxLevel int) *AppError {
	return New(CodeLevelOutOfRange, fmt.Sprintf("Level %d out of range 1..%d", level, maxLevel), http.StatusBadRequest)
}

// ---- Accounts (ACC) ----

func ErrAccountNotFound(id string) *AppError {
	return New(CodeAccountNotFound, fmt.Sprintf("Account %s not found", id), http.StatusNotFound)
}

func ErrSelfTransfer() *AppError {
	return New(CodeSelfTransfer, "Cannot transfer to your own account", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a REQ_001 request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// CodeOf extracts the code from err, or "" if err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
