package handler

import (
	"goldvest-ledger/internal/adapter/http/dto"
	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// DefaultLevelsBase is the investment the levels overview is priced on when
// the caller gives no ?base=.
const DefaultLevelsBase = "2500"

// AccountHandler serves quotes for accounts known to the provider.
type AccountHandler struct {
	svc ports.AccountQuoteService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc ports.AccountQuoteService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// WithdrawalQuote handles POST /api/v1/accounts/:id/withdrawal-quote.
func (h *AccountHandler) WithdrawalQuote(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}
	var req dto.AccountWithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.svc.WithdrawalQuote(c.Request.Context(), accountID, *req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWithdrawalQuoteResponse(q))
}

// TransferQuote handles POST /api/v1/accounts/:id/transfer-quote.
func (h *AccountHandler) TransferQuote(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}
	var req dto.AccountTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.svc.TransferQuote(c.Request.Context(), ports.TransferQuoteRequest{
		SenderID:    accountID,
		RecipientID: req.RecipientID,
		Amount:      *req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTransferQuoteResponse(q, req.RecipientID))
}

// Levels handles GET /api/v1/accounts/:id/levels?base=2500.
func (h *AccountHandler) Levels(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}
	var q dto.LevelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, validationError(err))
		return
	}
	if q.Base == "" {
		q.Base = DefaultLevelsBase
	}
	base, err := domain.ParseAmount(q.Base)
	if err != nil {
		response.Error(c, err)
		return
	}

	ov, err := h.svc.LevelsOverview(c.Request.Context(), accountID, base)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAccountLevelsResponse(ov))
}

// Cap handles GET /api/v1/accounts/:id/cap.
func (h *AccountHandler) Cap(c *gin.Context) {
	accountID, ok := bindAccountID(c)
	if !ok {
		return
	}

	st, err := h.svc.CapStatus(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAccountCapResponse(st))
}
