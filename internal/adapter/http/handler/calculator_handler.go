package handler

import (
	"goldvest-ledger/internal/adapter/http/dto"
	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// CalculatorHandler serves quotes computed from amounts in the request.
type CalculatorHandler struct {
	svc ports.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler(svc ports.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{svc: svc}
}

// Rules handles GET /api/v1/rules.
func (h *CalculatorHandler) Rules(c *gin.Context) {
	response.OK(c, dto.NewRulesResponse(h.svc.Overview()))
}

// Withdrawal handles POST /api/v1/quotes/withdrawal.
func (h *CalculatorHandler) Withdrawal(c *gin.Context) {
	var req dto.WithdrawalQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.svc.QuoteWithdrawal(c.Request.Context(), *req.Amount, *req.Balance)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWithdrawalQuoteResponse(q))
}

// Transfer handles POST /api/v1/quotes/transfer.
func (h *CalculatorHandler) Transfer(c *gin.Context) {
	var req dto.TransferQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.svc.QuoteTransfer(c.Request.Context(), *req.Amount, *req.Balance)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTransferQuoteResponse(q, ""))
}

// Commission handles POST /api/v1/quotes/commission. A level in the body
// quotes that level alone; without one the whole table is distributed.
func (h *CalculatorHandler) Commission(c *gin.Context) {
	var req dto.CommissionQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	if req.Level != nil {
		amount, err := h.svc.QuoteLevelCommission(ctx, *req.Level, *req.Base)
		if err != nil {
			response.Error(c, err)
			return
		}
		pct, _ := h.svc.Overview().Commission.Percentage(*req.Level)
		response.OK(c, dto.LevelCommissionResponse{
			Level:      *req.Level,
			Percentage: pct.String(),
			Base:       domain.FormatMoney(*req.Base),
			Amount:     domain.FormatMoney(amount),
		})
		return
	}

	direct := h.svc.Overview().RequiredDirectReferrals
	if req.DirectReferrals != nil {
		direct = *req.DirectReferrals
	}
	d, err := h.svc.QuoteDistribution(ctx, *req.Base, direct)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDistributionResponse(d))
}

// Cap handles POST /api/v1/quotes/cap.
func (h *CalculatorHandler) Cap(c *gin.Context) {
	var req dto.CapQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	st, err := h.svc.QuoteCap(c.Request.Context(), *req.TotalInvested, *req.TotalPaidOut, *req.Multiplier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewCapStatusResponse(st))
}

// Unlock handles GET /api/v1/levels/unlock?direct=N.
func (h *CalculatorHandler) Unlock(c *gin.Context) {
	var q dto.UnlockQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, validationError(err))
		return
	}
	response.OK(c, dto.NewLevelUnlockResponse(h.svc.LevelUnlock(*q.Direct)))
}
