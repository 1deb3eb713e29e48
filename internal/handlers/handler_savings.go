package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// savingsHandler serves the savings page and the guarded transfers.
type savingsHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newSavingsHandler(ls portssvc.LedgerSvcFacade) *savingsHandler {
	return &savingsHandler{ledgerService: ls}
}

func registerSavingsRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newSavingsHandler(ledgerService)

	savings := rg.Group("/savings")
	{
		savings.GET("", h.getSavings)
		savings.POST("/deposit", h.deposit)
		savings.POST("/withdraw", h.withdraw)
	}
}

// getSavings godoc
// @Summary Savings overview
// @Description Savings total, balance and the savings transfers, newest first
// @Tags savings
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.SavingsOverviewResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to load savings"
// @Router /savings [get]
func (h *savingsHandler) getSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetSavings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	params.Kinds = []string{string(domain.SaveToSavings), string(domain.TakeFromSavings)}

	totals, err := h.ledgerService.GetTotals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load savings")
		return
	}
	page, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to load savings")
		return
	}

	c.JSON(http.StatusOK, dto.SavingsOverviewResponse{
		Savings:      totals.Savings,
		Balance:      totals.Balance,
		Transactions: page.Transactions,
		NextToken:    page.NextToken,
	})
}

// deposit godoc
// @Summary Move money into savings
// @Description Records a SAVE_TO_SAVINGS entry if the balance covers the amount
// @Tags savings
// @Accept json
// @Produce json
// @Param transfer body dto.SavingsTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient balance"
// @Failure 500 {object} map[string]string "Failed to deposit to savings"
// @Router /savings/deposit [post]
func (h *savingsHandler) deposit(c *gin.Context) {
	h.transfer(c, h.ledgerService.DepositToSavings, "Failed to deposit to savings")
}

// withdraw godoc
// @Summary Take money out of savings
// @Description Records a TAKE_FROM_SAVINGS entry if savings cover the amount
// @Tags savings
// @Accept json
// @Produce json
// @Param transfer body dto.SavingsTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient savings"
// @Failure 500 {object} map[string]string "Failed to withdraw from savings"
// @Router /savings/withdraw [post]
func (h *savingsHandler) withdraw(c *gin.Context) {
	h.transfer(c, h.ledgerService.WithdrawFromSavings, "Failed to withdraw from savings")
}

type transferFunc func(ctx context.Context, req dto.SavingsTransferRequest) (*domain.Transaction, error)

func (h *savingsHandler) transfer(c *gin.Context, fn transferFunc, failure string) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.SavingsTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for savings transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := fn(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, failure)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
