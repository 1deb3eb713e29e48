package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for ledger entries.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
	}
}

// registerTransactionRoutes registers routes related to ledger entries.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.recordTransaction)
		transactions.DELETE("/:transactionID", h.discardTransaction)
	}
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Lists entries newest first with optional text, date scope and type filters
// @Tags transactions
// @Produce json
// @Param q query string false "Case-insensitive match on title or description"
// @Param scope query string false "Date scope" Enums(day, month, year)
// @Param date query string false "Reference date for scope (YYYY-MM-DD or RFC3339), defaults to today"
// @Param kind query []string false "Transaction types to include" collectionFormat(multi)
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recordTransaction godoc
// @Summary Record a ledger entry
// @Description Appends a transaction. Savings types are checked against the current balance or savings.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient funds"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record transaction", slog.String("type", string(req.Type)))

	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// discardTransaction godoc
// @Summary Discard a ledger entry
// @Description Permanently deletes an entry; totals are recomputed without it
// @Tags transactions
// @Param transactionID path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid transaction ID"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to discard transaction"
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) discardTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "transactionID")
	if !ok {
		logger.Warn("Invalid transaction ID in path", slog.String("transaction_id", c.Param("transactionID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	if err := h.ledgerService.DiscardTransaction(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to discard transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
