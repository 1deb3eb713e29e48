package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.TransactionReaderSvc
}

func newLedgerHandler(ls portssvc.TransactionReaderSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the replayed views of the ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.TransactionReaderSvc) {
	h := newLedgerHandler(ledgerService)

	rg.GET("/balance", h.getBalance)
	rg.GET("/ledger/statement", h.getStatement)
}

// getBalance godoc
// @Summary Current balance and savings
// @Description Replays the whole ledger and returns the resulting balance and savings
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	totals, err := h.ledgerService.GetTotals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(*totals))
}

// getStatement godoc
// @Summary Running statement
// @Description Returns every entry in replay order with the balance and savings after it
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.StatementResponse
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /ledger/statement [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	lines, err := h.ledgerService.GetStatement(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(lines))
}
