package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves the ledger of one portfolio.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes nests the ledger under its portfolio.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/portfolios/:portfolio_id/transactions")
	{
		txns.POST("", h.recordTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PATCH("/:transaction_id", h.updateTransaction)
		txns.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Adds a ledger entry to a portfolio and derives its cash flow
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID := c.Param("portfolio_id")
	logger = logger.With(slog.String("portfolio_id", portfolioID))
	logger.Info("Received request to record transaction",
		slog.String("type", string(req.Type)),
		slog.String("token_symbol", req.TokenSymbol))

	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), portfolioID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Returns one ledger entry of a portfolio
// @Tags transactions
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID, transactionID := c.Param("portfolio_id"), c.Param("transaction_id")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), portfolioID, transactionID, userID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the ledger of a portfolio
// @Tags transactions
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   sort_by query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {object} dto.ListResponse[dto.TransactionResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID := c.Param("portfolio_id")

	page, err := h.transactionService.ListTransactions(c.Request.Context(), portfolioID, userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, logger.With(slog.String("portfolio_id", portfolioID)), err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(page, dto.ToTransactionResponse))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update and recomputes the cash flow
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/transactions/{transaction_id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID, transactionID := c.Param("portfolio_id"), c.Param("transaction_id")
	logger = logger.With(slog.String("portfolio_id", portfolioID), slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), portfolioID, transactionID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update transaction")
		return
	}
	logger.Info("Transaction updated")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Soft-deletes a ledger entry
// @Tags transactions
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID, transactionID := c.Param("portfolio_id"), c.Param("transaction_id")
	logger = logger.With(slog.String("portfolio_id", portfolioID), slog.String("transaction_id", transactionID))

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), portfolioID, transactionID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete transaction")
		return
	}
	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}
