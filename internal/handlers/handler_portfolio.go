package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// portfolioHandler handles HTTP requests related to portfolios.
type portfolioHandler struct {
	portfolioService portssvc.PortfolioSvcFacade
}

func newPortfolioHandler(ps portssvc.PortfolioSvcFacade) *portfolioHandler {
	return &portfolioHandler{portfolioService: ps}
}

// registerPortfolioRoutes registers routes related to portfolios.
func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvcFacade) {
	h := newPortfolioHandler(portfolioService)

	portfolios := rg.Group("/portfolios")
	{
		portfolios.POST("", h.createPortfolio)
		portfolios.GET("", h.listPortfolios)
		portfolios.GET("/:portfolio_id", h.getPortfolio)
		portfolios.PATCH("/:portfolio_id", h.updatePortfolio)
		portfolios.DELETE("/:portfolio_id", h.deletePortfolio)
	}
}

// createPortfolio godoc
// @Summary Create a portfolio
// @Description Creates a portfolio owned by the caller
// @Tags portfolios
// @Accept  json
// @Produce  json
// @Param   portfolio body dto.CreatePortfolioRequest true "Portfolio details"
// @Success 201 {object} dto.PortfolioResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios [post]
func (h *portfolioHandler) createPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePortfolioRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create portfolio", slog.String("name", req.Name))
	portfolio, err := h.portfolioService.CreatePortfolio(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create portfolio")
		return
	}

	logger.Info("Portfolio created", slog.String("portfolio_id", portfolio.PortfolioID))
	c.JSON(http.StatusCreated, dto.ToPortfolioResponse(*portfolio))
}

// getPortfolio godoc
// @Summary Get a portfolio
// @Description Returns one portfolio of the caller
// @Tags portfolios
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id} [get]
func (h *portfolioHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID := c.Param("portfolio_id")

	portfolio, err := h.portfolioService.GetPortfolio(c.Request.Context(), portfolioID, userID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("portfolio_id", portfolioID)), err, "Failed to get portfolio")
		return
	}
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(*portfolio))
}

// listPortfolios godoc
// @Summary List portfolios
// @Description Lists the caller's portfolios
// @Tags portfolios
// @Produce  json
// @Param   sort_by query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Param   q query string false "Name contains"
// @Success 200 {object} dto.ListResponse[dto.PortfolioResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios [get]
func (h *portfolioHandler) listPortfolios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	page, err := h.portfolioService.ListPortfolios(c.Request.Context(), userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list portfolios")
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(page, dto.ToPortfolioResponse))
}

// updatePortfolio godoc
// @Summary Update a portfolio
// @Description Applies a partial update to a portfolio
// @Tags portfolios
// @Accept  json
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   portfolio body dto.UpdatePortfolioRequest true "Fields to change"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id} [patch]
func (h *portfolioHandler) updatePortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePortfolioRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID := c.Param("portfolio_id")
	logger = logger.With(slog.String("portfolio_id", portfolioID))

	portfolio, err := h.portfolioService.UpdatePortfolio(c.Request.Context(), portfolioID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update portfolio")
		return
	}
	logger.Info("Portfolio updated")
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(*portfolio))
}

// deletePortfolio godoc
// @Summary Delete a portfolio
// @Description Soft-deletes a portfolio
// @Tags portfolios
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id} [delete]
func (h *portfolioHandler) deletePortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID := c.Param("portfolio_id")
	logger = logger.With(slog.String("portfolio_id", portfolioID))

	if err := h.portfolioService.DeletePortfolio(c.Request.Context(), portfolioID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete portfolio")
		return
	}
	logger.Info("Portfolio deleted")
	c.Status(http.StatusNoContent)
}
