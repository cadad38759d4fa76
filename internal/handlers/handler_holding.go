package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type holdingHandler struct {
	holdingService portssvc.HoldingSvcFacade
}

func newHoldingHandler(hs portssvc.HoldingSvcFacade) *holdingHandler {
	return &holdingHandler{holdingService: hs}
}

func registerHoldingRoutes(rg *gin.RouterGroup, holdingService portssvc.HoldingSvcFacade) {
	h := newHoldingHandler(holdingService)

	holdings := rg.Group("/portfolios/:portfolio_id/holdings")
	{
		holdings.POST("", h.addHolding)
		holdings.GET("", h.listHoldings)
		holdings.GET("/:holding_id", h.getHolding)
		holdings.PATCH("/:holding_id", h.updateHolding)
		holdings.DELETE("/:holding_id", h.removeHolding)
	}
}

// addHolding godoc
// @Summary Track a token
// @Description Registers a token as a holding of a portfolio
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   holding body dto.CreateHoldingRequest true "Holding details"
// @Success 201 {object} dto.HoldingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/holdings [post]
func (h *holdingHandler) addHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateHoldingRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID := c.Param("portfolio_id")
	logger = logger.With(slog.String("portfolio_id", portfolioID))
	logger.Info("Received request to add holding", slog.String("token_symbol", req.TokenSymbol))

	holding, err := h.holdingService.AddHolding(c.Request.Context(), portfolioID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to add holding")
		return
	}
	logger.Info("Holding added", slog.String("holding_id", holding.HoldingID))
	c.JSON(http.StatusCreated, dto.ToHoldingResponse(*holding))
}

// getHolding godoc
// @Summary Get a holding
// @Description Returns one holding of a portfolio
// @Tags holdings
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   holding_id path string true "Holding ID"
// @Success 200 {object} dto.HoldingResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/holdings/{holding_id} [get]
func (h *holdingHandler) getHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID, holdingID := c.Param("portfolio_id"), c.Param("holding_id")

	holding, err := h.holdingService.GetHolding(c.Request.Context(), portfolioID, holdingID, userID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("holding_id", holdingID)), err, "Failed to get holding")
		return
	}
	c.JSON(http.StatusOK, dto.ToHoldingResponse(*holding))
}

// listHoldings godoc
// @Summary List holdings
// @Description Lists holdings, with live quotes attached when withPrices=true
// @Tags holdings
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   withPrices query bool false "Attach live quotes"
// @Param   sort_by query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {object} dto.ListResponse[dto.HoldingResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/holdings [get]
func (h *holdingHandler) listHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID := c.Param("portfolio_id")
	logger = logger.With(slog.String("portfolio_id", portfolioID))

	query := c.Request.URL.Query()
	withPrices, _ := strconv.ParseBool(query.Get("withPrices"))
	query.Del("withPrices")

	if withPrices {
		page, err := h.holdingService.ListHoldingsWithPrices(c.Request.Context(), portfolioID, userID, query)
		if err != nil {
			handleServiceError(c, logger, err, "Failed to list holdings")
			return
		}
		c.JSON(http.StatusOK, dto.ToListResponse(page, dto.ToEnrichedHoldingResponse))
		return
	}

	page, err := h.holdingService.ListHoldings(c.Request.Context(), portfolioID, userID, query)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list holdings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(page, dto.ToHoldingResponse))
}

// updateHolding godoc
// @Summary Update a holding
// @Description Applies a partial update to a holding
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   holding_id path string true "Holding ID"
// @Param   holding body dto.UpdateHoldingRequest true "Fields to change"
// @Success 200 {object} dto.HoldingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/holdings/{holding_id} [patch]
func (h *holdingHandler) updateHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateHoldingRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID, holdingID := c.Param("portfolio_id"), c.Param("holding_id")
	logger = logger.With(slog.String("holding_id", holdingID))

	holding, err := h.holdingService.UpdateHolding(c.Request.Context(), portfolioID, holdingID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update holding")
		return
	}
	logger.Info("Holding updated")
	c.JSON(http.StatusOK, dto.ToHoldingResponse(*holding))
}

// removeHolding godoc
// @Summary Stop tracking a token
// @Description Soft-deletes a holding
// @Tags holdings
// @Produce  json
// @Param   portfolio_id path string true "Portfolio ID"
// @Param   holding_id path string true "Holding ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/holdings/{holding_id} [delete]
func (h *holdingHandler) removeHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	portfolioID, holdingID := c.Param("portfolio_id"), c.Param("holding_id")
	logger = logger.With(slog.String("holding_id", holdingID))

	if err := h.holdingService.RemoveHolding(c.Request.Context(), portfolioID, holdingID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to remove holding")
		return
	}
	logger.Info("Holding removed")
	c.Status(http.StatusNoContent)
}
