package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles manually valued savings assets and their targets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:asset_id", h.getAsset)
		assets.PATCH("/:asset_id", h.updateAsset)
		assets.DELETE("/:asset_id", h.deleteAsset)
	}
}

// createAsset godoc
// @Summary Create an asset
// @Description Creates a savings asset with an optional target
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger.Info("Received request to create asset", slog.String("name", req.Name), slog.String("kind", string(req.Kind)))

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create asset")
		return
	}
	logger.Info("Asset created", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(*asset))
}

// getAsset godoc
// @Summary Get an asset
// @Description Returns one asset with its progress and status
// @Tags assets
// @Produce  json
// @Param   asset_id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assets/{asset_id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	assetID := c.Param("asset_id")

	asset, err := h.assetService.GetAsset(c.Request.Context(), assetID, userID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("asset_id", assetID)), err, "Failed to get asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(*asset))
}

// listAssets godoc
// @Summary List assets
// @Description Lists the caller's assets
// @Tags assets
// @Produce  json
// @Param   sort_by query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {object} dto.ListResponse[dto.AssetResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	page, err := h.assetService.ListAssets(c.Request.Context(), userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(page, dto.ToAssetResponse))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Applies a partial update. An absent target is kept, null clears it, a value sets it
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset_id path string true "Asset ID"
// @Param   asset body dto.UpdateAssetRequest true "Fields to change"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assets/{asset_id} [patch]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAssetRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	assetID := c.Param("asset_id")
	logger = logger.With(slog.String("asset_id", assetID))

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), assetID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update asset")
		return
	}
	logger.Info("Asset updated")
	c.JSON(http.StatusOK, dto.ToAssetResponse(*asset))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Soft-deletes an asset and its target
// @Tags assets
// @Produce  json
// @Param   asset_id path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assets/{asset_id} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	assetID := c.Param("asset_id")
	logger = logger.With(slog.String("asset_id", assetID))

	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete asset")
		return
	}
	logger.Info("Asset deleted")
	c.Status(http.StatusNoContent)
}
