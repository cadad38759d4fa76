package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type goalHandler struct {
	goalService      portssvc.GoalSvcFacade
	dashboardService portssvc.DashboardSvc
}

func newGoalHandler(gs portssvc.GoalSvcFacade, ds portssvc.DashboardSvc) *goalHandler {
	return &goalHandler{goalService: gs, dashboardService: ds}
}

// registerGoalRoutes registers goal management and the dashboard overview.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade, dashboardService portssvc.DashboardSvc) {
	h := newGoalHandler(goalService, dashboardService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goal_id", h.getGoal)
		goals.PATCH("/:goal_id", h.updateGoal)
		goals.DELETE("/:goal_id", h.deleteGoal)
		goals.POST("/:goal_id/activate", h.activateGoal)
	}

	rg.GET("/dashboard", h.getDashboard)
}

// createGoal godoc
// @Summary Create a goal
// @Description Creates an inactive savings goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger.Info("Received request to create goal", slog.String("name", req.Name))

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create goal")
		return
	}
	logger.Info("Goal created", slog.String("goal_id", goal.GoalID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(*goal))
}

// getGoal godoc
// @Summary Get a goal
// @Description Returns one goal of the caller
// @Tags goals
// @Produce  json
// @Param   goal_id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals/{goal_id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	goalID := c.Param("goal_id")

	goal, err := h.goalService.GetGoal(c.Request.Context(), goalID, userID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("goal_id", goalID)), err, "Failed to get goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(*goal))
}

// listGoals godoc
// @Summary List goals
// @Description Lists the caller's goals
// @Tags goals
// @Produce  json
// @Param   sort_by query string false "Sort column"
// @Param   order query string false "asc or desc"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {object} dto.ListResponse[dto.GoalResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	page, err := h.goalService.ListGoals(c.Request.Context(), userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(page, dto.ToGoalResponse))
}

// updateGoal godoc
// @Summary Update a goal
// @Description Applies a partial update to a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal_id path string true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals/{goal_id} [patch]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateGoalRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	goalID := c.Param("goal_id")
	logger = logger.With(slog.String("goal_id", goalID))

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update goal")
		return
	}
	logger.Info("Goal updated")
	c.JSON(http.StatusOK, dto.ToGoalResponse(*goal))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Soft-deletes a goal
// @Tags goals
// @Produce  json
// @Param   goal_id path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals/{goal_id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	goalID := c.Param("goal_id")
	logger = logger.With(slog.String("goal_id", goalID))

	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete goal")
		return
	}
	logger.Info("Goal deleted")
	c.Status(http.StatusNoContent)
}

// activateGoal godoc
// @Summary Activate a goal
// @Description Makes the goal the caller's only active goal
// @Tags goals
// @Produce  json
// @Param   goal_id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /goals/{goal_id}/activate [post]
func (h *goalHandler) activateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	goalID := c.Param("goal_id")
	logger = logger.With(slog.String("goal_id", goalID))

	goal, err := h.goalService.ActivateGoal(c.Request.Context(), goalID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to activate goal")
		return
	}
	logger.Info("Goal activated")
	c.JSON(http.StatusOK, dto.ToGoalResponse(*goal))
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Total asset value, status counts, overall progress and the active goal
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *goalHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(*summary))
}
