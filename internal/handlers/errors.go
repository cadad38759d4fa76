package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/SscSPs/asset_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// handleServiceError maps a service error onto an HTTP answer. msg is what a
// client sees for unexpected failures.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	var vErr *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &vErr):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		causes := make([]dto.FieldCause, len(vErr.Causes))
		for i, fc := range vErr.Causes {
			causes[i] = dto.FieldCause{Field: fc.Field, Message: fc.Message}
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Operation, Causes: causes})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrAccessDenied):
		logger.Warn("Access denied", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Access denied"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.ErrorResponse{Error: appErr.Message})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
	}
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// requireUserID reads the authenticated user or answers 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
