package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner checks that userID owns the resource before it is read or mutated.
func (s *BaseService) AuthorizeOwner(ctx context.Context, ownerID, userID, resource, resourceID string) error {
	if err := domain.VerifyOwnership(ownerID, userID); err != nil {
		s.LogDebug(ctx, "Ownership check failed",
			slog.String("resource", resource),
			slog.String("resource_id", resourceID),
			slog.String("user_id", userID))
		return err
	}
	return nil
}

// ownedPortfolio loads portfolioID and checks it belongs to userID.
func (s *BaseService) ownedPortfolio(ctx context.Context, repo portsrepo.Reader[domain.Portfolio], portfolioID, userID string) (*domain.Portfolio, error) {
	portfolio, err := repo.FindByID(ctx, portfolioID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load portfolio", slog.String("portfolio_id", portfolioID))
		}
		return nil, fmt.Errorf("portfolio %s: %w", portfolioID, err)
	}
	if err := s.AuthorizeOwner(ctx, portfolio.UserID, userID, "portfolio", portfolioID); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// logIfUnexpected logs err unless it is a client error the caller will map to a 4xx.
func (s *BaseService) logIfUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrAccessDenied) || errors.Is(err, apperrors.ErrDuplicate) {
		s.LogDebug(ctx, msg, append([]any{slog.String("reason", err.Error())}, keyvals...)...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
