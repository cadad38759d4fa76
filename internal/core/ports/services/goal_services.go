package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

// GoalReaderSvc defines read operations for goals.
type GoalReaderSvc interface {
	GetGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Goal], error)
}

// GoalWriterSvc defines write operations for goals.
type GoalWriterSvc interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string, userID string) error

	// ActivateGoal makes goalID the user's only active goal.
	ActivateGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error)
}

// GoalSvcFacade combines all goal-related service interfaces.
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}

// DashboardSvc builds the aggregate overview of a user's savings.
type DashboardSvc interface {
	GetSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error)
}
