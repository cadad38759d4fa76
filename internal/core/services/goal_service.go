package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

func NewGoalService(repo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: repo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	goal, err := domain.NewGoal(userID, req.ToInput(), userID)
	if err != nil {
		return nil, err
	}
	if err := s.goalRepo.Add(ctx, goal); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to save goal", slog.String("goal_id", goal.GoalID))
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		s.logIfUnexpected(ctx, err, "Failed to find goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("goal %s: %w", goalID, err)
	}
	if err := s.AuthorizeOwner(ctx, goal.UserID, userID, "goal", goalID); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Goal], error) {
	params, err := goalListSchema.Parse(query)
	if err != nil {
		return portsrepo.Page[domain.Goal]{}, err
	}
	spec := goalListSchema.Builder(params).Equal("user_id", userID).Build()

	page, err := s.goalRepo.PaginatedList(ctx, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("user_id", userID))
		return portsrepo.Page[domain.Goal]{}, fmt.Errorf("failed to list goals: %w", err)
	}
	return page, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	existing, err := s.GetGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	updated, err := domain.UpdateGoal(*existing, req.ToPatch(), userID)
	if err != nil {
		return nil, err
	}
	if err := s.goalRepo.Update(ctx, goalID, updated); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return &updated, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	existing, err := s.GetGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}
	deleted := domain.MarkGoalDeleted(*existing, userID)
	if err := s.goalRepo.Remove(ctx, goalID, userID, *deleted.DeletedAt); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// ActivateGoal relies on the repository to deactivate the other goals and
// activate this one atomically.
func (s *goalService) ActivateGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	if _, err := s.GetGoal(ctx, goalID, userID); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.ActivateGoal(ctx, userID, goalID, userID, time.Now())
	if err != nil {
		s.logIfUnexpected(ctx, err, "Failed to activate goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to activate goal: %w", err)
	}

	s.LogInfo(ctx, "Goal activated", slog.String("goal_id", goalID), slog.String("user_id", userID))
	return goal, nil
}
