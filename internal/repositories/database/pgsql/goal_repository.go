package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/models"
	"github.com/SscSPs/asset_tracker/internal/utils/mapping"
	"github.com/SscSPs/asset_tracker/internal/utils/queryfilter"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxGoalRepository stores goals. The partial unique index
// uq_goals_single_active allows at most one active live goal per user.
type PgxGoalRepository struct {
	*table[models.Goal, domain.Goal]
}

func newPgxGoalRepository(pool *pgxpool.Pool) *PgxGoalRepository {
	cfg := tableConfig{
		entity:   "goal",
		name:     "goals",
		alias:    "g",
		idColumn: "goal_id",
		columns:  []string{"goal_id", "user_id", "name", "target_value", "deadline", "is_active"},
		mutable:  []string{"name", "target_value", "deadline", "is_active"},
		// a deleted goal is never the active one
		removeSets: []string{"is_active = FALSE"},
	}
	return &PgxGoalRepository{newTable(pool, cfg, mapping.ToDomainGoal, goalArgs)}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func goalArgs(d domain.Goal) pgx.NamedArgs {
	m := mapping.ToModelGoal(d)
	return auditArgs(pgx.NamedArgs{
		"goal_id":      m.GoalID,
		"user_id":      m.UserID,
		"name":         m.Name,
		"target_value": m.TargetValue,
		"deadline":     m.Deadline,
		"is_active":    m.IsActive,
	}, m.AuditFields)
}

// ActivateGoal locks every live goal of the user, so concurrent activations
// serialize, then flips the active flag in a single transaction.
func (r *PgxGoalRepository) ActivateGoal(ctx context.Context, userID string, goalID string, updatedBy string, now time.Time) (*domain.Goal, error) {
	args := pgx.NamedArgs{
		"user_id":         userID,
		"goal_id":         goalID,
		"last_updated_by": updatedBy,
		"last_updated_at": now,
	}

	var activated *domain.Goal
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT goal_id FROM goals WHERE user_id = @user_id AND deleted_at IS NULL FOR UPDATE`, args)
		if err != nil {
			return fmt.Errorf("failed to lock goals of user %s: %w", userID, err)
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return fmt.Errorf("failed to lock goals of user %s: %w", userID, err)
		}
		found := false
		for _, id := range ids {
			if id == goalID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE goals SET is_active = FALSE, last_updated_at = @last_updated_at, last_updated_by = @last_updated_by
			WHERE user_id = @user_id AND goal_id <> @goal_id AND is_active AND deleted_at IS NULL`, args); err != nil {
			return fmt.Errorf("failed to deactivate goals of user %s: %w", userID, err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE goals SET is_active = TRUE, last_updated_at = @last_updated_at, last_updated_by = @last_updated_by
			WHERE goal_id = @goal_id AND NOT is_active`, args); err != nil {
			return mapWriteError(err, "goal", goalID)
		}

		spec := queryfilter.New("g", nil).Equal("goal_id", goalID).Build()
		activated, err = r.findOne(ctx, tx, spec, "")
		return err
	})
	if err != nil {
		return nil, err
	}
	return activated, nil
}

func (r *PgxGoalRepository) FindActiveGoal(ctx context.Context, userID string) (*domain.Goal, error) {
	spec := queryfilter.New("g", nil).
		Equal("user_id", userID).
		Equal("is_active", true).
		Build()
	goal, err := r.FindOne(ctx, spec)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("active goal of user %s: %w", userID, apperrors.ErrNotFound)
	}
	return goal, err
}
