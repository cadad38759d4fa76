package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a user-level savings goal. A user has at most one active goal; the
// storage layer enforces that when a goal is activated.
type Goal struct {
	GoalID      string          `json:"goalID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	TargetValue decimal.Decimal `json:"targetValue"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// GoalInput is the raw data accepted when creating a goal.
type GoalInput struct {
	Name        string
	TargetValue decimal.Decimal
	Deadline    *time.Time
}

// GoalPatch lists the fields an update may change; nil means unchanged.
// Activation goes through the repository so it stays atomic.
type GoalPatch struct {
	Name        *string
	TargetValue *decimal.Decimal
	Deadline    *time.Time
}

func NewGoal(userID string, in GoalInput, createdBy string) (Goal, error) {
	var errs fieldErrors
	if userID == "" {
		errs.add("userID", "owner is required")
	}
	validateGoalName(in.Name, &errs)
	validateGoalTarget(in.TargetValue, &errs)
	if err := errs.err("failed to create goal"); err != nil {
		return Goal{}, err
	}
	return Goal{
		GoalID:      uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		TargetValue: in.TargetValue,
		Deadline:    in.Deadline,
		AuditFields: newAuditFields(createdBy, time.Now()),
	}, nil
}

func UpdateGoal(existing Goal, patch GoalPatch, updatedBy string) (Goal, error) {
	var errs fieldErrors
	if patch.Name == nil && patch.TargetValue == nil && patch.Deadline == nil {
		errs.add("patch", "at least one field must be provided")
		return Goal{}, errs.err("failed to update goal")
	}
	next := existing
	if patch.Name != nil {
		validateGoalName(*patch.Name, &errs)
		next.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.TargetValue != nil {
		validateGoalTarget(*patch.TargetValue, &errs)
		next.TargetValue = *patch.TargetValue
	}
	if patch.Deadline != nil {
		next.Deadline = patch.Deadline
	}
	if err := errs.err("failed to update goal"); err != nil {
		return Goal{}, err
	}
	next.AuditFields = existing.AuditFields.touched(updatedBy, time.Now())
	return next, nil
}

// MarkGoalDeleted soft-deletes the goal and deactivates it.
func MarkGoalDeleted(existing Goal, deletedBy string) Goal {
	next := existing
	next.IsActive = false
	next.AuditFields = existing.AuditFields.deleted(deletedBy, time.Now())
	return next
}

// Progress of totalValue toward the goal, clamped to [0,1].
func (g Goal) Progress(totalValue decimal.Decimal) decimal.Decimal {
	if !g.TargetValue.IsPositive() {
		return decimal.Zero
	}
	return clamp01(totalValue.Div(g.TargetValue))
}

func validateGoalName(name string, errs *fieldErrors) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs.add("name", "is required")
	} else if len(name) > maxAssetNameLength {
		errs.add("name", "must be at most 100 characters")
	}
}

func validateGoalTarget(v decimal.Decimal, errs *fieldErrors) {
	if !v.IsPositive() {
		errs.add("targetValue", "must be positive")
	}
}
