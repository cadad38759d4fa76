package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the goals table.
type Goal struct {
	GoalID      string          `db:"goal_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	TargetValue decimal.Decimal `db:"target_value"`
	Deadline    *time.Time      `db:"deadline"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}
