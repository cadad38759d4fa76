package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a row of the assets table.
type Asset struct {
	AssetID      string          `db:"asset_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Kind         string          `db:"kind"`
	CurrentValue decimal.Decimal `db:"current_value"`
	Location     *string         `db:"location"`
	Description  *string         `db:"description"`
	AuditFields
}

// AssetTarget is a row of the asset_targets table.
type AssetTarget struct {
	TargetID    string          `db:"target_id"`
	AssetID     string          `db:"asset_id"`
	TargetValue decimal.Decimal `db:"target_value"`
	AuditFields
}

// AssetWithTarget is an asset joined with its live target, if any. The target
// columns are all NULL when the asset has none.
type AssetWithTarget struct {
	Asset
	TargetID            *string          `db:"target_id"`
	TargetValue         *decimal.Decimal `db:"target_value"`
	TargetCreatedAt     *time.Time       `db:"target_created_at"`
	TargetCreatedBy     *string          `db:"target_created_by"`
	TargetLastUpdatedAt *time.Time       `db:"target_last_updated_at"`
	TargetLastUpdatedBy *string          `db:"target_last_updated_by"`
}
