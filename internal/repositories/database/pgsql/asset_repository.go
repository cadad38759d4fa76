package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/models"
	"github.com/SscSPs/asset_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAssetRepository stores assets in "assets" and their optional target in
// "asset_targets". Reads join the live target; writes touch both tables in
// one transaction.
type PgxAssetRepository struct {
	*table[models.AssetWithTarget, domain.Asset]
}

func newPgxAssetRepository(pool *pgxpool.Pool) *PgxAssetRepository {
	cfg := tableConfig{
		entity:   "asset",
		name:     "assets",
		alias:    "a",
		idColumn: "asset_id",
		columns:  []string{"asset_id", "user_id", "name", "kind", "current_value", "location", "description"},
		mutable:  []string{"name", "kind", "current_value", "location", "description"},
		extraSelect: []string{
			`"tg"."target_id"`,
			`"tg"."target_value"`,
			`"tg"."created_at" AS "target_created_at"`,
			`"tg"."created_by" AS "target_created_by"`,
			`"tg"."last_updated_at" AS "target_last_updated_at"`,
			`"tg"."last_updated_by" AS "target_last_updated_by"`,
		},
		joins: `LEFT JOIN "asset_targets" "tg" ON "tg"."asset_id" = "a"."asset_id" AND "tg"."deleted_at" IS NULL`,
	}
	return &PgxAssetRepository{newTable(pool, cfg, mapping.ToDomainAsset, assetArgs)}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func assetArgs(d domain.Asset) pgx.NamedArgs {
	m := mapping.ToModelAsset(d)
	return auditArgs(pgx.NamedArgs{
		"asset_id":      m.AssetID,
		"user_id":       m.UserID,
		"name":          m.Name,
		"kind":          m.Kind,
		"current_value": m.CurrentValue,
		"location":      m.Location,
		"description":   m.Description,
	}, m.AuditFields)
}

// Add inserts the asset and, when present, its target.
func (r *PgxAssetRepository) Add(ctx context.Context, asset domain.Asset) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if err := r.insert(ctx, tx, asset); err != nil {
			return err
		}
		if asset.Target == nil {
			return nil
		}
		return r.upsertTarget(ctx, tx, *asset.Target)
	})
}

// Update rewrites the asset row and reconciles the target: a nil target
// soft-deletes the live one, otherwise it is inserted or updated by id.
func (r *PgxAssetRepository) Update(ctx context.Context, id string, asset domain.Asset) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if err := r.update(ctx, tx, id, asset); err != nil {
			return err
		}
		if asset.Target == nil {
			return r.clearTarget(ctx, tx, id, asset.LastUpdatedBy, asset.LastUpdatedAt)
		}
		return r.upsertTarget(ctx, tx, *asset.Target)
	})
}

func (r *PgxAssetRepository) upsertTarget(ctx context.Context, q querier, target domain.AssetTarget) error {
	m := mapping.ToModelAssetTarget(target)
	query := `
		INSERT INTO asset_targets (target_id, asset_id, target_value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (@target_id, @asset_id, @target_value, @created_at, @created_by, @last_updated_at, @last_updated_by)
		ON CONFLICT (target_id) DO UPDATE SET
			target_value = EXCLUDED.target_value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`

	_, err := q.Exec(ctx, query, pgx.NamedArgs{
		"target_id":       m.TargetID,
		"asset_id":        m.AssetID,
		"target_value":    m.TargetValue,
		"created_at":      m.CreatedAt,
		"created_by":      m.CreatedBy,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	if err != nil {
		return mapWriteError(err, "asset target", m.TargetID)
	}
	return nil
}

func (r *PgxAssetRepository) clearTarget(ctx context.Context, q querier, assetID, deletedBy string, deletedAt time.Time) error {
	query := `UPDATE asset_targets SET deleted_at = @deleted_at, deleted_by = @deleted_by
		WHERE asset_id = @asset_id AND deleted_at IS NULL`
	if _, err := q.Exec(ctx, query, pgx.NamedArgs{
		"asset_id":   assetID,
		"deleted_at": deletedAt,
		"deleted_by": deletedBy,
	}); err != nil {
		return fmt.Errorf("failed to clear target of asset %s: %w", assetID, err)
	}
	return nil
}
