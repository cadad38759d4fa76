package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_SelectListIsQualified(t *testing.T) {
	repo := newPgxPortfolioRepository(nil)

	assert.Equal(t, `"portfolios" "p"`, repo.from)
	assert.Contains(t, repo.selectList, `"p"."portfolio_id"`)
	assert.Contains(t, repo.selectList, `"p"."deleted_by"`)
	assert.NotContains(t, repo.selectList, "tg")
}

func TestAssetTable_JoinsLiveTarget(t *testing.T) {
	repo := newPgxAssetRepository(nil)

	assert.Contains(t, repo.from, `LEFT JOIN "asset_targets" "tg"`)
	assert.Contains(t, repo.from, `"tg"."deleted_at" IS NULL`)
	assert.Contains(t, repo.selectList, `"tg"."created_at" AS "target_created_at"`)
}

func TestByID_ExcludesDeletedRows(t *testing.T) {
	repo := newPgxHoldingRepository(nil)
	spec := repo.byID("h-1")

	assert.Equal(t, `"h"."deleted_at" IS NULL AND "h"."holding_id" = @holding_id_1`, spec.Where)
	assert.Equal(t, "h-1", spec.Args["holding_id_1"])
}

func TestJoinSQL_SkipsEmptyParts(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM x LIMIT 1", joinSQL("SELECT 1", "", "FROM x", "", "LIMIT 1"))
}

func TestMapWriteError(t *testing.T) {
	dup := mapWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_holdings_portfolio_symbol"}, "holding", "h-1")
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)
	assert.Contains(t, dup.Error(), "uq_holdings_portfolio_symbol")

	missing := mapWriteError(&pgconn.PgError{Code: pgForeignKeyViolation}, "transaction", "t-1")
	assert.ErrorIs(t, missing, apperrors.ErrNotFound)

	cause := errors.New("connection reset")
	other := mapWriteError(cause, "goal", "g-1")
	assert.ErrorIs(t, other, cause)
	assert.False(t, errors.Is(other, apperrors.ErrDuplicate))
}

func TestTransactionArgs_CoverInsertColumns(t *testing.T) {
	price := decimal.NewFromInt(100)
	txn, err := domain.NewTransaction("p-1", domain.TransactionInput{
		TokenSymbol: "btc",
		Type:        domain.Buy,
		Amount:      decimal.NewFromInt(2),
		Price:       &price,
		Timestamp:   time.Now().Add(-time.Hour),
	}, "user-1", nil)
	require.NoError(t, err)

	repo := newPgxTransactionRepository(nil)
	args := transactionArgs(txn)
	for _, c := range append(append([]string{}, repo.cfg.columns...), insertAuditColumns...) {
		assert.Contains(t, args, c)
	}
	assert.Equal(t, "BUY", args["type"])
	assert.Equal(t, "BTC", args["token_symbol"])
}

func TestRemoveSQL(t *testing.T) {
	assert.Equal(t,
		`UPDATE "portfolios" SET deleted_at = @deleted_at, deleted_by = @deleted_by WHERE "portfolio_id" = @id AND deleted_at IS NULL`,
		newPgxPortfolioRepository(nil).removeSQL())

	goalSQL := newPgxGoalRepository(nil).removeSQL()
	assert.Equal(t,
		`UPDATE "goals" SET deleted_at = @deleted_at, deleted_by = @deleted_by, is_active = FALSE WHERE "goal_id" = @id AND deleted_at IS NULL`,
		goalSQL)
}
