package queryfilter

import (
	"errors"
	"testing"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExcludesSoftDeleted(t *testing.T) {
	spec := New("t", nil).Build()
	assert.Equal(t, `"t"."deleted_at" IS NULL`, spec.Where)
	assert.Equal(t, `WHERE "t"."deleted_at" IS NULL`, spec.WhereClause())
	assert.Empty(t, spec.Args)
	assert.Empty(t, spec.OrderClause())
	assert.Empty(t, spec.LimitClause())
}

func TestEqual_RepeatedColumnGetsDistinctParams(t *testing.T) {
	spec := New("t", nil).
		Equal("token_symbol", "BTC").
		Equal("token_symbol", "ETH").
		Build()

	assert.Equal(t,
		`"t"."deleted_at" IS NULL AND "t"."token_symbol" = @token_symbol_1 AND "t"."token_symbol" = @token_symbol_2`,
		spec.Where)
	assert.Equal(t, pgx.NamedArgs{"token_symbol_1": "BTC", "token_symbol_2": "ETH"}, spec.Args)
}

func TestPredicates_ShareOneCounter(t *testing.T) {
	spec := New("a", nil).
		Like("name", "fund").
		NotEqual("kind", "CASH").
		In("kind", []string{"STOCKS", "CRYPTO"}).
		NotIn("asset_id", []string{"x"}).
		GreaterThanOrEqual("created_at", 1).
		LessThanOrEqual("created_at", 2).
		Build()

	assert.Len(t, spec.Args, 6)
	assert.Contains(t, spec.Where, `"a"."name" ILIKE @name_1 ESCAPE '\'`)
	assert.Contains(t, spec.Where, `"a"."kind" <> @kind_2`)
	assert.Contains(t, spec.Where, `"a"."kind" = ANY(@kind_3)`)
	assert.Contains(t, spec.Where, `"a"."asset_id" <> ALL(@asset_id_4)`)
	assert.Contains(t, spec.Where, `"a"."created_at" >= @created_at_5`)
	assert.Contains(t, spec.Where, `"a"."created_at" <= @created_at_6`)
	assert.Equal(t, "%fund%", spec.Args["name_1"])
}

func TestLike_EscapesWildcards(t *testing.T) {
	spec := New("t", nil).Like("name", `50%_off\`).Build()
	assert.Equal(t, `%50\%\_off\\%`, spec.Args["name_1"])
}

func TestOrLike(t *testing.T) {
	spec := New("h", nil).OrLike("coin", "token_symbol", "token_name").Build()
	assert.Contains(t, spec.Where,
		`("h"."token_symbol" ILIKE @token_symbol_1 ESCAPE '\' OR "h"."token_name" ILIKE @token_name_2 ESCAPE '\')`)

	unchanged := New("h", nil).OrLike("coin").Build()
	assert.Equal(t, `"h"."deleted_at" IS NULL`, unchanged.Where)
}

func TestIn_EmptySlices(t *testing.T) {
	spec := New("t", nil).In("kind", []string{}).NotIn("kind", []string(nil)).Build()
	assert.Equal(t, `"t"."deleted_at" IS NULL AND FALSE`, spec.Where)
	assert.Empty(t, spec.Args)
}

func TestIdentifiersAreQuoted(t *testing.T) {
	spec := New("t", nil).Equal(`name"; DROP TABLE assets; --`, "x").Build()
	assert.Contains(t, spec.Where, `"t"."name""; DROP TABLE assets; --" = @name___drop_table_assets_____1`)
}

func TestOrderBy_AllowList(t *testing.T) {
	t.Run("unlisted column with allow-list panics", func(t *testing.T) {
		b := New("t", []string{"created_at"})
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
			var cfgErr *apperrors.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		}()
		b.OrderBy("unlisted_column", Asc)
	})

	t.Run("unlisted column without allow-list", func(t *testing.T) {
		assert.NotPanics(t, func() {
			spec := New("t", nil).OrderBy("unlisted_column", "desc").Build()
			assert.Equal(t, `ORDER BY "t"."unlisted_column" DESC`, spec.OrderClause())
		})
	})

	t.Run("empty column is a no-op", func(t *testing.T) {
		spec := New("t", []string{"created_at"}).OrderBy("", Desc).Build()
		assert.Empty(t, spec.OrderBy)
	})

	t.Run("multiple terms and direction normalization", func(t *testing.T) {
		spec := New("t", []string{"created_at", "name"}).
			OrderBy("name", "sideways").
			OrderBy("created_at", "DESC").
			Build()
		assert.Equal(t, `"t"."name" ASC, "t"."created_at" DESC`, spec.OrderBy)
	})
}

func TestPaginate(t *testing.T) {
	spec := New("t", nil).Paginate(3, 20).Build()
	assert.Equal(t, 20, spec.Limit())
	assert.Equal(t, 40, spec.Offset())
	assert.Equal(t, "LIMIT 20 OFFSET 40", spec.LimitClause())
	assert.True(t, spec.IsPaged())

	unpaged := New("t", nil).Paginate(0, 20).Build()
	assert.False(t, unpaged.IsPaged())
	assert.Empty(t, unpaged.LimitClause())
}

func TestApply_DispatchesByValueShape(t *testing.T) {
	var nilPtr *string
	spec := New("t", nil).Apply(map[string]any{
		"name":      "gold",
		"kind":      []string{"CASH", "OTHER"},
		"decimals":  8,
		"notes":     nil,
		"logo_url":  nilPtr,
		"is_stable": true,
	}).Build()

	// Keys are applied in sorted order: decimals, is_stable, kind, name.
	assert.Equal(t,
		`"t"."deleted_at" IS NULL AND "t"."decimals" = @decimals_1 AND "t"."is_stable" = @is_stable_2`+
			` AND "t"."kind" = ANY(@kind_3) AND "t"."name" ILIKE @name_4 ESCAPE '\'`,
		spec.Where)
	assert.Equal(t, "%gold%", spec.Args["name_4"])
	assert.Equal(t, []string{"CASH", "OTHER"}, spec.Args["kind_3"])
	assert.Equal(t, 8, spec.Args["decimals_1"])
}

func TestBuild_ReturnsSnapshot(t *testing.T) {
	b := New("t", nil).Equal("a", 1)
	first := b.Build()

	b.Equal("b", 2).OrderBy("a", Asc)
	second := b.Build()

	assert.Len(t, first.Args, 1)
	assert.NotContains(t, first.Where, `"t"."b"`)
	assert.Empty(t, first.OrderBy)
	assert.Len(t, second.Args, 2)

	first.Args["injected"] = 3
	assert.NotContains(t, b.Build().Args, "injected")
}

func TestApply_ByteSliceIsEquality(t *testing.T) {
	spec := New("t", nil).Apply(map[string]any{"checksum": []byte{0x01, 0x02}}).Build()

	assert.Equal(t, `"t"."deleted_at" IS NULL AND "t"."checksum" = @checksum_1`, spec.Where)
	assert.Equal(t, []byte{0x01, 0x02}, spec.Args["checksum_1"])
}
