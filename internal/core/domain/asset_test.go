package domain_test

import (
	"testing"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assetWithTarget(current string, target *decimal.Decimal) domain.Asset {
	a := domain.Asset{AssetID: "asset-1", CurrentValue: dec(current)}
	if target != nil {
		a.Target = &domain.AssetTarget{TargetID: "target-1", AssetID: "asset-1", TargetValue: *target}
	}
	return a
}

func TestAsset_ProgressAndStatus(t *testing.T) {
	tests := []struct {
		name         string
		current      string
		target       *decimal.Decimal
		wantProgress *string
		wantStatus   domain.AssetStatus
	}{
		{"half way", "50", decimalPtr(dec("100")), stringPtr("0.5"), domain.StatusInProgress},
		{"clamped at one", "150", decimalPtr(dec("100")), stringPtr("1"), domain.StatusDone},
		{"exactly reached", "100", decimalPtr(dec("100")), stringPtr("1"), domain.StatusDone},
		{"nothing saved", "0", decimalPtr(dec("100")), stringPtr("0"), domain.StatusInProgress},
		{"no target", "50", nil, nil, domain.StatusUndefined},
		{"zero target", "50", decimalPtr(decimal.Zero), nil, domain.StatusNotStarted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assetWithTarget(tt.current, tt.target)
			p := a.Progress()
			if tt.wantProgress == nil {
				assert.Nil(t, p)
			} else {
				require.NotNil(t, p)
				assertDecimal(t, *tt.wantProgress, *p)
			}
			assert.Equal(t, tt.wantStatus, a.Status())
		})
	}
}

func TestNewAsset(t *testing.T) {
	a, err := domain.NewAsset("user-1", domain.AssetInput{
		Name:         " Emergency fund ",
		Kind:         domain.AssetBankAccount,
		CurrentValue: dec("2500"),
		TargetValue:  decimalPtr(dec("10000")),
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Emergency fund", a.Name)
	require.NotNil(t, a.Target)
	assert.Equal(t, a.AssetID, a.Target.AssetID)
	assert.NotEmpty(t, a.Target.TargetID)
	assert.Equal(t, domain.StatusInProgress, a.Status())
}

func TestNewAsset_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    domain.AssetInput
		field string
	}{
		{"missing name", domain.AssetInput{Kind: domain.AssetCash}, "name"},
		{"unknown kind", domain.AssetInput{Name: "x", Kind: "GOLD"}, "kind"},
		{"negative value", domain.AssetInput{Name: "x", Kind: domain.AssetCash, CurrentValue: dec("-1")}, "currentValue"},
		{"negative target", domain.AssetInput{Name: "x", Kind: domain.AssetCash, TargetValue: decimalPtr(dec("-5"))}, "targetValue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewAsset("user-1", tt.in, "user-1")
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestUpdateAsset_TargetChanges(t *testing.T) {
	base, err := domain.NewAsset("user-1", domain.AssetInput{
		Name:         "Brokerage",
		Kind:         domain.AssetStocks,
		CurrentValue: dec("500"),
		TargetValue:  decimalPtr(dec("1000")),
	}, "user-1")
	require.NoError(t, err)

	t.Run("keep", func(t *testing.T) {
		updated, err := domain.UpdateAsset(base, domain.AssetPatch{CurrentValue: decimalPtr(dec("600"))}, "user-2")
		require.NoError(t, err)
		require.NotNil(t, updated.Target)
		assert.Equal(t, base.Target, updated.Target)
		assertDecimal(t, "600", updated.CurrentValue)
	})

	t.Run("clear", func(t *testing.T) {
		updated, err := domain.UpdateAsset(base, domain.AssetPatch{Target: domain.ClearTarget()}, "user-2")
		require.NoError(t, err)
		assert.Nil(t, updated.Target)
		assert.Equal(t, domain.StatusUndefined, updated.Status())
		assert.NotNil(t, base.Target)
	})

	t.Run("set keeps target identity", func(t *testing.T) {
		updated, err := domain.UpdateAsset(base, domain.AssetPatch{Target: domain.SetTarget(dec("2000"))}, "user-2")
		require.NoError(t, err)
		require.NotNil(t, updated.Target)
		assert.Equal(t, base.Target.TargetID, updated.Target.TargetID)
		assert.Equal(t, base.Target.CreatedAt, updated.Target.CreatedAt)
		assert.Equal(t, "user-2", updated.Target.LastUpdatedBy)
		assertDecimal(t, "2000", updated.Target.TargetValue)
		assertDecimal(t, "1000", base.Target.TargetValue)
	})

	t.Run("set creates a target when missing", func(t *testing.T) {
		untargeted := base
		untargeted.Target = nil
		updated, err := domain.UpdateAsset(untargeted, domain.AssetPatch{Target: domain.SetTarget(dec("50"))}, "user-2")
		require.NoError(t, err)
		require.NotNil(t, updated.Target)
		assert.Equal(t, base.AssetID, updated.Target.AssetID)
	})

	t.Run("negative target rejected", func(t *testing.T) {
		_, err := domain.UpdateAsset(base, domain.AssetPatch{Target: domain.SetTarget(dec("-1"))}, "user-2")
		requireFieldError(t, err, "targetValue")
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		_, err := domain.UpdateAsset(base, domain.AssetPatch{Target: domain.KeepTarget()}, "user-2")
		requireFieldError(t, err, "patch")
	})
}

func TestMarkAssetDeleted(t *testing.T) {
	a := assetWithTarget("10", decimalPtr(dec("20")))
	deleted := domain.MarkAssetDeleted(a, "user-1")
	assert.False(t, deleted.IsActive())
	require.NotNil(t, deleted.Target)
	assert.True(t, deleted.Target.IsActive())
}
