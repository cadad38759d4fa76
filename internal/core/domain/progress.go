package domain

import "github.com/shopspring/decimal"

// ProgressItem is the shape OverallProgress reads: a current value and an
// optional target.
type ProgressItem struct {
	CurrentValue decimal.Decimal
	TargetValue  *decimal.Decimal
}

// CalculateOverallProgress returns the value-weighted average of per-item
// progress. Each item's clamped progress is weighted by its target value, so
// larger targets dominate. Items without a target carry no weight. The result
// is nil when the total weight is not positive.
func CalculateOverallProgress(items []ProgressItem) *decimal.Decimal {
	totalWeight := decimal.Zero
	for _, item := range items {
		if item.TargetValue != nil {
			totalWeight = totalWeight.Add(*item.TargetValue)
		}
	}
	if !totalWeight.IsPositive() {
		return nil
	}

	weighted := decimal.Zero
	for _, item := range items {
		if item.TargetValue == nil || !item.TargetValue.IsPositive() {
			continue
		}
		progress := clamp01(item.CurrentValue.Div(*item.TargetValue))
		weighted = weighted.Add(progress.Mul(*item.TargetValue))
	}

	result := weighted.Div(totalWeight)
	return &result
}

// OverallAssetProgress is CalculateOverallProgress over assets.
func OverallAssetProgress(assets []Asset) *decimal.Decimal {
	items := make([]ProgressItem, len(assets))
	for i, a := range assets {
		items[i] = a.ProgressItem()
	}
	return CalculateOverallProgress(items)
}
