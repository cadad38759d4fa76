package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates a user's savings assets and active goal.
type DashboardSummary struct {
	AssetCount      int                 `json:"assetCount"`
	PortfolioCount  int                 `json:"portfolioCount"`
	TotalAssetValue decimal.Decimal     `json:"totalAssetValue"`
	StatusCounts    map[AssetStatus]int `json:"statusCounts"`
	OverallProgress *decimal.Decimal    `json:"overallProgress,omitempty"`
	ActiveGoal      *Goal               `json:"activeGoal,omitempty"`
	GoalProgress    *decimal.Decimal    `json:"goalProgress,omitempty"`
}

// SummarizeAssets folds assets into a summary. Goal fields are left for the caller.
func SummarizeAssets(assets []Asset) DashboardSummary {
	summary := DashboardSummary{
		AssetCount:      len(assets),
		TotalAssetValue: decimal.Zero,
		StatusCounts:    map[AssetStatus]int{},
	}
	for _, a := range assets {
		summary.TotalAssetValue = summary.TotalAssetValue.Add(a.CurrentValue)
		summary.StatusCounts[a.Status()]++
	}
	summary.OverallProgress = OverallAssetProgress(assets)
	return summary
}

// WithGoal attaches goal and its progress measured against the total asset value.
func (s DashboardSummary) WithGoal(goal *Goal) DashboardSummary {
	if goal == nil {
		return s
	}
	g := *goal
	p := g.Progress(s.TotalAssetValue)
	s.ActiveGoal = &g
	s.GoalProgress = &p
	return s
}
