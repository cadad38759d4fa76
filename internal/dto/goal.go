package dto

import (
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateGoalRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	TargetValue decimal.Decimal `json:"targetValue"`
	Deadline    *time.Time      `json:"deadline"`
}

func (r CreateGoalRequest) ToInput() domain.GoalInput {
	return domain.GoalInput{Name: r.Name, TargetValue: r.TargetValue, Deadline: r.Deadline}
}

type UpdateGoalRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	TargetValue *decimal.Decimal `json:"targetValue"`
	Deadline    *time.Time       `json:"deadline"`
}

func (r UpdateGoalRequest) ToPatch() domain.GoalPatch {
	return domain.GoalPatch{Name: r.Name, TargetValue: r.TargetValue, Deadline: r.Deadline}
}

type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetValue   decimal.Decimal `json:"targetValue"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

func ToGoalResponse(g domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetValue:   g.TargetValue,
		Deadline:      g.Deadline,
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// DashboardResponse is the aggregate overview returned by GET /dashboard.
type DashboardResponse struct {
	AssetCount      int                        `json:"assetCount"`
	PortfolioCount  int                        `json:"portfolioCount"`
	TotalAssetValue decimal.Decimal            `json:"totalAssetValue"`
	StatusCounts    map[domain.AssetStatus]int `json:"statusCounts"`
	OverallProgress *decimal.Decimal           `json:"overallProgress,omitempty"`
	ActiveGoal      *GoalResponse              `json:"activeGoal,omitempty"`
	GoalProgress    *decimal.Decimal           `json:"goalProgress,omitempty"`
}

func ToDashboardResponse(s domain.DashboardSummary) DashboardResponse {
	resp := DashboardResponse{
		AssetCount:      s.AssetCount,
		PortfolioCount:  s.PortfolioCount,
		TotalAssetValue: s.TotalAssetValue,
		StatusCounts:    s.StatusCounts,
		OverallProgress: s.OverallProgress,
		GoalProgress:    s.GoalProgress,
	}
	if s.ActiveGoal != nil {
		g := ToGoalResponse(*s.ActiveGoal)
		resp.ActiveGoal = &g
	}
	return resp
}
