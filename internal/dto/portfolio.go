package dto

import (
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
)

// CreatePortfolioRequest defines the data needed to create a portfolio.
type CreatePortfolioRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// UpdatePortfolioRequest uses pointers to tell "not provided" from zero values.
type UpdatePortfolioRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func (r UpdatePortfolioRequest) ToPatch() domain.PortfolioPatch {
	return domain.PortfolioPatch{Name: r.Name, Description: r.Description}
}

type PortfolioResponse struct {
	PortfolioID   string    `json:"portfolioID"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

func ToPortfolioResponse(p domain.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		PortfolioID:   p.PortfolioID,
		Name:          p.Name,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}
