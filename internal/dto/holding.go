package dto

import (
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
)

// CreateHoldingRequest registers a token in a portfolio.
type CreateHoldingRequest struct {
	TokenSymbol   string  `json:"tokenSymbol" binding:"required,tokensymbol"`
	TokenName     string  `json:"tokenName" binding:"required,max=100"`
	Decimals      int     `json:"decimals" binding:"min=0,max=18"`
	LogoURL       *string `json:"logoURL" binding:"omitempty,url"`
	IsStablecoin  bool    `json:"isStablecoin"`
	StablecoinPeg *string `json:"stablecoinPeg" binding:"omitempty,max=10"`
}

func (r CreateHoldingRequest) ToInput(portfolioID string) domain.HoldingInput {
	return domain.HoldingInput{
		PortfolioID:   portfolioID,
		TokenSymbol:   r.TokenSymbol,
		TokenName:     r.TokenName,
		Decimals:      r.Decimals,
		LogoURL:       r.LogoURL,
		IsStablecoin:  r.IsStablecoin,
		StablecoinPeg: r.StablecoinPeg,
	}
}

type UpdateHoldingRequest struct {
	TokenSymbol   *string `json:"tokenSymbol" binding:"omitempty,tokensymbol"`
	TokenName     *string `json:"tokenName" binding:"omitempty,max=100"`
	Decimals      *int    `json:"decimals" binding:"omitempty,min=0,max=18"`
	LogoURL       *string `json:"logoURL" binding:"omitempty,url"`
	IsStablecoin  *bool   `json:"isStablecoin"`
	StablecoinPeg *string `json:"stablecoinPeg" binding:"omitempty,max=10"`
}

func (r UpdateHoldingRequest) ToPatch() domain.HoldingPatch {
	return domain.HoldingPatch{
		TokenSymbol:   r.TokenSymbol,
		TokenName:     r.TokenName,
		Decimals:      r.Decimals,
		LogoURL:       r.LogoURL,
		IsStablecoin:  r.IsStablecoin,
		StablecoinPeg: r.StablecoinPeg,
	}
}

type HoldingResponse struct {
	HoldingID     string             `json:"holdingID"`
	PortfolioID   string             `json:"portfolioID"`
	TokenSymbol   string             `json:"tokenSymbol"`
	TokenName     string             `json:"tokenName"`
	Decimals      int                `json:"decimals"`
	LogoURL       *string            `json:"logoURL,omitempty"`
	IsStablecoin  bool               `json:"isStablecoin"`
	StablecoinPeg *string            `json:"stablecoinPeg,omitempty"`
	Quote         *domain.PriceQuote `json:"quote,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

func ToHoldingResponse(h domain.PortfolioHolding) HoldingResponse {
	resp := HoldingResponse{
		HoldingID:     h.HoldingID,
		PortfolioID:   h.PortfolioID,
		TokenSymbol:   h.TokenSymbol,
		TokenName:     h.TokenName,
		Decimals:      h.Decimals,
		LogoURL:       h.LogoURL,
		IsStablecoin:  h.IsStablecoinHolding(),
		CreatedAt:     h.CreatedAt,
		LastUpdatedAt: h.LastUpdatedAt,
	}
	if peg, ok := h.Peg(); ok {
		resp.StablecoinPeg = &peg
	}
	return resp
}

func ToEnrichedHoldingResponse(h domain.EnrichedHolding) HoldingResponse {
	resp := ToHoldingResponse(h.PortfolioHolding)
	resp.Quote = h.Quote
	return resp
}
