package dto

import (
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger transaction.
// Sign and price rules are enforced by the domain; binding only checks shape.
type CreateTransactionRequest struct {
	TokenSymbol          string                 `json:"tokenSymbol" binding:"required,tokensymbol"`
	Type                 domain.TransactionType `json:"type" binding:"required,oneof=BUY SELL DEPOSIT WITHDRAWAL SWAP"`
	Amount               decimal.Decimal        `json:"amount"`
	Price                *decimal.Decimal       `json:"price"`
	Fees                 decimal.Decimal        `json:"fees"`
	Timestamp            *time.Time             `json:"timestamp"`
	ExternalID           *string                `json:"externalID" binding:"omitempty,max=100"`
	Notes                *string                `json:"notes" binding:"omitempty,max=500"`
	PortfolioValueBefore *decimal.Decimal       `json:"portfolioValueBefore"`
	PortfolioValueAfter  *decimal.Decimal       `json:"portfolioValueAfter"`
}

func (r CreateTransactionRequest) ToInput() domain.TransactionInput {
	in := domain.TransactionInput{
		TokenSymbol:         r.TokenSymbol,
		Type:                r.Type,
		Amount:              r.Amount,
		Price:               r.Price,
		Fees:                r.Fees,
		ExternalID:          r.ExternalID,
		Notes:               r.Notes,
		PortfolioValueAfter: r.PortfolioValueAfter,
	}
	if r.Timestamp != nil {
		in.Timestamp = *r.Timestamp
	}
	return in
}

// UpdateTransactionRequest lists patchable fields. The type cannot change.
type UpdateTransactionRequest struct {
	TokenSymbol         *string          `json:"tokenSymbol" binding:"omitempty,tokensymbol"`
	Amount              *decimal.Decimal `json:"amount"`
	Price               *decimal.Decimal `json:"price"`
	Fees                *decimal.Decimal `json:"fees"`
	Timestamp           *time.Time       `json:"timestamp"`
	ExternalID          *string          `json:"externalID" binding:"omitempty,max=100"`
	Notes               *string          `json:"notes" binding:"omitempty,max=500"`
	PortfolioValueAfter *decimal.Decimal `json:"portfolioValueAfter"`
}

func (r UpdateTransactionRequest) ToPatch() domain.TransactionPatch {
	return domain.TransactionPatch{
		TokenSymbol:         r.TokenSymbol,
		Amount:              r.Amount,
		Price:               r.Price,
		Fees:                r.Fees,
		Timestamp:           r.Timestamp,
		ExternalID:          r.ExternalID,
		Notes:               r.Notes,
		PortfolioValueAfter: r.PortfolioValueAfter,
	}
}

// TransactionResponse mirrors domain.Transaction plus its derived values.
type TransactionResponse struct {
	TransactionID        string                 `json:"transactionID"`
	PortfolioID          string                 `json:"portfolioID"`
	TokenSymbol          string                 `json:"tokenSymbol"`
	Type                 domain.TransactionType `json:"type"`
	Amount               decimal.Decimal        `json:"amount"`
	Price                *decimal.Decimal       `json:"price,omitempty"`
	Fees                 decimal.Decimal        `json:"fees"`
	CashFlow             decimal.Decimal        `json:"cashFlow"`
	TotalValue           *decimal.Decimal       `json:"totalValue,omitempty"`
	TotalCost            *decimal.Decimal       `json:"totalCost,omitempty"`
	PortfolioImpact      *decimal.Decimal       `json:"portfolioImpact,omitempty"`
	Timestamp            time.Time              `json:"timestamp"`
	ExternalID           *string                `json:"externalID,omitempty"`
	Notes                *string                `json:"notes,omitempty"`
	PortfolioValueBefore *decimal.Decimal       `json:"portfolioValueBefore,omitempty"`
	PortfolioValueAfter  *decimal.Decimal       `json:"portfolioValueAfter,omitempty"`
	CreatedAt            time.Time              `json:"createdAt"`
	CreatedBy            string                 `json:"createdBy"`
	LastUpdatedAt        time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy        string                 `json:"lastUpdatedBy"`
}

func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		PortfolioID:          t.PortfolioID,
		TokenSymbol:          t.TokenSymbol,
		Type:                 t.Type,
		Amount:               t.Amount,
		Price:                t.Price,
		Fees:                 t.Fees,
		CashFlow:             t.CashFlow,
		TotalValue:           t.TotalValue(),
		TotalCost:            t.TotalCost(),
		PortfolioImpact:      t.PortfolioImpact(),
		Timestamp:            t.Timestamp,
		ExternalID:           t.ExternalID,
		Notes:                t.Notes,
		PortfolioValueBefore: t.PortfolioValueBefore,
		PortfolioValueAfter:  t.PortfolioValueAfter,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
		LastUpdatedAt:        t.LastUpdatedAt,
		LastUpdatedBy:        t.LastUpdatedBy,
	}
}
