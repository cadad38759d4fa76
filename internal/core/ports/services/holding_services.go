package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

// HoldingReaderSvc defines read operations for portfolio holdings.
type HoldingReaderSvc interface {
	GetHolding(ctx context.Context, portfolioID string, holdingID string, userID string) (*domain.PortfolioHolding, error)
	ListHoldings(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.PortfolioHolding], error)

	// ListHoldingsWithPrices attaches current market data where the pricing
	// provider has it. Provider failures never fail the listing.
	ListHoldingsWithPrices(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.EnrichedHolding], error)
}

// HoldingWriterSvc defines write operations for portfolio holdings.
type HoldingWriterSvc interface {
	AddHolding(ctx context.Context, portfolioID string, req dto.CreateHoldingRequest, userID string) (*domain.PortfolioHolding, error)
	UpdateHolding(ctx context.Context, portfolioID string, holdingID string, req dto.UpdateHoldingRequest, userID string) (*domain.PortfolioHolding, error)
	RemoveHolding(ctx context.Context, portfolioID string, holdingID string, userID string) error
}

// HoldingSvcFacade combines all holding-related service interfaces.
type HoldingSvcFacade interface {
	HoldingReaderSvc
	HoldingWriterSvc
}

// PricingProvider fetches market data for tokens from an external source.
type PricingProvider interface {
	// GetTokenDetails returns the quote for one provider reference id.
	GetTokenDetails(ctx context.Context, refID string) (*domain.PriceQuote, error)

	// GetTokenPrices returns quotes keyed by reference id. Ids the provider
	// does not know are absent from the map.
	GetTokenPrices(ctx context.Context, refIDs []string) (map[string]domain.PriceQuote, error)
}
