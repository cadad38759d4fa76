package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuote is current market data for one token as reported by the pricing provider.
type PriceQuote struct {
	RefID       string           `json:"refID"`
	Symbol      string           `json:"symbol,omitempty"`
	Name        string           `json:"name,omitempty"`
	Currency    string           `json:"currency"`
	Price       decimal.Decimal  `json:"price"`
	Change24h   *decimal.Decimal `json:"change24h,omitempty"`
	MarketCap   *decimal.Decimal `json:"marketCap,omitempty"`
	LogoURL     string           `json:"logoURL,omitempty"`
	LastUpdated *time.Time       `json:"lastUpdated,omitempty"`
}

// EnrichedHolding is a holding with market data attached when it was available.
type EnrichedHolding struct {
	PortfolioHolding
	Quote *PriceQuote `json:"quote,omitempty"`
}
