package models

// PortfolioHolding is a row of the portfolio_holdings table.
type PortfolioHolding struct {
	HoldingID     string  `db:"holding_id"`
	PortfolioID   string  `db:"portfolio_id"`
	TokenSymbol   string  `db:"token_symbol"`
	TokenName     string  `db:"token_name"`
	Decimals      int     `db:"decimals"`
	LogoURL       *string `db:"logo_url"`
	IsStablecoin  bool    `db:"is_stablecoin"`
	StablecoinPeg *string `db:"stablecoin_peg"`
	AuditFields
}
