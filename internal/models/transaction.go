package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Amount is signed and
// CashFlow is stored as computed when the row was written.
type Transaction struct {
	TransactionID        string           `db:"transaction_id"`
	PortfolioID          string           `db:"portfolio_id"`
	TokenSymbol          string           `db:"token_symbol"`
	Type                 string           `db:"type"`
	Amount               decimal.Decimal  `db:"amount"`
	Price                *decimal.Decimal `db:"price"`
	Fees                 decimal.Decimal  `db:"fees"`
	CashFlow             decimal.Decimal  `db:"cash_flow"`
	Timestamp            time.Time        `db:"timestamp"`
	ExternalID           *string          `db:"external_id"`
	Notes                *string          `db:"notes"`
	PortfolioValueBefore *decimal.Decimal `db:"portfolio_value_before"`
	PortfolioValueAfter  *decimal.Decimal `db:"portfolio_value_after"`
	AuditFields
}
