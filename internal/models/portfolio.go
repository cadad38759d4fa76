package models

// Portfolio is a row of the portfolios table.
type Portfolio struct {
	PortfolioID string  `db:"portfolio_id"`
	UserID      string  `db:"user_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	AuditFields
}
