package pgsql

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/models"
	"github.com/SscSPs/asset_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxHoldingRepository stores portfolio holdings. The partial unique index
// uq_holdings_portfolio_symbol rejects a second live row for the same symbol.
type PgxHoldingRepository struct {
	*table[models.PortfolioHolding, domain.PortfolioHolding]
}

func newPgxHoldingRepository(pool *pgxpool.Pool) *PgxHoldingRepository {
	cfg := tableConfig{
		entity:   "holding",
		name:     "portfolio_holdings",
		alias:    "h",
		idColumn: "holding_id",
		columns: []string{
			"holding_id", "portfolio_id", "token_symbol", "token_name", "decimals",
			"logo_url", "is_stablecoin", "stablecoin_peg",
		},
		mutable: []string{"token_symbol", "token_name", "decimals", "logo_url", "is_stablecoin", "stablecoin_peg"},
	}
	return &PgxHoldingRepository{newTable(pool, cfg, mapping.ToDomainHolding, holdingArgs)}
}

var _ portsrepo.HoldingRepositoryFacade = (*PgxHoldingRepository)(nil)

func holdingArgs(d domain.PortfolioHolding) pgx.NamedArgs {
	m := mapping.ToModelHolding(d)
	return auditArgs(pgx.NamedArgs{
		"holding_id":     m.HoldingID,
		"portfolio_id":   m.PortfolioID,
		"token_symbol":   m.TokenSymbol,
		"token_name":     m.TokenName,
		"decimals":       m.Decimals,
		"logo_url":       m.LogoURL,
		"is_stablecoin":  m.IsStablecoin,
		"stablecoin_peg": m.StablecoinPeg,
	}, m.AuditFields)
}
