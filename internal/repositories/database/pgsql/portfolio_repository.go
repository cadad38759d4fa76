package pgsql

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/models"
	"github.com/SscSPs/asset_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPortfolioRepository struct {
	*table[models.Portfolio, domain.Portfolio]
}

func newPgxPortfolioRepository(pool *pgxpool.Pool) *PgxPortfolioRepository {
	cfg := tableConfig{
		entity:   "portfolio",
		name:     "portfolios",
		alias:    "p",
		idColumn: "portfolio_id",
		columns:  []string{"portfolio_id", "user_id", "name", "description"},
		mutable:  []string{"name", "description"},
	}
	return &PgxPortfolioRepository{newTable(pool, cfg, mapping.ToDomainPortfolio, portfolioArgs)}
}

var _ portsrepo.PortfolioRepositoryFacade = (*PgxPortfolioRepository)(nil)

func portfolioArgs(d domain.Portfolio) pgx.NamedArgs {
	m := mapping.ToModelPortfolio(d)
	return auditArgs(pgx.NamedArgs{
		"portfolio_id": m.PortfolioID,
		"user_id":      m.UserID,
		"name":         m.Name,
		"description":  m.Description,
	}, m.AuditFields)
}
