package pgsql

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/models"
	"github.com/SscSPs/asset_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository stores ledger entries. The type and portfolio of
// an entry never change after insert.
type PgxTransactionRepository struct {
	*table[models.Transaction, domain.Transaction]
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	cfg := tableConfig{
		entity:   "transaction",
		name:     "transactions",
		alias:    "t",
		idColumn: "transaction_id",
		columns: []string{
			"transaction_id", "portfolio_id", "token_symbol", "type", "amount", "price", "fees",
			"cash_flow", "timestamp", "external_id", "notes", "portfolio_value_before", "portfolio_value_after",
		},
		mutable: []string{
			"token_symbol", "amount", "price", "fees", "cash_flow", "timestamp",
			"external_id", "notes", "portfolio_value_after",
		},
	}
	return &PgxTransactionRepository{newTable(pool, cfg, mapping.ToDomainTransaction, transactionArgs)}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func transactionArgs(d domain.Transaction) pgx.NamedArgs {
	m := mapping.ToModelTransaction(d)
	return auditArgs(pgx.NamedArgs{
		"transaction_id":         m.TransactionID,
		"portfolio_id":           m.PortfolioID,
		"token_symbol":           m.TokenSymbol,
		"type":                   m.Type,
		"amount":                 m.Amount,
		"price":                  m.Price,
		"fees":                   m.Fees,
		"cash_flow":              m.CashFlow,
		"timestamp":              m.Timestamp,
		"external_id":            m.ExternalID,
		"notes":                  m.Notes,
		"portfolio_value_before": m.PortfolioValueBefore,
		"portfolio_value_after":  m.PortfolioValueAfter,
	}, m.AuditFields)
}
