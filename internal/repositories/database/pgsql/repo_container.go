package pgsql

import (
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	portfolioRepo := newPgxPortfolioRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	holdingRepo := newPgxHoldingRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	goalRepo := newPgxGoalRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PortfolioRepo:   portfolioRepo,
		TransactionRepo: transactionRepo,
		HoldingRepo:     holdingRepo,
		AssetRepo:       assetRepo,
		GoalRepo:        goalRepo,
	}
}
