package services

import (
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// pricing may be nil, in which case holdings are never enriched.
func NewServiceContainer(repos portsrepo.RepositoryProvider, pricing portssvc.PricingProvider) *portssvc.ServiceContainer {
	var holdingOpts []HoldingServiceOption
	if pricing != nil {
		holdingOpts = append(holdingOpts, WithPricingProvider(pricing))
	}

	return &portssvc.ServiceContainer{
		Portfolio:   NewPortfolioService(repos.PortfolioRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.PortfolioRepo),
		Holding:     NewHoldingService(repos.HoldingRepo, repos.PortfolioRepo, holdingOpts...),
		Asset:       NewAssetService(repos.AssetRepo),
		Goal:        NewGoalService(repos.GoalRepo),
		Dashboard:   NewDashboardService(repos.AssetRepo, repos.PortfolioRepo, repos.GoalRepo),
	}
}
