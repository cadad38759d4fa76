package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

// PortfolioReaderSvc defines read operations for portfolios.
type PortfolioReaderSvc interface {
	// GetPortfolio returns the portfolio when userID owns it.
	GetPortfolio(ctx context.Context, portfolioID string, userID string) (*domain.Portfolio, error)

	// ListPortfolios lists the caller's portfolios using the query's filters, sort and page.
	ListPortfolios(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Portfolio], error)
}

// PortfolioWriterSvc defines write operations for portfolios.
type PortfolioWriterSvc interface {
	CreatePortfolio(ctx context.Context, req dto.CreatePortfolioRequest, userID string) (*domain.Portfolio, error)
	UpdatePortfolio(ctx context.Context, portfolioID string, req dto.UpdatePortfolioRequest, userID string) (*domain.Portfolio, error)
	DeletePortfolio(ctx context.Context, portfolioID string, userID string) error
}

// PortfolioSvcFacade combines all portfolio-related service interfaces.
type PortfolioSvcFacade interface {
	PortfolioReaderSvc
	PortfolioWriterSvc
}
