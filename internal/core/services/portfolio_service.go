package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

type portfolioService struct {
	BaseService
	portfolioRepo portsrepo.PortfolioRepositoryFacade
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(repo portsrepo.PortfolioRepositoryFacade) portssvc.PortfolioSvcFacade {
	return &portfolioService{portfolioRepo: repo}
}

var _ portssvc.PortfolioSvcFacade = (*portfolioService)(nil)

func (s *portfolioService) CreatePortfolio(ctx context.Context, req dto.CreatePortfolioRequest, userID string) (*domain.Portfolio, error) {
	portfolio, err := domain.NewPortfolio(userID, req.Name, req.Description, userID)
	if err != nil {
		s.LogDebug(ctx, "Rejected portfolio input", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.portfolioRepo.Add(ctx, portfolio); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to save portfolio", slog.String("portfolio_id", portfolio.PortfolioID))
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	s.LogInfo(ctx, "Portfolio created successfully",
		slog.String("portfolio_id", portfolio.PortfolioID),
		slog.String("user_id", userID))
	return &portfolio, nil
}

func (s *portfolioService) GetPortfolio(ctx context.Context, portfolioID string, userID string) (*domain.Portfolio, error) {
	return s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID)
}

func (s *portfolioService) ListPortfolios(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Portfolio], error) {
	params, err := portfolioListSchema.Parse(query)
	if err != nil {
		return portsrepo.Page[domain.Portfolio]{}, err
	}
	spec := portfolioListSchema.Builder(params).Equal("user_id", userID).Build()

	page, err := s.portfolioRepo.PaginatedList(ctx, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to list portfolios", slog.String("user_id", userID))
		return portsrepo.Page[domain.Portfolio]{}, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return page, nil
}

func (s *portfolioService) UpdatePortfolio(ctx context.Context, portfolioID string, req dto.UpdatePortfolioRequest, userID string) (*domain.Portfolio, error) {
	existing, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := domain.UpdatePortfolio(*existing, req.ToPatch(), userID)
	if err != nil {
		return nil, err
	}
	if err := s.portfolioRepo.Update(ctx, portfolioID, updated); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to update portfolio", slog.String("portfolio_id", portfolioID))
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}

	s.LogInfo(ctx, "Portfolio updated successfully", slog.String("portfolio_id", portfolioID))
	return &updated, nil
}

func (s *portfolioService) DeletePortfolio(ctx context.Context, portfolioID string, userID string) error {
	existing, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID)
	if err != nil {
		return err
	}

	deleted := domain.MarkPortfolioDeleted(*existing, userID)
	if err := s.portfolioRepo.Remove(ctx, portfolioID, userID, *deleted.DeletedAt); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to delete portfolio", slog.String("portfolio_id", portfolioID))
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	s.LogInfo(ctx, "Portfolio deleted", slog.String("portfolio_id", portfolioID))
	return nil
}
