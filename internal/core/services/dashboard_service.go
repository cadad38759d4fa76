package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/utils/queryfilter"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	assetRepo     portsrepo.Reader[domain.Asset]
	portfolioRepo portsrepo.Reader[domain.Portfolio]
	goalRepo      portsrepo.GoalActivator
}

func NewDashboardService(assetRepo portsrepo.Reader[domain.Asset], portfolioRepo portsrepo.Reader[domain.Portfolio], goalRepo portsrepo.GoalActivator) portssvc.DashboardSvc {
	return &dashboardService{
		assetRepo:     assetRepo,
		portfolioRepo: portfolioRepo,
		goalRepo:      goalRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetSummary aggregates every live asset of the user. A missing active goal
// is not an error. The three reads are independent and run concurrently.
func (s *dashboardService) GetSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	var (
		assets     []domain.Asset
		portfolios []domain.Portfolio
		goal       *domain.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = s.assetRepo.List(gctx, queryfilter.New("a", nil).Equal("user_id", userID).Build())
		if err != nil {
			s.LogError(ctx, err, "Failed to list assets for dashboard", slog.String("user_id", userID))
			return fmt.Errorf("failed to list assets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		portfolios, err = s.portfolioRepo.List(gctx, queryfilter.New("p", nil).Equal("user_id", userID).Build())
		if err != nil {
			s.LogError(ctx, err, "Failed to list portfolios for dashboard", slog.String("user_id", userID))
			return fmt.Errorf("failed to list portfolios: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		active, err := s.goalRepo.FindActiveGoal(gctx, userID)
		switch {
		case err == nil:
			goal = active
		case errors.Is(err, apperrors.ErrNotFound):
		default:
			s.LogError(ctx, err, "Failed to load active goal", slog.String("user_id", userID))
			return fmt.Errorf("failed to load active goal: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := domain.SummarizeAssets(assets).WithGoal(goal)
	summary.PortfolioCount = len(portfolios)

	s.LogDebug(ctx, "Dashboard summary built",
		slog.Int("asset_count", summary.AssetCount),
		slog.String("total_value", summary.TotalAssetValue.String()))
	return &summary, nil
}
