package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/SscSPs/asset_tracker/internal/utils/queryfilter"
)

type holdingService struct {
	BaseService
	holdingRepo   portsrepo.HoldingRepositoryFacade
	portfolioRepo portsrepo.Reader[domain.Portfolio]
	pricing       portssvc.PricingProvider
}

// HoldingServiceOption is a functional option for configuring the holding service
type HoldingServiceOption func(*holdingService)

// WithPricingProvider enables market data enrichment.
func WithPricingProvider(provider portssvc.PricingProvider) HoldingServiceOption {
	return func(s *holdingService) {
		s.pricing = provider
	}
}

// NewHoldingService creates a new holding service with the provided options
func NewHoldingService(repo portsrepo.HoldingRepositoryFacade, portfolioRepo portsrepo.Reader[domain.Portfolio], options ...HoldingServiceOption) portssvc.HoldingSvcFacade {
	svc := &holdingService{
		holdingRepo:   repo,
		portfolioRepo: portfolioRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.HoldingSvcFacade = (*holdingService)(nil)

func (s *holdingService) AddHolding(ctx context.Context, portfolioID string, req dto.CreateHoldingRequest, userID string) (*domain.PortfolioHolding, error) {
	if _, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID); err != nil {
		return nil, err
	}

	holding, err := domain.NewPortfolioHolding(req.ToInput(portfolioID), userID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSymbolFree(ctx, portfolioID, holding.TokenSymbol, ""); err != nil {
		return nil, err
	}

	// The unique index still catches a concurrent insert of the same symbol.
	if err := s.holdingRepo.Add(ctx, holding); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to save holding",
			slog.String("portfolio_id", portfolioID),
			slog.String("token_symbol", holding.TokenSymbol))
		return nil, fmt.Errorf("failed to add holding: %w", err)
	}

	s.LogInfo(ctx, "Holding added",
		slog.String("holding_id", holding.HoldingID),
		slog.String("portfolio_id", portfolioID),
		slog.String("token_symbol", holding.TokenSymbol))
	return &holding, nil
}

// ensureSymbolFree returns ErrDuplicate when another live holding of the
// portfolio already uses symbol. exceptID skips the holding being updated.
func (s *holdingService) ensureSymbolFree(ctx context.Context, portfolioID, symbol, exceptID string) error {
	b := queryfilter.New("h", nil).
		Equal("portfolio_id", portfolioID).
		Equal("token_symbol", symbol)
	if exceptID != "" {
		b.NotEqual("holding_id", exceptID)
	}

	_, err := s.holdingRepo.FindOne(ctx, b.Build())
	switch {
	case err == nil:
		return fmt.Errorf("token %s is already tracked in this portfolio: %w", symbol, apperrors.ErrDuplicate)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check holding uniqueness", slog.String("portfolio_id", portfolioID))
		return fmt.Errorf("failed to check holding uniqueness: %w", err)
	}
}

func (s *holdingService) GetHolding(ctx context.Context, portfolioID string, holdingID string, userID string) (*domain.PortfolioHolding, error) {
	if _, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID); err != nil {
		return nil, err
	}
	holding, err := s.holdingRepo.FindByID(ctx, holdingID)
	if err != nil {
		s.logIfUnexpected(ctx, err, "Failed to find holding", slog.String("holding_id", holdingID))
		return nil, fmt.Errorf("holding %s: %w", holdingID, err)
	}
	if holding.PortfolioID != portfolioID {
		return nil, fmt.Errorf("holding %s: %w", holdingID, apperrors.ErrNotFound)
	}
	return holding, nil
}

func (s *holdingService) ListHoldings(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.PortfolioHolding], error) {
	if _, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID); err != nil {
		return portsrepo.Page[domain.PortfolioHolding]{}, err
	}
	params, err := holdingListSchema.Parse(query)
	if err != nil {
		return portsrepo.Page[domain.PortfolioHolding]{}, err
	}
	spec := holdingListSchema.Builder(params).Equal("portfolio_id", portfolioID).Build()

	page, err := s.holdingRepo.PaginatedList(ctx, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to list holdings", slog.String("portfolio_id", portfolioID))
		return portsrepo.Page[domain.PortfolioHolding]{}, fmt.Errorf("failed to list holdings: %w", err)
	}
	return page, nil
}

func (s *holdingService) ListHoldingsWithPrices(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.EnrichedHolding], error) {
	page, err := s.ListHoldings(ctx, portfolioID, userID, query)
	if err != nil {
		return portsrepo.Page[domain.EnrichedHolding]{}, err
	}

	enriched := portsrepo.Page[domain.EnrichedHolding]{
		Items:    make([]domain.EnrichedHolding, len(page.Items)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for i, h := range page.Items {
		enriched.Items[i] = domain.EnrichedHolding{PortfolioHolding: h}
	}

	quotes := s.fetchQuotes(ctx, page.Items)
	for i := range enriched.Items {
		if q, ok := quotes[enriched.Items[i].TokenIdentifier()]; ok {
			enriched.Items[i].Quote = &q
		}
	}
	return enriched, nil
}

// fetchQuotes never fails: missing prices only mean the holdings stay un-enriched.
func (s *holdingService) fetchQuotes(ctx context.Context, holdings []domain.PortfolioHolding) map[string]domain.PriceQuote {
	if s.pricing == nil || len(holdings) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(holdings))
	ids := make([]string, 0, len(holdings))
	for _, h := range holdings {
		id := h.TokenIdentifier()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	quotes, err := s.pricing.GetTokenPrices(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Pricing provider unavailable, returning holdings without prices",
			slog.Int("token_count", len(ids)))
		return nil
	}
	if missing := len(ids) - len(quotes); missing > 0 {
		s.LogDebug(ctx, "Some tokens have no market data", slog.Int("missing", missing))
	}
	return quotes
}

func (s *holdingService) UpdateHolding(ctx context.Context, portfolioID string, holdingID string, req dto.UpdateHoldingRequest, userID string) (*domain.PortfolioHolding, error) {
	existing, err := s.GetHolding(ctx, portfolioID, holdingID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := domain.UpdatePortfolioHolding(*existing, req.ToPatch(), userID)
	if err != nil {
		return nil, err
	}
	if updated.TokenSymbol != existing.TokenSymbol {
		if err := s.ensureSymbolFree(ctx, portfolioID, updated.TokenSymbol, holdingID); err != nil {
			return nil, err
		}
	}
	if err := s.holdingRepo.Update(ctx, holdingID, updated); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to update holding", slog.String("holding_id", holdingID))
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}

	s.LogInfo(ctx, "Holding updated", slog.String("holding_id", holdingID))
	return &updated, nil
}

func (s *holdingService) RemoveHolding(ctx context.Context, portfolioID string, holdingID string, userID string) error {
	existing, err := s.GetHolding(ctx, portfolioID, holdingID, userID)
	if err != nil {
		return err
	}

	deleted := domain.MarkHoldingDeleted(*existing, userID)
	if err := s.holdingRepo.Remove(ctx, holdingID, userID, *deleted.DeletedAt); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to remove holding", slog.String("holding_id", holdingID))
		return fmt.Errorf("failed to remove holding: %w", err)
	}

	s.LogInfo(ctx, "Holding removed", slog.String("holding_id", holdingID))
	return nil
}
