package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/core/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type holdingFixture struct {
	ctx           context.Context
	holdingRepo   *MockRepository[domain.PortfolioHolding]
	portfolioRepo *MockRepository[domain.Portfolio]
	pricing       *MockPricingProvider
	userID        string
	portfolioID   string
}

func newHoldingFixture() *holdingFixture {
	f := &holdingFixture{
		ctx:           context.Background(),
		holdingRepo:   new(MockRepository[domain.PortfolioHolding]),
		portfolioRepo: new(MockRepository[domain.Portfolio]),
		pricing:       new(MockPricingProvider),
		userID:        uuid.NewString(),
		portfolioID:   uuid.NewString(),
	}
	f.portfolioRepo.On("FindByID", f.ctx, f.portfolioID).
		Return(&domain.Portfolio{PortfolioID: f.portfolioID, UserID: f.userID, Name: "Main"}, nil)
	return f
}

func TestAddHolding_DuplicateSymbolIsRejected(t *testing.T) {
	f := newHoldingFixture()
	svc := services.NewHoldingService(f.holdingRepo, f.portfolioRepo)
	f.holdingRepo.On("FindOne", f.ctx, mock.Anything).
		Return(&domain.PortfolioHolding{HoldingID: "h-0", PortfolioID: f.portfolioID, TokenSymbol: "BTC"}, nil).Once()

	_, err := svc.AddHolding(f.ctx, f.portfolioID, dto.CreateHoldingRequest{TokenSymbol: "btc", TokenName: "Bitcoin", Decimals: 8}, f.userID)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	f.holdingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddHolding_Success(t *testing.T) {
	f := newHoldingFixture()
	svc := services.NewHoldingService(f.holdingRepo, f.portfolioRepo)
	f.holdingRepo.On("FindOne", f.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	f.holdingRepo.On("Add", f.ctx, mock.MatchedBy(func(h domain.PortfolioHolding) bool {
		return h.TokenSymbol == "BTC" && h.PortfolioID == f.portfolioID
	})).Return(nil).Once()

	holding, err := svc.AddHolding(f.ctx, f.portfolioID, dto.CreateHoldingRequest{TokenSymbol: "btc", TokenName: "Bitcoin", Decimals: 8}, f.userID)

	require.NoError(t, err)
	assert.Equal(t, "btc", holding.TokenIdentifier())
	f.holdingRepo.AssertExpectations(t)
}

func TestGetHolding_FromAnotherPortfolioIsNotFound(t *testing.T) {
	f := newHoldingFixture()
	svc := services.NewHoldingService(f.holdingRepo, f.portfolioRepo)
	f.holdingRepo.On("FindByID", f.ctx, "h-1").
		Return(&domain.PortfolioHolding{HoldingID: "h-1", PortfolioID: "elsewhere"}, nil).Once()

	_, err := svc.GetHolding(f.ctx, f.portfolioID, "h-1", f.userID)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func (f *holdingFixture) page() portsrepo.Page[domain.PortfolioHolding] {
	return portsrepo.Page[domain.PortfolioHolding]{
		Items: []domain.PortfolioHolding{
			{HoldingID: "h-1", PortfolioID: f.portfolioID, TokenSymbol: "BTC"},
			{HoldingID: "h-2", PortfolioID: f.portfolioID, TokenSymbol: "OBSCURE"},
		},
		Total: 2, Page: 1, PageSize: 20,
	}
}

func TestListHoldingsWithPrices_AttachesKnownQuotes(t *testing.T) {
	f := newHoldingFixture()
	svc := services.NewHoldingService(f.holdingRepo, f.portfolioRepo, services.WithPricingProvider(f.pricing))
	f.holdingRepo.On("PaginatedList", f.ctx, mock.Anything).Return(f.page(), nil).Once()
	f.pricing.On("GetTokenPrices", f.ctx, []string{"btc", "obscure"}).
		Return(map[string]domain.PriceQuote{"btc": {RefID: "btc", Currency: "usd", Price: decimal.NewFromInt(60000)}}, nil).Once()

	page, err := svc.ListHoldingsWithPrices(f.ctx, f.portfolioID, f.userID, nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.Items[0].Quote)
	assert.True(t, page.Items[0].Quote.Price.Equal(decimal.NewFromInt(60000)))
	assert.Nil(t, page.Items[1].Quote)
	assert.Equal(t, 2, page.Total)
}

func TestListHoldingsWithPrices_ProviderFailureDegrades(t *testing.T) {
	f := newHoldingFixture()
	svc := services.NewHoldingService(f.holdingRepo, f.portfolioRepo, services.WithPricingProvider(f.pricing))
	f.holdingRepo.On("PaginatedList", f.ctx, mock.Anything).Return(f.page(), nil).Once()
	f.pricing.On("GetTokenPrices", f.ctx, mock.Anything).Return(nil, errors.New("upstream timeout")).Once()

	page, err := svc.ListHoldingsWithPrices(f.ctx, f.portfolioID, f.userID, nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	for _, h := range page.Items {
		assert.Nil(t, h.Quote)
	}
}

func TestListHoldingsWithPrices_WithoutProviderSkipsPricing(t *testing.T) {
	f := newHoldingFixture()
	svc := services.NewHoldingService(f.holdingRepo, f.portfolioRepo)
	f.holdingRepo.On("PaginatedList", f.ctx, mock.Anything).Return(f.page(), nil).Once()

	page, err := svc.ListHoldingsWithPrices(f.ctx, f.portfolioID, f.userID, nil)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	f.pricing.AssertNotCalled(t, "GetTokenPrices", mock.Anything, mock.Anything)
}
