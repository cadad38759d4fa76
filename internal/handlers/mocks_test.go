package handlers_test

import (
	"context"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock PortfolioService ---
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) GetPortfolio(ctx context.Context, portfolioID string, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, portfolioID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}
func (m *MockPortfolioService) ListPortfolios(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Portfolio], error) {
	args := m.Called(ctx, userID, query)
	return args.Get(0).(portsrepo.Page[domain.Portfolio]), args.Error(1)
}
func (m *MockPortfolioService) CreatePortfolio(ctx context.Context, req dto.CreatePortfolioRequest, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}
func (m *MockPortfolioService) UpdatePortfolio(ctx context.Context, portfolioID string, req dto.UpdatePortfolioRequest, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, portfolioID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}
func (m *MockPortfolioService) DeletePortfolio(ctx context.Context, portfolioID string, userID string) error {
	return m.Called(ctx, portfolioID, userID).Error(0)
}

var _ portssvc.PortfolioSvcFacade = (*MockPortfolioService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, portfolioID string, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, portfolioID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.Transaction], error) {
	args := m.Called(ctx, portfolioID, userID, query)
	return args.Get(0).(portsrepo.Page[domain.Transaction]), args.Error(1)
}
func (m *MockTransactionService) RecordTransaction(ctx context.Context, portfolioID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, portfolioID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, portfolioID string, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, portfolioID, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, portfolioID string, transactionID string, userID string) error {
	return m.Called(ctx, portfolioID, transactionID, userID).Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock HoldingService ---
type MockHoldingService struct {
	mock.Mock
}

func (m *MockHoldingService) GetHolding(ctx context.Context, portfolioID string, holdingID string, userID string) (*domain.PortfolioHolding, error) {
	args := m.Called(ctx, portfolioID, holdingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioHolding), args.Error(1)
}
func (m *MockHoldingService) ListHoldings(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.PortfolioHolding], error) {
	args := m.Called(ctx, portfolioID, userID, query)
	return args.Get(0).(portsrepo.Page[domain.PortfolioHolding]), args.Error(1)
}
func (m *MockHoldingService) ListHoldingsWithPrices(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.EnrichedHolding], error) {
	args := m.Called(ctx, portfolioID, userID, query)
	return args.Get(0).(portsrepo.Page[domain.EnrichedHolding]), args.Error(1)
}
func (m *MockHoldingService) AddHolding(ctx context.Context, portfolioID string, req dto.CreateHoldingRequest, userID string) (*domain.PortfolioHolding, error) {
	args := m.Called(ctx, portfolioID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioHolding), args.Error(1)
}
func (m *MockHoldingService) UpdateHolding(ctx context.Context, portfolioID string, holdingID string, req dto.UpdateHoldingRequest, userID string) (*domain.PortfolioHolding, error) {
	args := m.Called(ctx, portfolioID, holdingID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioHolding), args.Error(1)
}
func (m *MockHoldingService) RemoveHolding(ctx context.Context, portfolioID string, holdingID string, userID string) error {
	return m.Called(ctx, portfolioID, holdingID, userID).Error(0)
}

var _ portssvc.HoldingSvcFacade = (*MockHoldingService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) GetGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}
func (m *MockGoalService) ListGoals(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Goal], error) {
	args := m.Called(ctx, userID, query)
	return args.Get(0).(portsrepo.Page[domain.Goal]), args.Error(1)
}
func (m *MockGoalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}
func (m *MockGoalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}
func (m *MockGoalService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	return m.Called(ctx, goalID, userID).Error(0)
}
func (m *MockGoalService) ActivateGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)
