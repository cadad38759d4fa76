package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/utils/queryfilter"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock of portsrepo.Repository for any entity type.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) FindOne(ctx context.Context, spec queryfilter.Spec) (*T, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) List(ctx context.Context, spec queryfilter.Spec) ([]T, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) PaginatedList(ctx context.Context, spec queryfilter.Spec) (portsrepo.Page[T], error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(portsrepo.Page[T]), args.Error(1)
}

func (m *MockRepository[T]) Add(ctx context.Context, entity T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, id string, entity T) error {
	return m.Called(ctx, id, entity).Error(0)
}

func (m *MockRepository[T]) Remove(ctx context.Context, id string, deletedBy string, deletedAt time.Time) error {
	return m.Called(ctx, id, deletedBy, deletedAt).Error(0)
}

// MockGoalRepository adds goal activation to the generic mock.
type MockGoalRepository struct {
	MockRepository[domain.Goal]
}

func (m *MockGoalRepository) ActivateGoal(ctx context.Context, userID string, goalID string, updatedBy string, now time.Time) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID, updatedBy, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindActiveGoal(ctx context.Context, userID string) (*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

// MockPricingProvider is a mock of portssvc.PricingProvider.
type MockPricingProvider struct {
	mock.Mock
}

func (m *MockPricingProvider) GetTokenDetails(ctx context.Context, refID string) (*domain.PriceQuote, error) {
	args := m.Called(ctx, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceQuote), args.Error(1)
}

func (m *MockPricingProvider) GetTokenPrices(ctx context.Context, refIDs []string) (map[string]domain.PriceQuote, error) {
	args := m.Called(ctx, refIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.PriceQuote), args.Error(1)
}

var (
	_ portsrepo.PortfolioRepositoryFacade   = (*MockRepository[domain.Portfolio])(nil)
	_ portsrepo.TransactionRepositoryFacade = (*MockRepository[domain.Transaction])(nil)
	_ portsrepo.HoldingRepositoryFacade     = (*MockRepository[domain.PortfolioHolding])(nil)
	_ portsrepo.AssetRepositoryFacade       = (*MockRepository[domain.Asset])(nil)
	_ portsrepo.GoalRepositoryFacade        = (*MockGoalRepository)(nil)
)

// specHasArg reports whether spec binds value under some parameter.
func specHasArg(spec queryfilter.Spec, value any) bool {
	for _, v := range spec.Args {
		if v == value {
			return true
		}
	}
	return false
}
