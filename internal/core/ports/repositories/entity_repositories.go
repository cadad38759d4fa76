package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
)

// PortfolioRepositoryFacade persists portfolios.
type PortfolioRepositoryFacade interface {
	Repository[domain.Portfolio]
}

// TransactionRepositoryFacade persists ledger transactions.
type TransactionRepositoryFacade interface {
	Repository[domain.Transaction]
}

// HoldingRepositoryFacade persists portfolio holdings. A live symbol is unique
// within its portfolio; the store reports a clash as apperrors.ErrDuplicate.
type HoldingRepositoryFacade interface {
	Repository[domain.PortfolioHolding]
}

// AssetRepositoryFacade persists assets together with their optional target.
// Add and Update write the asset and its target atomically.
type AssetRepositoryFacade interface {
	Repository[domain.Asset]
}

// GoalActivator switches which goal is active for a user.
type GoalActivator interface {
	// ActivateGoal deactivates every other goal of userID and activates goalID
	// in one storage transaction.
	ActivateGoal(ctx context.Context, userID string, goalID string, updatedBy string, now time.Time) (*domain.Goal, error)

	// FindActiveGoal returns the user's active goal or apperrors.ErrNotFound.
	FindActiveGoal(ctx context.Context, userID string) (*domain.Goal, error)
}

// GoalRepositoryFacade persists goals.
type GoalRepositoryFacade interface {
	Repository[domain.Goal]
	GoalActivator
}
