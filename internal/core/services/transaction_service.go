package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	portfolioRepo   portsrepo.Reader[domain.Portfolio]
}

// NewTransactionService creates the ledger service. Every operation is checked
// against the owner of the enclosing portfolio.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, portfolioRepo portsrepo.Reader[domain.Portfolio]) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: repo,
		portfolioRepo:   portfolioRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) RecordTransaction(ctx context.Context, portfolioID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID); err != nil {
		return nil, err
	}

	txn, err := domain.NewTransaction(portfolioID, req.ToInput(), userID, req.PortfolioValueBefore)
	if err != nil {
		s.LogDebug(ctx, "Rejected transaction input",
			slog.String("portfolio_id", portfolioID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.transactionRepo.Add(ctx, txn); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("portfolio_id", portfolioID))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("portfolio_id", portfolioID),
		slog.String("type", string(txn.Type)),
		slog.String("cash_flow", txn.CashFlow.String()))
	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, portfolioID string, transactionID string, userID string) (*domain.Transaction, error) {
	if _, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID); err != nil {
		return nil, err
	}
	return s.findInPortfolio(ctx, portfolioID, transactionID)
}

// findInPortfolio hides transactions of other portfolios behind ErrNotFound.
func (s *transactionService) findInPortfolio(ctx context.Context, portfolioID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		s.logIfUnexpected(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("transaction %s: %w", transactionID, err)
	}
	if txn.PortfolioID != portfolioID {
		s.LogDebug(ctx, "Transaction belongs to a different portfolio",
			slog.String("transaction_id", transactionID),
			slog.String("requested_portfolio", portfolioID))
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.Transaction], error) {
	if _, err := s.ownedPortfolio(ctx, s.portfolioRepo, portfolioID, userID); err != nil {
		return portsrepo.Page[domain.Transaction]{}, err
	}
	params, err := transactionListSchema.Parse(query)
	if err != nil {
		return portsrepo.Page[domain.Transaction]{}, err
	}
	spec := transactionListSchema.Builder(params).Equal("portfolio_id", portfolioID).Build()

	page, err := s.transactionRepo.PaginatedList(ctx, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("portfolio_id", portfolioID))
		return portsrepo.Page[domain.Transaction]{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return page, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, portfolioID string, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	existing, err := s.GetTransaction(ctx, portfolioID, transactionID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := domain.UpdateTransaction(*existing, req.ToPatch(), userID)
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Update(ctx, transactionID, updated); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, portfolioID string, transactionID string, userID string) error {
	existing, err := s.GetTransaction(ctx, portfolioID, transactionID, userID)
	if err != nil {
		return err
	}

	deleted := domain.MarkTransactionDeleted(*existing, userID)
	if err := s.transactionRepo.Remove(ctx, transactionID, userID, *deleted.DeletedAt); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
