package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger transactions.
// Every call first checks that userID owns the portfolio.
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, portfolioID string, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactions is always scoped to portfolioID.
	ListTransactions(ctx context.Context, portfolioID string, userID string, query url.Values) (portsrepo.Page[domain.Transaction], error)
}

// TransactionWriterSvc defines write operations for ledger transactions.
type TransactionWriterSvc interface {
	RecordTransaction(ctx context.Context, portfolioID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, portfolioID string, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, portfolioID string, transactionID string, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
