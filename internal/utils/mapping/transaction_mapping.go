package mapping

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/SscSPs/asset_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		PortfolioID:          d.PortfolioID,
		TokenSymbol:          d.TokenSymbol,
		Type:                 string(d.Type),
		Amount:               d.Amount,
		Price:                d.Price,
		Fees:                 d.Fees,
		CashFlow:             d.CashFlow,
		Timestamp:            d.Timestamp,
		ExternalID:           d.ExternalID,
		Notes:                d.Notes,
		PortfolioValueBefore: d.PortfolioValueBefore,
		PortfolioValueAfter:  d.PortfolioValueAfter,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// The stored cash flow is kept as is; it is only recomputed on update.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		PortfolioID:          m.PortfolioID,
		TokenSymbol:          m.TokenSymbol,
		Type:                 domain.TransactionType(m.Type),
		Amount:               m.Amount,
		Price:                m.Price,
		Fees:                 m.Fees,
		CashFlow:             m.CashFlow,
		Timestamp:            m.Timestamp,
		ExternalID:           m.ExternalID,
		Notes:                m.Notes,
		PortfolioValueBefore: m.PortfolioValueBefore,
		PortfolioValueAfter:  m.PortfolioValueAfter,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return toDomainSlice(ms, ToDomainTransaction)
}
