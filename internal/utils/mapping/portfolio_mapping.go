package mapping

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/SscSPs/asset_tracker/internal/models"
)

// ToModelPortfolio converts a domain Portfolio to a model Portfolio
func ToModelPortfolio(d domain.Portfolio) models.Portfolio {
	return models.Portfolio{
		PortfolioID: d.PortfolioID,
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPortfolio converts a model Portfolio to a domain Portfolio
func ToDomainPortfolio(m models.Portfolio) domain.Portfolio {
	return domain.Portfolio{
		PortfolioID: m.PortfolioID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPortfolioSlice(ms []models.Portfolio) []domain.Portfolio {
	return toDomainSlice(ms, ToDomainPortfolio)
}
