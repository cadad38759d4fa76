package mapping

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/SscSPs/asset_tracker/internal/models"
)

// ToModelHolding converts a domain PortfolioHolding to a model PortfolioHolding
func ToModelHolding(d domain.PortfolioHolding) models.PortfolioHolding {
	return models.PortfolioHolding{
		HoldingID:     d.HoldingID,
		PortfolioID:   d.PortfolioID,
		TokenSymbol:   d.TokenSymbol,
		TokenName:     d.TokenName,
		Decimals:      d.Decimals,
		LogoURL:       d.LogoURL,
		IsStablecoin:  d.IsStablecoin,
		StablecoinPeg: d.StablecoinPeg,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHolding converts a model PortfolioHolding to a domain PortfolioHolding
func ToDomainHolding(m models.PortfolioHolding) domain.PortfolioHolding {
	return domain.PortfolioHolding{
		HoldingID:     m.HoldingID,
		PortfolioID:   m.PortfolioID,
		TokenSymbol:   m.TokenSymbol,
		TokenName:     m.TokenName,
		Decimals:      m.Decimals,
		LogoURL:       m.LogoURL,
		IsStablecoin:  m.IsStablecoin,
		StablecoinPeg: m.StablecoinPeg,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainHoldingSlice(ms []models.PortfolioHolding) []domain.PortfolioHolding {
	return toDomainSlice(ms, ToDomainHolding)
}
