package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxPortfolioNameLength = 100

// Portfolio groups a user's holdings and ledger transactions.
type Portfolio struct {
	PortfolioID string  `json:"portfolioID"`
	UserID      string  `json:"userID"` // Owner
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	AuditFields
}

// PortfolioPatch lists the fields an update may change; nil means unchanged.
type PortfolioPatch struct {
	Name        *string
	Description *string
}

func NewPortfolio(userID, name string, description *string, createdBy string) (Portfolio, error) {
	var errs fieldErrors
	if userID == "" {
		errs.add("userID", "owner is required")
	}
	validatePortfolioName(name, &errs)
	validateOptionalText("description", description, maxDescriptionLength, &errs)
	if err := errs.err("failed to create portfolio"); err != nil {
		return Portfolio{}, err
	}
	return Portfolio{
		PortfolioID: uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Description: description,
		AuditFields: newAuditFields(createdBy, time.Now()),
	}, nil
}

func UpdatePortfolio(existing Portfolio, patch PortfolioPatch, updatedBy string) (Portfolio, error) {
	var errs fieldErrors
	if patch.Name == nil && patch.Description == nil {
		errs.add("patch", "at least one field must be provided")
		return Portfolio{}, errs.err("failed to update portfolio")
	}
	next := existing
	if patch.Name != nil {
		validatePortfolioName(*patch.Name, &errs)
		next.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		validateOptionalText("description", patch.Description, maxDescriptionLength, &errs)
		next.Description = patch.Description
	}
	if err := errs.err("failed to update portfolio"); err != nil {
		return Portfolio{}, err
	}
	next.AuditFields = existing.AuditFields.touched(updatedBy, time.Now())
	return next, nil
}

func MarkPortfolioDeleted(existing Portfolio, deletedBy string) Portfolio {
	next := existing
	next.AuditFields = existing.AuditFields.deleted(deletedBy, time.Now())
	return next
}

func validatePortfolioName(name string, errs *fieldErrors) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs.add("name", "is required")
	} else if len(name) > maxPortfolioNameLength {
		errs.add("name", "must be at most 100 characters")
	}
}
