package domain

import (
	"time"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
// Records are never removed physically; deletion only sets DeletedAt/DeletedBy.
type AuditFields struct {
	CreatedAt     time.Time  `json:"createdAt"`
	CreatedBy     string     `json:"createdBy"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy string     `json:"lastUpdatedBy"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
	DeletedBy     *string    `json:"deletedBy,omitempty"`
}

// IsActive reports whether the record has not been soft-deleted.
func (a AuditFields) IsActive() bool {
	return a.DeletedAt == nil
}

func newAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

func (a AuditFields) touched(userID string, now time.Time) AuditFields {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
	return a
}

func (a AuditFields) deleted(userID string, now time.Time) AuditFields {
	a.DeletedAt = &now
	a.DeletedBy = &userID
	return a
}

// fieldErrors collects validation failures so a factory can report all of them at once.
type fieldErrors []apperrors.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, apperrors.FieldError{Field: field, Message: message})
}

// err returns nil when nothing was collected.
func (f fieldErrors) err(operation string) error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError(operation, f...)
}

func clamp01(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return d
}

func decimalChanged(next *decimal.Decimal, prev decimal.Decimal) bool {
	return next != nil && !next.Equal(prev)
}

func optionalDecimalChanged(next, prev *decimal.Decimal) bool {
	if next == nil {
		return false
	}
	return prev == nil || !next.Equal(*prev)
}
