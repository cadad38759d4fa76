package mapping

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/SscSPs/asset_tracker/internal/models"
)

// ToModelGoal converts a domain Goal to a model Goal
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:      d.GoalID,
		UserID:      d.UserID,
		Name:        d.Name,
		TargetValue: d.TargetValue,
		Deadline:    d.Deadline,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a model Goal to a domain Goal
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:      m.GoalID,
		UserID:      m.UserID,
		Name:        m.Name,
		TargetValue: m.TargetValue,
		Deadline:    m.Deadline,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	return toDomainSlice(ms, ToDomainGoal)
}
