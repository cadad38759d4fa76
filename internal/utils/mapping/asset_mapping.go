package mapping

import (
	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/SscSPs/asset_tracker/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset. The target is mapped
// separately with ToModelAssetTarget.
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:      d.AssetID,
		UserID:       d.UserID,
		Name:         d.Name,
		Kind:         string(d.Kind),
		CurrentValue: d.CurrentValue,
		Location:     d.Location,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToModelAssetTarget(d domain.AssetTarget) models.AssetTarget {
	return models.AssetTarget{
		TargetID:    d.TargetID,
		AssetID:     d.AssetID,
		TargetValue: d.TargetValue,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts an asset row joined with its target. A NULL
// target_id means the asset has no live target.
func ToDomainAsset(m models.AssetWithTarget) domain.Asset {
	asset := domain.Asset{
		AssetID:      m.AssetID,
		UserID:       m.UserID,
		Name:         m.Name,
		Kind:         domain.AssetKind(m.Kind),
		CurrentValue: m.CurrentValue,
		Location:     m.Location,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.TargetID == nil || m.TargetValue == nil {
		return asset
	}

	target := domain.AssetTarget{
		TargetID:    *m.TargetID,
		AssetID:     m.AssetID,
		TargetValue: *m.TargetValue,
	}
	if m.TargetCreatedAt != nil {
		target.CreatedAt = *m.TargetCreatedAt
	}
	if m.TargetCreatedBy != nil {
		target.CreatedBy = *m.TargetCreatedBy
	}
	if m.TargetLastUpdatedAt != nil {
		target.LastUpdatedAt = *m.TargetLastUpdatedAt
	}
	if m.TargetLastUpdatedBy != nil {
		target.LastUpdatedBy = *m.TargetLastUpdatedBy
	}
	asset.Target = &target
	return asset
}

func ToDomainAssetSlice(ms []models.AssetWithTarget) []domain.Asset {
	return toDomainSlice(ms, ToDomainAsset)
}
