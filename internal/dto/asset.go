package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OptionalDecimal distinguishes a missing JSON key (Set is false) from an
// explicit null (Set is true, Value is nil).
type OptionalDecimal struct {
	Set   bool
	Value *decimal.Decimal
}

func (o *OptionalDecimal) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

type CreateAssetRequest struct {
	Name         string           `json:"name" binding:"required,max=100"`
	Kind         domain.AssetKind `json:"kind" binding:"required,oneof=BANK_ACCOUNT CASH CRYPTO STOCKS REAL_ESTATE OTHER"`
	CurrentValue decimal.Decimal  `json:"currentValue"`
	Location     *string          `json:"location" binding:"omitempty,max=200"`
	Description  *string          `json:"description" binding:"omitempty,max=500"`
	TargetValue  *decimal.Decimal `json:"targetValue"`
}

func (r CreateAssetRequest) ToInput() domain.AssetInput {
	return domain.AssetInput{
		Name:         r.Name,
		Kind:         r.Kind,
		CurrentValue: r.CurrentValue,
		Location:     r.Location,
		Description:  r.Description,
		TargetValue:  r.TargetValue,
	}
}

// UpdateAssetRequest patches an asset. TargetValue omitted keeps the target,
// null clears it and a number sets it.
type UpdateAssetRequest struct {
	Name         *string           `json:"name" binding:"omitempty,max=100"`
	Kind         *domain.AssetKind `json:"kind" binding:"omitempty,oneof=BANK_ACCOUNT CASH CRYPTO STOCKS REAL_ESTATE OTHER"`
	CurrentValue *decimal.Decimal  `json:"currentValue"`
	Location     *string           `json:"location" binding:"omitempty,max=200"`
	Description  *string           `json:"description" binding:"omitempty,max=500"`
	TargetValue  OptionalDecimal   `json:"targetValue"`
}

func (r UpdateAssetRequest) ToPatch() domain.AssetPatch {
	patch := domain.AssetPatch{
		Name:         r.Name,
		Kind:         r.Kind,
		CurrentValue: r.CurrentValue,
		Location:     r.Location,
		Description:  r.Description,
	}
	switch {
	case !r.TargetValue.Set:
		patch.Target = domain.KeepTarget()
	case r.TargetValue.Value == nil:
		patch.Target = domain.ClearTarget()
	default:
		patch.Target = domain.SetTarget(*r.TargetValue.Value)
	}
	return patch
}

type AssetTargetResponse struct {
	TargetID      string          `json:"targetID"`
	TargetValue   decimal.Decimal `json:"targetValue"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

type AssetResponse struct {
	AssetID       string               `json:"assetID"`
	Name          string               `json:"name"`
	Kind          domain.AssetKind     `json:"kind"`
	CurrentValue  decimal.Decimal      `json:"currentValue"`
	Location      *string              `json:"location,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Target        *AssetTargetResponse `json:"target,omitempty"`
	Progress      *decimal.Decimal     `json:"progress,omitempty"`
	Status        domain.AssetStatus   `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

func ToAssetResponse(a domain.Asset) AssetResponse {
	resp := AssetResponse{
		AssetID:       a.AssetID,
		Name:          a.Name,
		Kind:          a.Kind,
		CurrentValue:  a.CurrentValue,
		Location:      a.Location,
		Description:   a.Description,
		Progress:      a.Progress(),
		Status:        a.Status(),
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
	if a.Target != nil {
		resp.Target = &AssetTargetResponse{
			TargetID:      a.Target.TargetID,
			TargetValue:   a.Target.TargetValue,
			LastUpdatedAt: a.Target.LastUpdatedAt,
		}
	}
	return resp
}
