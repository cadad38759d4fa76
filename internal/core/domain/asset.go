package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetKind categorizes a savings asset.
type AssetKind string

const (
	AssetBankAccount AssetKind = "BANK_ACCOUNT"
	AssetCash        AssetKind = "CASH"
	AssetCrypto      AssetKind = "CRYPTO"
	AssetStocks      AssetKind = "STOCKS"
	AssetRealEstate  AssetKind = "REAL_ESTATE"
	AssetOther       AssetKind = "OTHER"
)

func (k AssetKind) Valid() bool {
	switch k {
	case AssetBankAccount, AssetCash, AssetCrypto, AssetStocks, AssetRealEstate, AssetOther:
		return true
	}
	return false
}

// AssetStatus summarizes where an asset stands relative to its target.
type AssetStatus string

const (
	StatusUndefined  AssetStatus = "UNDEFINED"
	StatusNotStarted AssetStatus = "NOT_STARTED"
	StatusInProgress AssetStatus = "IN_PROGRESS"
	StatusDone       AssetStatus = "DONE"
)

const (
	maxAssetNameLength   = 100
	maxLocationLength    = 200
	maxDescriptionLength = 500
)

// AssetTarget is the savings target owned by exactly one asset.
type AssetTarget struct {
	TargetID    string          `json:"targetID"`
	AssetID     string          `json:"assetID"`
	TargetValue decimal.Decimal `json:"targetValue"`
	AuditFields
}

// Asset is a non-token savings bucket with an optional target.
type Asset struct {
	AssetID      string          `json:"assetID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	Kind         AssetKind       `json:"kind"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Location     *string         `json:"location,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Target       *AssetTarget    `json:"target,omitempty"`
	AuditFields
}

// AssetInput is the raw data accepted when creating an asset.
type AssetInput struct {
	Name         string
	Kind         AssetKind
	CurrentValue decimal.Decimal
	Location     *string
	Description  *string
	TargetValue  *decimal.Decimal
}

type targetOp int

const (
	targetKeep targetOp = iota
	targetClear
	targetSet
)

// TargetChange says what an asset update does to the target: keep it, clear it,
// or set it to a new value. The zero value keeps the target.
type TargetChange struct {
	op    targetOp
	value decimal.Decimal
}

func KeepTarget() TargetChange { return TargetChange{op: targetKeep} }

func ClearTarget() TargetChange { return TargetChange{op: targetClear} }

func SetTarget(value decimal.Decimal) TargetChange {
	return TargetChange{op: targetSet, value: value}
}

// IsKeep reports whether the change leaves the target untouched.
func (c TargetChange) IsKeep() bool { return c.op == targetKeep }

// AssetPatch lists the fields an update may change; nil means unchanged.
type AssetPatch struct {
	Name         *string
	Kind         *AssetKind
	CurrentValue *decimal.Decimal
	Location     *string
	Description  *string
	Target       TargetChange
}

func (p AssetPatch) IsEmpty() bool {
	return p.Name == nil && p.Kind == nil && p.CurrentValue == nil &&
		p.Location == nil && p.Description == nil && p.Target.IsKeep()
}

// NewAssetTarget creates a target for assetID.
func NewAssetTarget(assetID string, targetValue decimal.Decimal, createdBy string) (AssetTarget, error) {
	var errs fieldErrors
	validateTargetValue(targetValue, &errs)
	if err := errs.err("failed to create asset target"); err != nil {
		return AssetTarget{}, err
	}
	return AssetTarget{
		TargetID:    uuid.NewString(),
		AssetID:     assetID,
		TargetValue: targetValue,
		AuditFields: newAuditFields(createdBy, time.Now()),
	}, nil
}

// UpdateAssetTarget changes the value while keeping the target's identity and audit trail.
func UpdateAssetTarget(existing AssetTarget, targetValue decimal.Decimal, updatedBy string) (AssetTarget, error) {
	var errs fieldErrors
	validateTargetValue(targetValue, &errs)
	if err := errs.err("failed to update asset target"); err != nil {
		return AssetTarget{}, err
	}
	next := existing
	next.TargetValue = targetValue
	next.AuditFields = existing.AuditFields.touched(updatedBy, time.Now())
	return next, nil
}

// NewAsset validates in and creates an asset owned by userID.
func NewAsset(userID string, in AssetInput, createdBy string) (Asset, error) {
	var errs fieldErrors
	if userID == "" {
		errs.add("userID", "owner is required")
	}
	validateAssetName(in.Name, &errs)
	validateAssetKind(in.Kind, &errs)
	validateCurrentValue(in.CurrentValue, &errs)
	validateOptionalText("location", in.Location, maxLocationLength, &errs)
	validateOptionalText("description", in.Description, maxDescriptionLength, &errs)
	if in.TargetValue != nil {
		validateTargetValue(*in.TargetValue, &errs)
	}
	if err := errs.err("failed to create asset"); err != nil {
		return Asset{}, err
	}

	now := time.Now()
	asset := Asset{
		AssetID:      uuid.NewString(),
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Kind:         in.Kind,
		CurrentValue: in.CurrentValue,
		Location:     in.Location,
		Description:  in.Description,
		AuditFields:  newAuditFields(createdBy, now),
	}
	if in.TargetValue != nil {
		asset.Target = &AssetTarget{
			TargetID:    uuid.NewString(),
			AssetID:     asset.AssetID,
			TargetValue: *in.TargetValue,
			AuditFields: newAuditFields(createdBy, now),
		}
	}
	return asset, nil
}

// UpdateAsset merges patch onto existing. The target follows patch.Target:
// kept as is, cleared, or updated in place (a new target is created when the
// asset had none).
func UpdateAsset(existing Asset, patch AssetPatch, updatedBy string) (Asset, error) {
	const op = "failed to update asset"
	var errs fieldErrors
	if patch.IsEmpty() {
		errs.add("patch", "at least one field must be provided")
		return Asset{}, errs.err(op)
	}

	next := existing
	if patch.Name != nil {
		validateAssetName(*patch.Name, &errs)
		next.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Kind != nil {
		validateAssetKind(*patch.Kind, &errs)
		next.Kind = *patch.Kind
	}
	if patch.CurrentValue != nil {
		validateCurrentValue(*patch.CurrentValue, &errs)
		next.CurrentValue = *patch.CurrentValue
	}
	if patch.Location != nil {
		validateOptionalText("location", patch.Location, maxLocationLength, &errs)
		next.Location = patch.Location
	}
	if patch.Description != nil {
		validateOptionalText("description", patch.Description, maxDescriptionLength, &errs)
		next.Description = patch.Description
	}
	if patch.Target.op == targetSet {
		validateTargetValue(patch.Target.value, &errs)
	}
	if err := errs.err(op); err != nil {
		return Asset{}, err
	}

	switch patch.Target.op {
	case targetClear:
		next.Target = nil
	case targetSet:
		var target AssetTarget
		var err error
		if existing.Target != nil {
			target, err = UpdateAssetTarget(*existing.Target, patch.Target.value, updatedBy)
		} else {
			target, err = NewAssetTarget(existing.AssetID, patch.Target.value, updatedBy)
		}
		if err != nil {
			return Asset{}, err
		}
		next.Target = &target
	}

	next.AuditFields = existing.AuditFields.touched(updatedBy, time.Now())
	return next, nil
}

// MarkAssetDeleted soft-deletes the asset. The target keeps its own lifecycle.
func MarkAssetDeleted(existing Asset, deletedBy string) Asset {
	next := existing
	next.AuditFields = existing.AuditFields.deleted(deletedBy, time.Now())
	return next
}

// Progress is currentValue/targetValue clamped to [0,1], or nil when the asset
// has no usable target (none, or a zero target value).
func (a Asset) Progress() *decimal.Decimal {
	if a.Target == nil || a.Target.TargetValue.IsZero() {
		return nil
	}
	p := clamp01(a.CurrentValue.Div(a.Target.TargetValue))
	return &p
}

func (a Asset) Status() AssetStatus {
	if a.Target == nil {
		return StatusUndefined
	}
	if a.Target.TargetValue.IsZero() {
		return StatusNotStarted
	}
	if p := a.Progress(); p != nil && p.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return StatusDone
	}
	return StatusInProgress
}

// ProgressItem exposes the values OverallProgress needs.
func (a Asset) ProgressItem() ProgressItem {
	item := ProgressItem{CurrentValue: a.CurrentValue}
	if a.Target != nil {
		v := a.Target.TargetValue
		item.TargetValue = &v
	}
	return item
}

func validateAssetName(name string, errs *fieldErrors) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs.add("name", "is required")
	} else if len(name) > maxAssetNameLength {
		errs.add("name", "must be at most 100 characters")
	}
}

func validateAssetKind(kind AssetKind, errs *fieldErrors) {
	if !kind.Valid() {
		errs.add("kind", "must be one of BANK_ACCOUNT, CASH, CRYPTO, STOCKS, REAL_ESTATE, OTHER")
	}
}

func validateCurrentValue(v decimal.Decimal, errs *fieldErrors) {
	if v.IsNegative() {
		errs.add("currentValue", "must not be negative")
	}
}

func validateTargetValue(v decimal.Decimal, errs *fieldErrors) {
	if v.IsNegative() {
		errs.add("targetValue", "must not be negative")
	}
}

func validateOptionalText(field string, v *string, max int, errs *fieldErrors) {
	if v != nil && len(*v) > max {
		errs.add(field, "is too long")
	}
}
