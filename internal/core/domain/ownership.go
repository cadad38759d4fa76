package domain

import (
	"fmt"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
)

// VerifyOwnership returns ErrAccessDenied unless requesterID owns the aggregate.
func VerifyOwnership(ownerID, requesterID string) error {
	if ownerID == "" || ownerID != requesterID {
		return fmt.Errorf("%w: requester does not own this resource", apperrors.ErrAccessDenied)
	}
	return nil
}
