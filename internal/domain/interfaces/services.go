package interfaces

import (
	"context"

	domaintypes "solarenroll/internal/domain/types"
)

// AddressChecker validates an address and resolves the serving utility.
type AddressChecker interface {
	CheckAddress(
		ctx context.Context,
		req domaintypes.AddressValidationRequest,
	) (*domaintypes.AddressValidationResponse, error)
	LookupUtility(ctx context.Context, zipCode string) (*domaintypes.UtilityInfo, bool)
}
