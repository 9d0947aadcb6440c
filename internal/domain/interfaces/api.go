package interfaces

import (
	"context"

	domaintypes "solarenroll/internal/domain/types"
)

// EnrollmentAPI is how we talk to the enrollment backend, all with context.
type EnrollmentAPI interface {
	ValidateAddress(
		ctx context.Context,
		req domaintypes.AddressValidationRequest,
	) (*domaintypes.AddressValidationResponse, error)
	LookupUtility(ctx context.Context, zipCode string) (*domaintypes.UtilityInfo, error)

	CreateSubscriber(
		ctx context.Context,
		data domaintypes.SubscriberData,
	) (*domaintypes.SubscriberCreateResponse, error)
	ListSubscribers(ctx context.Context) (*domaintypes.SubscriberList, error)
	GetSubscriber(ctx context.Context, id domaintypes.SubscriberID) (*domaintypes.Subscriber, error)
	UpdateSubscriber(
		ctx context.Context,
		id domaintypes.SubscriberID,
		patch domaintypes.SubscriberPatch,
	) (*domaintypes.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id domaintypes.SubscriberID) error

	Health(ctx context.Context) (*domaintypes.HealthStatus, error)
}
