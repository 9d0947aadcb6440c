// Package apitest provides an in-memory domain.EnrollmentAPI for tests.
package apitest

import (
	"context"
	"sync"

	"solarenroll/internal/domain"
)

// Fake is a domain.EnrollmentAPI whose behaviour is set per test through
// the Func fields. Unset funcs return zero responses. Calls are recorded.
type Fake struct {
	mu sync.Mutex

	ValidateAddressFunc  func(ctx context.Context, req domain.AddressValidationRequest) (*domain.AddressValidationResponse, error)
	LookupUtilityFunc    func(ctx context.Context, zip string) (*domain.UtilityInfo, error)
	CreateSubscriberFunc func(ctx context.Context, data domain.SubscriberData) (*domain.SubscriberCreateResponse, error)

	Subscribers map[domain.SubscriberID]domain.Subscriber

	LookupCalls []string
	Created     []domain.SubscriberData
	Validated   []domain.AddressValidationRequest
}

var _ domain.EnrollmentAPI = (*Fake)(nil)

// NewFake returns a Fake that knows the utilities in zips.
func NewFake(zips map[string]domain.Utility) *Fake {
	return &Fake{
		LookupUtilityFunc: func(_ context.Context, zip string) (*domain.UtilityInfo, error) {
			u, ok := zips[zip]
			if !ok {
				return &domain.UtilityInfo{Found: false, Message: "No utility found for ZIP code " + zip}, nil
			}
			return &domain.UtilityInfo{Found: true, Utility: u, ZipCode: zip}, nil
		},
		CreateSubscriberFunc: func(_ context.Context, _ domain.SubscriberData) (*domain.SubscriberCreateResponse, error) {
			return &domain.SubscriberCreateResponse{Success: true, SubscriberID: 1, Message: "Subscriber created successfully"}, nil
		},
		ValidateAddressFunc: func(_ context.Context, req domain.AddressValidationRequest) (*domain.AddressValidationResponse, error) {
			return &domain.AddressValidationResponse{Valid: true, FormattedAddress: req.Address + ", " + req.City + ", " + req.State + ", " + req.ZipCode}, nil
		},
		Subscribers: map[domain.SubscriberID]domain.Subscriber{},
	}
}

func (f *Fake) ValidateAddress(ctx context.Context, req domain.AddressValidationRequest) (*domain.AddressValidationResponse, error) {
	f.mu.Lock()
	f.Validated = append(f.Validated, req)
	fn := f.ValidateAddressFunc
	f.mu.Unlock()
	if fn == nil {
		return &domain.AddressValidationResponse{}, nil
	}
	return fn(ctx, req)
}

func (f *Fake) LookupUtility(ctx context.Context, zip string) (*domain.UtilityInfo, error) {
	f.mu.Lock()
	f.LookupCalls = append(f.LookupCalls, zip)
	fn := f.LookupUtilityFunc
	f.mu.Unlock()
	if fn == nil {
		return &domain.UtilityInfo{}, nil
	}
	return fn(ctx, zip)
}

func (f *Fake) CreateSubscriber(ctx context.Context, data domain.SubscriberData) (*domain.SubscriberCreateResponse, error) {
	f.mu.Lock()
	f.Created = append(f.Created, data)
	fn := f.CreateSubscriberFunc
	f.mu.Unlock()
	if fn == nil {
		return &domain.SubscriberCreateResponse{}, nil
	}
	return fn(ctx, data)
}

func (f *Fake) ListSubscribers(context.Context) (*domain.SubscriberList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &domain.SubscriberList{Results: []domain.Subscriber{}}
	for _, s := range f.Subscribers {
		out.Results = append(out.Results, s)
	}
	out.Count = len(out.Results)
	return out, nil
}

func (f *Fake) GetSubscriber(_ context.Context, id domain.SubscriberID) (*domain.Subscriber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.Subscribers[id]
	return &s, nil
}

func (f *Fake) UpdateSubscriber(_ context.Context, id domain.SubscriberID, patch domain.SubscriberPatch) (*domain.Subscriber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.Subscribers[id]
	patchString(&s.FirstName, patch.FirstName)
	patchString(&s.LastName, patch.LastName)
	patchString(&s.Address, patch.Address)
	patchString(&s.City, patch.City)
	patchString(&s.State, patch.State)
	patchString(&s.ZipCode, patch.ZipCode)
	patchString(&s.UtilityAccountNumber, patch.UtilityAccountNumber)
	if patch.Utility != nil {
		s.Utility = *patch.Utility
	}
	if patch.AssistanceProgram != nil {
		s.AssistanceProgram = *patch.AssistanceProgram
	}
	f.Subscribers[id] = s
	return &s, nil
}

func (f *Fake) DeleteSubscriber(_ context.Context, id domain.SubscriberID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Subscribers, id)
	return nil
}

func (f *Fake) Health(context.Context) (*domain.HealthStatus, error) {
	return &domain.HealthStatus{Status: "healthy"}, nil
}

// Lookups returns a copy of the ZIPs looked up so far.
func (f *Fake) Lookups() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.LookupCalls...)
}

// CreatedPayloads returns a copy of the submitted payloads.
func (f *Fake) CreatedPayloads() []domain.SubscriberData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.SubscriberData(nil), f.Created...)
}

func patchString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
