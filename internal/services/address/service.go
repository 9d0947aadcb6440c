package address

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"solarenroll/internal/call"
	"solarenroll/internal/domain"
	"solarenroll/internal/wizard"
)

// MsgNotValidated is shown to the user for ErrNotValidated.
const MsgNotValidated = "Address could not be validated. Please check your address."

// ErrNotValidated is returned when the backend answers valid=false.
var ErrNotValidated = errors.New("address not validated")

// Service performs address checks and utility lookups.
type Service struct {
	validate *call.Call[domain.AddressValidationRequest, *domain.AddressValidationResponse]
	lookup   *call.Call[string, *domain.UtilityInfo]
	log      *zap.Logger
}

// New constructs a Service backed by api.
func New(api domain.EnrollmentAPI, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		validate: call.New("validate_address", api.ValidateAddress, log),
		lookup:   call.New("lookup_utility", api.LookupUtility, log),
		log:      log,
	}
}

var _ domain.AddressChecker = (*Service)(nil)

// ValidateStatus is the request status of address validation.
func (s *Service) ValidateStatus() call.Status { return s.validate.Status() }

// LookupStatus is the request status of the utility lookup.
func (s *Service) LookupStatus() call.Status { return s.lookup.Status() }

// CheckAddress validates req. A valid=false answer is returned together with
// ErrNotValidated; transport failures return the transport error.
func (s *Service) CheckAddress(
	ctx context.Context,
	req domain.AddressValidationRequest,
) (*domain.AddressValidationResponse, error) {
	resp, ok, err := s.validate.Execute(ctx, req)
	if !ok {
		return nil, err
	}
	if !resp.Valid {
		s.log.Info("address not validated", zap.String("message", resp.Message))
		return resp, ErrNotValidated
	}
	return resp, nil
}

// LookupUtility resolves the utility serving zipCode. ok is false on a
// transport failure; a not-found answer is a normal result.
func (s *Service) LookupUtility(ctx context.Context, zipCode string) (*domain.UtilityInfo, bool) {
	info, ok, _ := s.lookup.Execute(ctx, zipCode)
	return info, ok
}

// Lookup runs the lookup for a wizard ticket. Tickets that need no lookup
// return nil without calling the backend.
func (s *Service) Lookup(ctx context.Context, l wizard.ZipLookup) *domain.UtilityInfo {
	if !l.Needed {
		return nil
	}
	info, _ := s.LookupUtility(ctx, l.Zip)
	return info
}

// Record stores the outcome of an address check on w. A transport failure
// records the address as not validated, with the transport message. It
// reports whether w accepted the result.
func Record(w *wizard.Wizard, c wizard.AddressCheck, resp *domain.AddressValidationResponse, err error) bool {
	msg := ""
	switch {
	case errors.Is(err, ErrNotValidated):
		msg = MsgNotValidated
	case err != nil:
		msg = err.Error()
	}
	return w.ResolveAddressCheck(c, resp, msg)
}

// SetZip applies a ZIP change to w and, when needed, performs the lookup
// synchronously. It reports whether a lookup result was committed.
func (s *Service) SetZip(ctx context.Context, w *wizard.Wizard, zip string) (bool, error) {
	l, err := w.ApplyAddress(wizard.AddressUpdate{ZipCode: &zip})
	if err != nil || !l.Needed {
		return false, err
	}
	return w.ResolveUtility(l, s.Lookup(ctx, l)), nil
}

// ValidateWizardAddress validates the wizard's current address and records
// the outcome on it.
func (s *Service) ValidateWizardAddress(ctx context.Context, w *wizard.Wizard) error {
	c, err := w.BeginAddressCheck()
	if err != nil {
		return err
	}
	resp, err := s.CheckAddress(ctx, c.Request)
	Record(w, c, resp, err)
	return err
}
