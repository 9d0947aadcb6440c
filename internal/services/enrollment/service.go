package enrollment

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"solarenroll/internal/call"
	"solarenroll/internal/domain"
	"solarenroll/internal/wizard"
)

// MsgIncomplete is shown to the user for ErrIncomplete.
const MsgIncomplete = "Please complete all required fields"

var (
	// ErrIncomplete is returned when no utility has been resolved.
	ErrIncomplete = errors.New("enrollment has no utility")
	// ErrInFlight is returned while a previous submission is still running.
	ErrInFlight = errors.New("submission already in progress")
)

// Rejection is a 2xx response with success=false.
type Rejection struct {
	Message string
	Fields  map[string][]string
}

func (r *Rejection) Error() string {
	if r.Message != "" {
		return r.Message
	}
	if len(r.Fields) == 0 {
		return "enrollment was not accepted"
	}
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(r.Fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

// Service submits enrollments.
//
// It holds the enrollment call, so its Status is the one a submit control
// should show.
type Service struct {
	create *call.Call[domain.SubscriberData, *domain.SubscriberCreateResponse]
	log    *zap.Logger
}

// New constructs a Service backed by api.
func New(api domain.EnrollmentAPI, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		create: call.New("create_subscriber", api.CreateSubscriber, log),
		log:    log,
	}
}

// Status is the request status of the enrollment call.
func (s *Service) Status() call.Status { return s.create.Status() }

// BuildPayload assembles the outbound record. Empty optional fields stay
// empty so they are omitted on the wire.
func BuildPayload(r domain.EnrollmentRecord) domain.SubscriberData {
	return domain.SubscriberData{
		FirstName:            strings.TrimSpace(r.FirstName),
		LastName:             strings.TrimSpace(r.LastName),
		Email:                strings.TrimSpace(r.Email),
		Phone:                r.Phone,
		Address:              strings.TrimSpace(r.Address),
		City:                 strings.TrimSpace(r.City),
		State:                r.State,
		ZipCode:              r.ZipCode,
		Utility:              r.Utility,
		UtilityAccountNumber: strings.TrimSpace(r.UtilityAccountNumber),
		AssistanceProgram:    r.AssistanceProgram,
	}
}

// Submit sends the wizard's record.
//
// Steps:
//  1. Prepare: refuse while a submission is in flight, without a utility,
//     or while the account number breaks its utility's rule. Nothing is sent.
//  2. Send the payload through the enrollment call.
//  3. Complete: on success=true move the wizard to StepSubmitted.
//
// A transport error or a *Rejection leaves the wizard on StepUtility so the
// user can correct and resubmit.
func (s *Service) Submit(ctx context.Context, w *wizard.Wizard) (*domain.SubscriberCreateResponse, error) {
	payload, err := s.Prepare(w)
	if err != nil {
		return nil, err
	}
	resp, err := s.Send(ctx, payload)
	if err != nil {
		return resp, err
	}
	return resp, s.Complete(w, resp)
}

// Message returns the text shown to the user for a submission error.
func Message(err error) string {
	if errors.Is(err, ErrIncomplete) {
		return MsgIncomplete
	}
	return err.Error()
}

// Prepare checks the submission guards and assembles the payload. It only
// reads w.
func (s *Service) Prepare(w *wizard.Wizard) (domain.SubscriberData, error) {
	if s.create.Loading() {
		return domain.SubscriberData{}, ErrInFlight
	}
	if err := w.CheckSubmittable(); err != nil {
		return domain.SubscriberData{}, err
	}
	rec := w.Record()
	if rec.Utility == domain.UtilityNone {
		return domain.SubscriberData{}, ErrIncomplete
	}
	return BuildPayload(rec), nil
}

// Send posts payload. It does not touch any wizard, so it may run off the
// goroutine that owns one. success=false comes back as a *Rejection along
// with the response.
func (s *Service) Send(ctx context.Context, payload domain.SubscriberData) (*domain.SubscriberCreateResponse, error) {
	resp, ok, err := s.create.Execute(ctx, payload)
	if !ok {
		return nil, err
	}
	if !resp.Success {
		s.log.Info("enrollment rejected", zap.String("message", resp.Message))
		return resp, &Rejection{Message: resp.Message, Fields: resp.Errors}
	}
	return resp, nil
}

// Complete moves w to its terminal state after a successful Send.
func (s *Service) Complete(w *wizard.Wizard, resp *domain.SubscriberCreateResponse) error {
	if err := w.MarkSubmitted(resp); err != nil {
		return err
	}
	s.log.Info("enrollment submitted", zap.Int64("subscriber_id", int64(resp.SubscriberID)))
	return nil
}
