package wizard

import (
	"net/mail"
	"strings"

	"solarenroll/internal/domain"
	"solarenroll/internal/fields"
)

// Options tune the validity predicates.
type Options struct {
	// RequireEmail makes email a required Step 1 field.
	RequireEmail bool
}

// Wizard holds one enrollment session.
type Wizard struct {
	opts   Options
	step   Step
	record domain.EnrollmentRecord
	result *domain.SubscriberCreateResponse

	zipSeq      uint64
	zipResolved bool // a lookup result was committed for the live ZIP
	addrSeq     uint64
	addrMessage string // outcome of the last committed address check

	showErrors bool // set by a refused Next, cleared on step change
}

// New returns a wizard at StepPersonal with a default record.
func New(opts Options) *Wizard {
	return &Wizard{
		opts:   opts,
		step:   StepPersonal,
		record: domain.NewEnrollmentRecord(),
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Record returns a copy of the record.
func (w *Wizard) Record() domain.EnrollmentRecord { return w.record }

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool { return w.step == StepSubmitted }

// Result is the backend response that completed the wizard, if any.
func (w *Wizard) Result() *domain.SubscriberCreateResponse { return w.result }


// AddressMessage returns the outcome text of the last address check.
func (w *Wizard) AddressMessage() string { return w.addrMessage }

// Validate evaluates the predicate of step against the record. It returns
// nil when the step is complete.
func (w *Wizard) Validate(step Step) ValidationErrors {
	r := w.record
	errs := ValidationErrors{}
	switch step {
	case StepPersonal:
		if blank(r.FirstName) {
			errs[FieldFirstName] = "First name is required"
		}
		if blank(r.LastName) {
			errs[FieldLastName] = "Last name is required"
		}
		switch {
		case blank(r.Email) && w.opts.RequireEmail:
			errs[FieldEmail] = "Email is required"
		case !blank(r.Email):
			if _, err := mail.ParseAddress(r.Email); err != nil {
				errs[FieldEmail] = "Enter a valid email address"
			}
		}
	case StepAddress:
		if blank(r.Address) {
			errs[FieldAddress] = "Street address is required"
		}
		if blank(r.City) {
			errs[FieldCity] = "City is required"
		}
		if blank(r.ZipCode) {
			errs[FieldZipCode] = "ZIP code is required"
		}
		if blank(string(r.Utility)) {
			if fields.IsLookupZip(r.ZipCode) && w.zipResolved {
				errs[FieldUtility] = "No utility information available for this ZIP code"
			} else {
				errs[FieldUtility] = fields.UtilityPlaceholder
			}
		}
	case StepUtility:
		if msg := fields.ValidateAccountNumber(r.Utility, r.UtilityAccountNumber); msg != "" {
			errs[FieldAccountNumber] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Valid reports whether the current step's predicate holds.
func (w *Wizard) Valid() bool { return w.Validate(w.step) == nil }

// Next advances one step when the current step is valid. It is a no-op at
// StepUtility; only a successful submission leaves that step.
func (w *Wizard) Next() error {
	switch w.step {
	case StepSubmitted:
		return ErrSubmitted
	case StepUtility:
		return nil
	}
	if errs := w.Validate(w.step); errs != nil {
		w.showErrors = true
		return errs
	}
	w.moveTo(w.step + 1)
	return nil
}

// Prev goes back one step. It reports whether the step changed.
func (w *Wizard) Prev() bool {
	if w.step <= StepPersonal || w.step >= StepSubmitted {
		return false
	}
	w.moveTo(w.step - 1)
	return true
}

// ApplyPersonal merges a Step 1 update. Phone numbers are stored masked.
func (w *Wizard) ApplyPersonal(u PersonalUpdate) error {
	if err := w.expect(StepPersonal); err != nil {
		return err
	}
	set(&w.record.FirstName, u.FirstName)
	set(&w.record.LastName, u.LastName)
	set(&w.record.Email, u.Email)
	if u.Phone != nil {
		w.record.Phone = fields.FormatPhone(*u.Phone)
	}
	return nil
}

// ApplyAddress merges a Step 2 update. When the ZIP changes the utility is
// cleared and the returned ticket says whether a lookup must be issued.
func (w *Wizard) ApplyAddress(u AddressUpdate) (ZipLookup, error) {
	if err := w.expect(StepAddress); err != nil {
		return ZipLookup{}, err
	}
	if u.State != nil && *u.State != domain.DefaultState {
		return ZipLookup{}, ErrUnsupportedState
	}

	r := &w.record
	changed := set(&r.Address, u.Address)
	changed = set(&r.City, u.City) || changed
	changed = set(&r.State, u.State) || changed
	zipChanged := set(&r.ZipCode, u.ZipCode)
	if changed || zipChanged {
		w.addrSeq++
		r.AddressValidated = false
		r.FormattedAddress = ""
		w.addrMessage = ""
	}
	if !zipChanged {
		return ZipLookup{Zip: r.ZipCode}, nil
	}

	w.zipSeq++
	w.zipResolved = false
	r.Utility = domain.UtilityNone
	return ZipLookup{
		Zip:    r.ZipCode,
		Needed: fields.IsLookupZip(r.ZipCode),
		seq:    w.zipSeq,
	}, nil
}

// ResolveUtility commits a lookup result for ticket l. A nil, not-found or
// unrecognised utility clears the utility. Results for a ZIP that is no
// longer live are dropped; the return value reports whether the result was
// applied.
func (w *Wizard) ResolveUtility(l ZipLookup, info *domain.UtilityInfo) bool {
	if !l.Needed || l.seq != w.zipSeq || l.Zip != w.record.ZipCode || w.step == StepSubmitted {
		return false
	}
	w.zipResolved = true
	if info != nil && info.Found && fields.KnownUtility(info.Utility) {
		w.record.Utility = info.Utility
		return true
	}
	w.record.Utility = domain.UtilityNone
	return true
}

// BeginAddressCheck returns a ticket for validating the current address.
// Address, city, state and ZIP must all be filled in.
func (w *Wizard) BeginAddressCheck() (AddressCheck, error) {
	if err := w.expect(StepAddress); err != nil {
		return AddressCheck{}, err
	}
	r := w.record
	errs := ValidationErrors{}
	if blank(r.Address) {
		errs[FieldAddress] = "Street address is required"
	}
	if blank(r.City) {
		errs[FieldCity] = "City is required"
	}
	if blank(r.State) {
		errs[FieldState] = "State is required"
	}
	if blank(r.ZipCode) {
		errs[FieldZipCode] = "ZIP code is required"
	}
	if len(errs) > 0 {
		return AddressCheck{}, errs
	}
	return AddressCheck{
		Request: domain.AddressValidationRequest{Address: r.Address, City: r.City, State: r.State, ZipCode: r.ZipCode},
		seq:     w.addrSeq,
	}, nil
}

// ResolveAddressCheck records the outcome of an address check unless the
// address changed after the ticket was issued.
func (w *Wizard) ResolveAddressCheck(c AddressCheck, resp *domain.AddressValidationResponse, message string) bool {
	if c.seq != w.addrSeq || w.step == StepSubmitted {
		return false
	}
	w.record.AddressValidated = resp != nil && resp.Valid
	if w.record.AddressValidated {
		w.record.FormattedAddress = resp.FormattedAddress
	}
	w.addrMessage = message
	return true
}

// ApplyUtility merges a Step 3 update.
func (w *Wizard) ApplyUtility(u UtilityUpdate) error {
	if err := w.expect(StepUtility); err != nil {
		return err
	}
	if u.AssistanceProgram != nil {
		p := domain.AssistanceProgram(*u.AssistanceProgram)
		if !p.Valid() {
			return ErrUnknownAssistanceProgram
		}
		w.record.AssistanceProgram = p
	}
	set(&w.record.UtilityAccountNumber, u.AccountNumber)
	return nil
}

// CheckSubmittable reports why the record cannot be submitted yet, if at all.
func (w *Wizard) CheckSubmittable() error {
	if err := w.expect(StepUtility); err != nil {
		return err
	}
	if errs := w.Validate(StepUtility); errs != nil {
		return errs
	}
	return nil
}

// MarkSubmitted moves to the terminal state after a successful enrollment.
func (w *Wizard) MarkSubmitted(resp *domain.SubscriberCreateResponse) error {
	if err := w.expect(StepUtility); err != nil {
		return err
	}
	w.result = resp
	w.moveTo(StepSubmitted)
	return nil
}

// Reset discards the record and returns to StepPersonal. Outstanding lookup
// and address tickets become stale.
func (w *Wizard) Reset() {
	w.record = domain.NewEnrollmentRecord()
	w.result = nil
	w.zipSeq++
	w.zipResolved = false
	w.addrSeq++
	w.addrMessage = ""
	w.moveTo(StepPersonal)
}

func (w *Wizard) moveTo(s Step) {
	w.step = s
	w.showErrors = false
}

func (w *Wizard) expect(s Step) error {
	if w.step == StepSubmitted {
		return ErrSubmitted
	}
	if w.step != s {
		return ErrWrongStep
	}
	return nil
}

// set assigns *src to *dst when src is non-nil and reports whether the value
// changed.
func set(dst *string, src *string) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
