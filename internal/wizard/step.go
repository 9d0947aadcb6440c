package wizard

import "solarenroll/internal/domain"

// Step is a position in the wizard.
type Step int

const (
	StepPersonal Step = iota + 1
	StepAddress
	StepUtility
	StepSubmitted
)

// StepLabels are the progress indicator labels for the input steps.
var StepLabels = []string{"Personal Info", "Address", "Utility Details"}

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepAddress:
		return "address"
	case StepUtility:
		return "utility"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Field names a record field. Values match the backend JSON keys.
type Field string

const (
	FieldFirstName         Field = "first_name"
	FieldLastName          Field = "last_name"
	FieldEmail             Field = "email"
	FieldPhone             Field = "phone"
	FieldAddress           Field = "address"
	FieldCity              Field = "city"
	FieldState             Field = "state"
	FieldZipCode           Field = "zip_code"
	FieldUtility           Field = "utility"
	FieldAccountNumber     Field = "utility_account_number"
	FieldAssistanceProgram Field = "assistance_program"
)

// PersonalUpdate is the closed field set of StepPersonal. Nil fields are
// left unchanged.
type PersonalUpdate struct {
	FirstName *string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Email     *string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone     *string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// AddressUpdate is the closed field set of StepAddress. Utility is absent on
// purpose: it only ever comes from a ZIP lookup.
type AddressUpdate struct {
	Address *string `json:"address,omitempty" yaml:"address,omitempty"`
	City    *string `json:"city,omitempty" yaml:"city,omitempty"`
	State   *string `json:"state,omitempty" yaml:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty" yaml:"zip_code,omitempty"`
}

// UtilityUpdate is the closed field set of StepUtility.
type UtilityUpdate struct {
	AccountNumber     *string `json:"utility_account_number,omitempty" yaml:"utility_account_number,omitempty"`
	AssistanceProgram *string `json:"assistance_program,omitempty" yaml:"assistance_program,omitempty"`
}

// ZipLookup is a ticket for one utility lookup. Needed is false when the ZIP
// did not change or is not five characters long.
type ZipLookup struct {
	Zip    string
	Needed bool
	seq    uint64
}

// AddressCheck is a ticket for one address validation call.
type AddressCheck struct {
	Request domain.AddressValidationRequest
	seq     uint64
}
