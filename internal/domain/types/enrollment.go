package types

// DefaultState is the only state the program enrolls in.
const DefaultState = "NJ"

// EnrollmentRecord accumulates the answers of one wizard session.
//
// Utility is never typed by the user; it is the result of the last
// successful ZIP lookup for ZipCode.
type EnrollmentRecord struct {
	// Personal info
	FirstName string
	LastName  string
	Email     string
	Phone     string // DDD-DDD-DDDD

	// Address info
	Address string
	City    string
	State   string
	ZipCode string
	Utility Utility

	AddressValidated bool
	FormattedAddress string

	// Utility details
	UtilityAccountNumber string
	AssistanceProgram    AssistanceProgram
}

// NewEnrollmentRecord returns a record with all fields at their defaults.
func NewEnrollmentRecord() EnrollmentRecord {
	return EnrollmentRecord{State: DefaultState}
}
