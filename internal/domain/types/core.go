package types

// Utility is the code of an electric utility serving a ZIP code.
type Utility string

const (
	UtilityNone     Utility = ""
	UtilityPSEG     Utility = "PSEG"
	UtilityJCPL     Utility = "JCPL"
	UtilityACE      Utility = "ACE"
	UtilityRockland Utility = "ROCKLAND"
)

// String returns the string form of the utility code.
func (u Utility) String() string { return string(u) }

// AssistanceProgram is the public assistance program a subscriber takes part in.
type AssistanceProgram string

const (
	AssistanceNone     AssistanceProgram = ""
	AssistanceMedicare AssistanceProgram = "Medicare"
	AssistanceSNAP     AssistanceProgram = "SNAP"
)

// String returns the string form of the program.
func (p AssistanceProgram) String() string { return string(p) }

// Valid reports whether p is one of the accepted programs, including none.
func (p AssistanceProgram) Valid() bool {
	switch p {
	case AssistanceNone, AssistanceMedicare, AssistanceSNAP:
		return true
	}
	return false
}

// SubscriberID identifies an enrolled subscriber on the backend.
type SubscriberID int64
