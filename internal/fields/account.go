package fields

import (
	"strings"

	"solarenroll/internal/domain"
)

// accountRule is the digit count a utility requires, with its error text.
type accountRule struct {
	digits  int
	message string
}

var accountRules = map[domain.Utility]accountRule{
	domain.UtilityPSEG: {10, "PSE&G account numbers must be 10 digits"},
	domain.UtilityJCPL: {12, "JCPL account numbers must be 12 digits"},
}

// ValidateAccountNumber returns the error to show for number under utility,
// or "" when it is acceptable. Blank numbers are never an error; the field
// is optional.
func ValidateAccountNumber(utility domain.Utility, number string) string {
	if strings.TrimSpace(number) == "" {
		return ""
	}
	rule, ok := accountRules[utility]
	if !ok {
		return ""
	}
	if len(Digits(number)) != rule.digits {
		return rule.message
	}
	return ""
}

// AccountNumberHint returns the placeholder and helper text for the account
// number field under utility.
func AccountNumberHint(utility domain.Utility) (placeholder, helper string) {
	switch utility {
	case domain.UtilityPSEG:
		return "10 digits", "PSE&G account numbers are 10 digits"
	case domain.UtilityJCPL:
		return "12 digits", "JCPL account numbers are 12 digits"
	case domain.UtilityACE:
		return "Enter your account number", "Enter your account number as shown on your bill"
	default:
		return "Enter your account number", ""
	}
}
