package fields

import "solarenroll/internal/domain"

// ZipLength is the number of digits a ZIP code must have before a lookup is
// issued.
const ZipLength = 5

// UtilityPlaceholder is shown while no utility has been resolved.
const UtilityPlaceholder = "Enter ZIP code to auto-detect utility"

var utilityNames = map[domain.Utility]string{
	domain.UtilityPSEG:     "PSE&G",
	domain.UtilityJCPL:     "Jersey Central Power & Light",
	domain.UtilityACE:      "Atlantic City Electric",
	domain.UtilityRockland: "Rockland Electric Co.",
}

// UtilityDisplayName returns the customer-facing name of u, or the
// placeholder prompt when u is empty or unknown.
func UtilityDisplayName(u domain.Utility) string {
	if name, ok := utilityNames[u]; ok {
		return name
	}
	return UtilityPlaceholder
}

// KnownUtility reports whether u has a display name.
func KnownUtility(u domain.Utility) bool {
	_, ok := utilityNames[u]
	return ok
}

// IsLookupZip reports whether zip is exactly five digits and so ready for a
// utility lookup.
func IsLookupZip(zip string) bool {
	return len(zip) == ZipLength && Digits(zip) == zip
}
