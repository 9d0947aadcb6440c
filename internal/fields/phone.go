package fields

import "strings"

// PhoneDigits is the number of digits kept in a phone number.
const PhoneDigits = 10

// Digits returns only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone masks s as DDD-DDD-DDDD, filling progressively as digits
// accumulate. Non-digits are dropped and anything past ten digits is cut.
func FormatPhone(s string) string {
	d := Digits(s)
	if len(d) > PhoneDigits {
		d = d[:PhoneDigits]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "-" + d[3:]
	default:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	}
}
