package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solarenroll/internal/domain"
	"solarenroll/internal/fields"
)

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"12":             "12",
		"123":            "123",
		"1234":           "123-4",
		"123456":         "123-456",
		"1234567":        "123-456-7",
		"1234567890":     "123-456-7890",
		"123456789012":   "123-456-7890",
		"(123) 456-7890": "123-456-7890",
		"abc":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, fields.FormatPhone(in), "input %q", in)
	}
}

func TestFormatPhone_Idempotent(t *testing.T) {
	for _, in := range []string{"1234567890", "12", "12345", "98765432101234"} {
		once := fields.FormatPhone(in)
		assert.Equal(t, once, fields.FormatPhone(once), "input %q", in)
	}
}

func TestUtilityDisplayName(t *testing.T) {
	assert.Equal(t, "PSE&G", fields.UtilityDisplayName(domain.UtilityPSEG))
	assert.Equal(t, "Jersey Central Power & Light", fields.UtilityDisplayName(domain.UtilityJCPL))
	assert.Equal(t, "Atlantic City Electric", fields.UtilityDisplayName(domain.UtilityACE))
	assert.Equal(t, "Rockland Electric Co.", fields.UtilityDisplayName(domain.UtilityRockland))
	assert.Equal(t, fields.UtilityPlaceholder, fields.UtilityDisplayName(""))
	assert.Equal(t, fields.UtilityPlaceholder, fields.UtilityDisplayName("NOPE"))
}

func TestIsLookupZip(t *testing.T) {
	assert.True(t, fields.IsLookupZip("07102"))
	for _, z := range []string{"", "0710", "071020", "7", "0710a", "07 02", "０７１０２"} {
		assert.False(t, fields.IsLookupZip(z), z)
	}
}

func TestValidateAccountNumber(t *testing.T) {
	cases := []struct {
		utility domain.Utility
		number  string
		wantErr bool
	}{
		{domain.UtilityPSEG, "1234567890", false},
		{domain.UtilityPSEG, "123-456-7890", false},
		{domain.UtilityPSEG, "123456789", true},
		{domain.UtilityJCPL, "123456789012", false},
		{domain.UtilityJCPL, "12345678901", true},
		{domain.UtilityACE, "1", false},
		{domain.UtilityACE, "anything at all", false},
		{domain.UtilityPSEG, "", false},
		{domain.UtilityPSEG, "   ", false},
		{"", "123", false},
	}
	for _, tc := range cases {
		got := fields.ValidateAccountNumber(tc.utility, tc.number)
		if tc.wantErr {
			assert.NotEmpty(t, got, "%s %q", tc.utility, tc.number)
		} else {
			assert.Empty(t, got, "%s %q", tc.utility, tc.number)
		}
	}
	assert.Equal(t, "PSE&G account numbers must be 10 digits",
		fields.ValidateAccountNumber(domain.UtilityPSEG, "1"))
	assert.Equal(t, "JCPL account numbers must be 12 digits",
		fields.ValidateAccountNumber(domain.UtilityJCPL, "1"))
}

func TestAccountNumberHint(t *testing.T) {
	p, h := fields.AccountNumberHint(domain.UtilityPSEG)
	assert.Equal(t, "10 digits", p)
	assert.Contains(t, h, "10 digits")

	p, h = fields.AccountNumberHint("")
	assert.Equal(t, "Enter your account number", p)
	assert.Empty(t, h)
}
