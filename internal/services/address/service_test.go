package address_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarenroll/internal/api"
	"solarenroll/internal/api/apitest"
	"solarenroll/internal/domain"
	"solarenroll/internal/services/address"
	"solarenroll/internal/wizard"
)

func str(s string) *string { return &s }

func atAddressStep(t *testing.T) *wizard.Wizard {
	t.Helper()
	w := wizard.New(wizard.Options{})
	require.NoError(t, w.ApplyPersonal(wizard.PersonalUpdate{FirstName: str("Jane"), LastName: str("Doe")}))
	require.NoError(t, w.Next())
	return w
}

func TestSetZip_LooksUpOnlyFiveCharacterZips(t *testing.T) {
	fake := apitest.NewFake(map[string]domain.Utility{"07102": domain.UtilityPSEG})
	svc := address.New(fake, nil)
	w := atAddressStep(t)
	ctx := context.Background()

	for _, zip := range []string{"0", "07", "071", "0710"} {
		applied, err := svc.SetZip(ctx, w, zip)
		require.NoError(t, err)
		assert.False(t, applied)
	}
	assert.Empty(t, fake.Lookups())

	applied, err := svc.SetZip(ctx, w, "07102")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.UtilityPSEG, w.Record().Utility)

	// Same ZIP again: no new lookup, same utility.
	applied, err = svc.SetZip(ctx, w, "07102")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, []string{"07102"}, fake.Lookups())
	assert.Equal(t, domain.UtilityPSEG, w.Record().Utility)
}

func TestSetZip_TransportFailureClearsUtility(t *testing.T) {
	fake := apitest.NewFake(nil)
	fake.LookupUtilityFunc = func(context.Context, string) (*domain.UtilityInfo, error) {
		return nil, &api.Error{Message: api.MsgUnexpected}
	}
	svc := address.New(fake, nil)
	w := atAddressStep(t)

	applied, err := svc.SetZip(context.Background(), w, "07102")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.UtilityNone, w.Record().Utility)
	assert.Equal(t, api.MsgUnexpected, svc.LookupStatus().Err)
}

func TestValidateWizardAddress(t *testing.T) {
	fake := apitest.NewFake(map[string]domain.Utility{"07102": domain.UtilityPSEG})
	svc := address.New(fake, nil)
	w := atAddressStep(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ValidateWizardAddress(ctx, w), wizard.ErrStepIncomplete)
	assert.Empty(t, fake.Validated)

	_, err := w.ApplyAddress(wizard.AddressUpdate{Address: str("1 Main St"), City: str("Newark"), ZipCode: str("07102")})
	require.NoError(t, err)
	require.NoError(t, svc.ValidateWizardAddress(ctx, w))
	assert.True(t, w.Record().AddressValidated)
	assert.Equal(t, "1 Main St, Newark, NJ, 07102", w.Record().FormattedAddress)
	assert.Equal(t, []domain.AddressValidationRequest{{Address: "1 Main St", City: "Newark", State: "NJ", ZipCode: "07102"}}, fake.Validated)
}

func TestValidateWizardAddress_NotValidated(t *testing.T) {
	fake := apitest.NewFake(nil)
	fake.ValidateAddressFunc = func(context.Context, domain.AddressValidationRequest) (*domain.AddressValidationResponse, error) {
		return &domain.AddressValidationResponse{Valid: false, Message: "Address not found in Census database"}, nil
	}
	svc := address.New(fake, nil)
	w := atAddressStep(t)
	_, _ = w.ApplyAddress(wizard.AddressUpdate{Address: str("1 Nowhere"), City: str("Newark"), ZipCode: str("07102")})

	err := svc.ValidateWizardAddress(context.Background(), w)
	assert.ErrorIs(t, err, address.ErrNotValidated)
	assert.False(t, w.Record().AddressValidated)
	assert.Equal(t, address.MsgNotValidated, w.AddressMessage())
	assert.NotEqual(t, address.MsgNotValidated, err.Error())
	// A negative business answer is not a request failure.
	assert.Empty(t, svc.ValidateStatus().Err)
}
