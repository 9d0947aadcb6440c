package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solarenroll/internal/domain"
	"solarenroll/internal/services/address"
	"solarenroll/internal/store"
	"solarenroll/internal/wizard"
)

// Enroll drives a fresh wizard through every step from a, exactly as an
// interactive user would, and submits it.
//
// Steps:
//  1. Apply personal info and advance.
//  2. Apply the address; a ZIP change triggers the utility lookup. Optionally
//     validate the address, then advance.
//  3. Apply utility details and submit.
//
// The wizard is returned in whatever state it reached so callers can report
// which step failed.
func (w *Wire) Enroll(ctx context.Context, a store.Answers) (*wizard.Wizard, *domain.SubscriberCreateResponse, error) {
	wz := w.NewWizard()

	if err := wz.ApplyPersonal(a.Personal); err != nil {
		return wz, nil, fmt.Errorf("personal info: %w", err)
	}
	if err := wz.Next(); err != nil {
		return wz, nil, fmt.Errorf("personal info: %w", err)
	}

	l, err := wz.ApplyAddress(a.Address)
	if err != nil {
		return wz, nil, fmt.Errorf("address: %w", err)
	}
	if err := w.resolveAddress(ctx, wz, l, a.ValidateAddress); err != nil {
		return wz, nil, err
	}
	if err := wz.Next(); err != nil {
		return wz, nil, fmt.Errorf("address: %w", err)
	}

	if err := wz.ApplyUtility(a.Utility); err != nil {
		return wz, nil, fmt.Errorf("utility details: %w", err)
	}
	resp, err := w.Enrollment.Submit(ctx, wz)
	if err != nil {
		return wz, resp, fmt.Errorf("submit: %w", err)
	}
	return wz, resp, nil
}

// resolveAddress runs the utility lookup and, when asked, the address check
// concurrently. Results are applied to wz only after both return.
func (w *Wire) resolveAddress(ctx context.Context, wz *wizard.Wizard, l wizard.ZipLookup, validate bool) error {
	var (
		check    wizard.AddressCheck
		info     *domain.UtilityInfo
		resp     *domain.AddressValidationResponse
		checkErr error
	)
	if validate {
		c, err := wz.BeginAddressCheck()
		if err != nil {
			return fmt.Errorf("address validation: %w", err)
		}
		check = c
	}

	var g errgroup.Group
	if l.Needed {
		g.Go(func() error {
			info = w.Address.Lookup(ctx, l)
			return nil
		})
	}
	if validate {
		g.Go(func() error {
			resp, checkErr = w.Address.CheckAddress(ctx, check.Request)
			return nil
		})
	}
	_ = g.Wait()

	if l.Needed {
		wz.ResolveUtility(l, info)
		if st := w.Address.LookupStatus(); st.Err != "" {
			return fmt.Errorf("utility lookup: %s", st.Err)
		}
		w.Log.Debug("utility resolved",
			zap.String("zip", l.Zip),
			zap.String("utility", wz.Record().Utility.String()),
		)
	}
	if validate {
		address.Record(wz, check, resp, checkErr)
		if checkErr != nil && !errors.Is(checkErr, address.ErrNotValidated) {
			return fmt.Errorf("address validation: %w", checkErr)
		}
	}
	return nil
}
