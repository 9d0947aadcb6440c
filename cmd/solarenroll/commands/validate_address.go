package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"solarenroll/internal/domain"
	"solarenroll/internal/services/address"
)

func validateAddressCmd() *cobra.Command {
	var req domain.AddressValidationRequest
	cmd := &cobra.Command{
		Use:   "validate-address",
		Short: "Check an address with the backend geocoder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := appCtx.Address.CheckAddress(cmd.Context(), req)
			if errors.Is(err, address.ErrNotValidated) {
				fmt.Fprintln(cmd.OutOrStdout(), address.MsgNotValidated)
				if resp.Message != "" {
					fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
				}
				return err
			}
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Address validated: %s\n", resp.FormattedAddress)
			if c := resp.Coordinates; c != nil {
				fmt.Fprintf(out, "Coordinates: %.6f, %.6f\n", c.Y, c.X)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Address, "address", "", "street address")
	cmd.Flags().StringVar(&req.City, "city", "", "city")
	cmd.Flags().StringVar(&req.State, "state", domain.DefaultState, "state")
	cmd.Flags().StringVar(&req.ZipCode, "zip", "", "ZIP code")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("zip")
	addJSONFlag(cmd)
	return cmd
}
