package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"solarenroll/internal/fields"
)

// utility <zip>: show which utility serves a ZIP code.
func utilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utility <zip>",
		Short: "Look up the electric utility serving a ZIP code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zip := args[0]
			if !fields.IsLookupZip(zip) {
				return fmt.Errorf("ZIP code must be %d digits", fields.ZipLength)
			}
			info, err := appCtx.API.LookupUtility(cmd.Context(), zip)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, info)
			}
			if !info.Found || info.Utility == "" {
				msg := info.Message
				if msg == "" {
					msg = "No utility information available for this ZIP code"
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", zip, fields.UtilityDisplayName(info.Utility), info.Utility)
			return nil
		},
	}
	addJSONFlag(cmd)
	return cmd
}
