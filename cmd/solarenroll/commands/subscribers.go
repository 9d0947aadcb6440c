package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"solarenroll/internal/domain"
	"solarenroll/internal/fields"
)

func subscribersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscribers",
		Aliases: []string{"subs"},
		Short:   "Manage enrolled subscribers",
	}
	cmd.AddCommand(subscribersListCmd(), subscribersGetCmd(), subscribersUpdateCmd(), subscribersDeleteCmd())
	return cmd
}

func subscribersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enrolled subscribers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.API.ListSubscribers(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, list)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tZIP\tUTILITY\tVALIDATED\tCREATED")
			for _, s := range list.Results {
				fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%t\t%s\n",
					s.ID, s.FirstName, s.LastName, s.ZipCode, s.Utility, s.AddressValidated, s.CreatedAt)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d subscriber(s)\n", list.Count)
			return nil
		},
	}
	addJSONFlag(cmd)
	return cmd
}

func subscribersGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := appCtx.API.GetSubscriber(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, s)
			}
			printSubscriber(cmd, s)
			return nil
		},
	}
	addJSONFlag(cmd)
	return cmd
}

// update <id>: only flags that were set end up in the patch.
func subscribersUpdateCmd() *cobra.Command {
	var (
		firstName, lastName, street, city, state, zip string
		account, program                              string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var patch domain.SubscriberPatch
			set := func(flag string, dst **string, v string) {
				if cmd.Flags().Changed(flag) {
					*dst = &v
				}
			}
			set("first-name", &patch.FirstName, firstName)
			set("last-name", &patch.LastName, lastName)
			set("address", &patch.Address, street)
			set("city", &patch.City, city)
			set("state", &patch.State, state)
			set("zip", &patch.ZipCode, zip)
			set("account-number", &patch.UtilityAccountNumber, account)
			if cmd.Flags().Changed("assistance-program") {
				p := domain.AssistanceProgram(program)
				if !p.Valid() {
					return fmt.Errorf("unknown assistance program %q (want Medicare, SNAP or empty)", program)
				}
				patch.AssistanceProgram = &p
			}
			if patch == (domain.SubscriberPatch{}) {
				return fmt.Errorf("nothing to update")
			}

			s, err := appCtx.API.UpdateSubscriber(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			printSubscriber(cmd, s)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&firstName, "first-name", "", "first name")
	f.StringVar(&lastName, "last-name", "", "last name")
	f.StringVar(&street, "address", "", "street address")
	f.StringVar(&city, "city", "", "city")
	f.StringVar(&state, "state", "", "state")
	f.StringVar(&zip, "zip", "", "ZIP code")
	f.StringVar(&account, "account-number", "", "utility account number")
	f.StringVar(&program, "assistance-program", "", "Medicare, SNAP, or empty for none")
	return cmd
}

func subscribersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.API.DeleteSubscriber(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted subscriber %d\n", id)
			return nil
		},
	}
}

func parseID(s string) (domain.SubscriberID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid subscriber id %q", s)
	}
	return domain.SubscriberID(n), nil
}

func printSubscriber(cmd *cobra.Command, s *domain.Subscriber) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	row := func(k, v string) { fmt.Fprintf(tw, "%s:\t%s\n", k, v) }
	row("ID", strconv.FormatInt(int64(s.ID), 10))
	row("Name", s.FirstName+" "+s.LastName)
	if s.Email != "" {
		row("Email", s.Email)
	}
	if s.Phone != "" {
		row("Phone", s.Phone)
	}
	row("Address", fmt.Sprintf("%s, %s, %s %s", s.Address, s.City, s.State, s.ZipCode))
	if s.FormattedAddress != "" {
		row("Validated As", s.FormattedAddress)
	}
	if s.Utility != "" {
		row("Utility", fields.UtilityDisplayName(s.Utility))
	}
	if s.UtilityAccountNumber != "" {
		row("Account", s.UtilityAccountNumber)
	}
	if s.AssistanceProgram != "" {
		row("Assistance", string(s.AssistanceProgram))
	}
	if s.CreatedAt != "" {
		row("Created", s.CreatedAt)
	}
	_ = tw.Flush()
}
