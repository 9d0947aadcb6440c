package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"solarenroll/internal/domain"
	"solarenroll/internal/store"
	"solarenroll/internal/tui"
)

var answersPath string

// enroll: run the wizard in the terminal, or headless from an answers file.
func enrollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "enroll",
		Short:       "Enroll a subscriber in the community solar program",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTerminal: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if answersPath != "" {
				return enrollHeadless(cmd)
			}

			m := tui.New(cmd.Context(), appCtx.NewWizard(), appCtx.Address, appCtx.Enrollment, logger.Named("tui"))
			if err := tui.Run(cmd.Context(), m); err != nil {
				return err
			}
			if res := m.Wizard().Result(); res != nil {
				printEnrolled(cmd, res)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&answersPath, "answers", "", "YAML or JSON answers file; skips the interactive wizard")
	return cmd
}

func enrollHeadless(cmd *cobra.Command) error {
	answers, err := store.ReadAnswers(answersPath)
	if err != nil {
		return err
	}
	wz, res, err := appCtx.Enroll(cmd.Context(), answers)
	if err != nil {
		return err
	}
	if r := wz.Record(); r.FormattedAddress != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Address validated: %s\n", r.FormattedAddress)
	}
	printEnrolled(cmd, res)
	return nil
}

func printEnrolled(cmd *cobra.Command, res *domain.SubscriberCreateResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Enrollment Successful!")
	if res.SubscriberID != 0 {
		fmt.Fprintf(out, "Subscriber ID: %d\n", res.SubscriberID)
	}
	if res.Message != "" {
		fmt.Fprintln(out, res.Message)
	}
}
