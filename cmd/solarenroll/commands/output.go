package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var jsonOut bool

func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw JSON response")
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
