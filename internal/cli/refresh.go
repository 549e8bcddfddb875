package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var refreshJSON bool

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the returns materialized views once",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := getApp().Refresh(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if refreshJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Fprintf(out, "run %s: refreshed %d views in %.2f seconds\n", result.RunID, len(result.Views), result.DurationSeconds)
		f := result.Freshness
		fmt.Fprintf(out, "%s: %d rows vs %d in %s, stale=%t (%.2fh)\n",
			f.View, f.ViewRowCount.Int64(), f.BaseRowCount.Int64(), f.BaseTable, f.Stale, f.StaleHours)
		return nil
	},
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshJSON, "json", false, "Print the result as JSON")
}
