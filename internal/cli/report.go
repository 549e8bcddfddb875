package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/sales-analytics/internal/charts"
)

var (
	reportDays int
	reportPNG  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print analytics reports",
}

var reportHourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Print the hourly transaction pattern as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportDays < 0 {
			return fmt.Errorf("--days cannot be negative")
		}

		report, err := getApp().HourlyReport(cmd.Context(), reportDays)
		if err != nil {
			return err
		}

		if reportPNG != "" {
			f, err := os.Create(reportPNG)
			if err != nil {
				return fmt.Errorf("create %s: %w", reportPNG, err)
			}
			defer f.Close()
			if err := charts.RenderHourly(f, report); err != nil {
				return err
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	reportHourlyCmd.Flags().IntVar(&reportDays, "days", 0, "Only consider the last N days (0 = whole history)")
	reportHourlyCmd.Flags().StringVar(&reportPNG, "png", "", "Also write the chart to this PNG file")
	reportCmd.AddCommand(reportHourlyCmd)
}
