package cli

import (
	"github.com/spf13/cobra"

	"github.com/brandstat-labs/brandstat-cli/internal/adapters/driven/config/file"
	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driving"
	"github.com/brandstat-labs/brandstat-cli/internal/core/services"
	"github.com/brandstat-labs/brandstat-cli/internal/logger"
	"github.com/brandstat-labs/brandstat-cli/internal/reports"
)

var (
	reportFiles  []string
	reportName   string
	reportSort   string
	reportLimit  int
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run a report over product CSV files",
	Long: `Reads the given CSV files, aggregates them with the selected report
and prints the resulting table to stdout.

Sort keys: brand (ascending), avg_rating and items (descending,
highest first). Ties break by brand. Brands without any rated
product sort last and show a placeholder instead of an average.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringSliceVarP(&reportFiles, "files", "f", nil, "input CSV files, read in order (required)")
	reportCmd.Flags().StringVar(&reportName, "report", "", `report name (default "average-rating")`)
	reportCmd.Flags().StringVar(&reportSort, "sort", "", "sort key: brand, avg_rating or items (default avg_rating)")
	reportCmd.Flags().IntVarP(&reportLimit, "limit", "n", 0, "maximum number of output rows")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "table format: github, ascii, grid, rounded or plain")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}

	sortName := firstOf(reportSort, defaults.Sort, string(domain.SortByAvgRating))
	key, err := domain.ParseSortKey(sortName)
	if err != nil {
		return err
	}

	req := driving.RunRequest{
		Files:       reportFiles,
		Report:      firstOf(reportName, defaults.Report, reports.AverageRatingName),
		Sort:        key,
		Format:      firstOf(reportFormat, defaults.Format, "github"),
		Placeholder: defaults.Placeholder,
	}

	if cmd.Flags().Changed("limit") {
		limit := reportLimit
		req.Limit = &limit
	} else {
		req.Limit = defaults.Limit
	}

	logger.Debug("run: %s", services.Describe(req))

	out, err := reportRunner.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	cmd.Println(out)
	return nil
}

func loadDefaults() (driven.RunDefaults, error) {
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return driven.RunDefaults{}, err
	}
	return store.Defaults(), nil
}

// firstOf returns the first non-empty value: flag, then config file,
// then built-in default.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
