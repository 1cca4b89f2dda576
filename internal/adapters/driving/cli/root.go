package cli

import (
	"github.com/spf13/cobra"

	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driving"
	"github.com/brandstat-labs/brandstat-cli/internal/core/services"
	"github.com/brandstat-labs/brandstat-cli/internal/logger"
	"github.com/brandstat-labs/brandstat-cli/internal/presenters/texttable"
	"github.com/brandstat-labs/brandstat-cli/internal/readers/csvfile"
	"github.com/brandstat-labs/brandstat-cli/internal/reports"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configPath  string
)

// Injected dependencies. Wired with real implementations on first
// execute; tests swap in mocks.
var (
	reportRunner driving.ReportRunner
	registry     driven.ReportRegistry
)

var rootCmd = &cobra.Command{
	Use:   "brandstat",
	Short: "Brand rating reports from product CSV files",
	Long: `brandstat consolidates product CSV files (name, brand, price, rating),
aggregates per-brand statistics and prints a sorted table.

Input files must carry exactly the columns name, brand, price and
rating, in any order and casing, encoded as UTF-8 or CP1251.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
		wireDefaults()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.brandstat/config.toml)")
}

// Execute runs the root command. The caller maps a returned error to
// the process exit contract.
func Execute() error {
	return rootCmd.Execute()
}

func wireDefaults() {
	if registry == nil {
		registry = reports.NewDefaultRegistry()
	}
	if reportRunner == nil {
		reportRunner = services.NewReportService(csvfile.New(), registry, texttable.New())
	}
}
