package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List available report names",
	RunE:  runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, _ []string) error {
	if registry == nil {
		return errors.New("report registry not configured")
	}

	for _, name := range registry.Names() {
		cmd.Println(name)
	}
	return nil
}
