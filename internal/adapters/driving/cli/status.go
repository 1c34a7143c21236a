package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show document counts per department",
	Long: `Report how many documents each department store holds in each
collection. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	s, err := getSeeder(cmd)
	if err != nil {
		return err
	}

	report, err := s.Counts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}

	renderReport(cmd, report)
	return nil
}
