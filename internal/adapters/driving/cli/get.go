package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

var getCmd = &cobra.Command{
	Use:   "get [department] [collection] [key]",
	Short: "Print one stored document as JSON",
	Long: `Fetch a single document from a department store.

Collections: central_memory, daily_snapshots, episodes_meta.

Example:
  lakeseed get Trend_Analyst central_memory memory_guideline`,
	Args: cobra.ExactArgs(3),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	dept, err := parseDepartmentArg(args[0])
	if err != nil {
		return err
	}
	collection, err := domain.ParseCollection(args[1])
	if err != nil {
		return err
	}

	s, err := getSeeder(cmd)
	if err != nil {
		return err
	}

	doc, err := s.Get(cmd.Context(), dept, collection, args[2])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
