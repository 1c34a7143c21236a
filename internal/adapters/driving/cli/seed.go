package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [department]",
	Short: "Seed one department or all of them",
	Long: `Reset and regenerate department stores.

Without a department, every department is seeded exactly as running
lakeseed without a subcommand. With a department name, only that store is
reset and regenerated; other departments are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeedCmd,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeedCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runSeed(cmd, args)
	}

	dept, err := parseDepartmentArg(args[0])
	if err != nil {
		return err
	}

	s, err := getSeeder(cmd)
	if err != nil {
		return err
	}

	cmd.Printf("Seeding department: %s\n", dept)
	if err := s.SeedDepartment(cmd.Context(), dept); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	report, err := s.Counts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}
	for _, d := range report.Departments {
		if d.Department == dept {
			cmd.Printf("%s: %d documents\n", dept, d.Total())
		}
	}
	return nil
}
