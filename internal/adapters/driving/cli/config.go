package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage seeding configuration",
	Long: `View and change the settings used for seeding runs.

Settings are stored in config.toml under the config directory. Flags such
as --backend override them for a single run.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration key",
	Long: `Store a single configuration key.

Run 'lakeseed config keys' to list recognised keys.

Example:
  lakeseed config set storage.backend memory
  lakeseed config set seed.date 2025-07-01`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognised configuration keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(titleStyle.Render("Current Settings"))
	cmd.Println(mutedStyle.Render(svc.Path()))
	cmd.Println()

	cmd.Println(headerStyle.Render("[Storage]"))
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	switch settings.Storage.Backend {
	case domain.BackendSQLite:
		dir := settings.Storage.SQLiteDir
		if dir == "" {
			dir = "(default)"
		}
		cmd.Printf("  Directory: %s\n", dir)
	case domain.BackendMongo:
		cmd.Printf("  URI: %s\n", settings.Storage.MongoURI)
	case domain.BackendRedis:
		cmd.Printf("  Address: %s\n", settings.Storage.RedisAddr)
		cmd.Printf("  Prefix: %s\n", settings.Storage.RedisPrefix)
	}
	cmd.Println()

	run := settings.Run
	cmd.Println(headerStyle.Render("[Seed]"))
	cmd.Printf("  Date: %s\n", run.Episode.DateString())
	cmd.Printf("  Loop: %d\n", run.Episode.Loop)
	cmd.Printf("  Episode: %d\n", run.Episode.Episode)
	cmd.Printf("  Random seed: %d\n", run.RandomSeed)
	cmd.Printf("  Wall clock: %s\n", yesNo(run.WallClock))
	cmd.Printf("  Parallel: %s\n", yesNo(run.Parallel))
	cmd.Println()

	cmd.Println(headerStyle.Render("[Market]"))
	cmd.Printf("  Mode: %s\n", settings.Market.Mode.Description())
	if settings.Market.Mode == domain.MarketModeAdapter {
		cmd.Printf("  Data file: %s\n", settings.Market.DataFile)
	}
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}
	cmd.Println(strings.Join(svc.Keys(), "\n"))
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
