package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lakeseed/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage"
	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driving"
	"github.com/custodia-labs/lakeseed/internal/core/services"
	"github.com/custodia-labs/lakeseed/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services used by commands. Built on first use from flags and config;
// tests replace them with mocks.
var (
	seeder          driving.Seeder
	settingsService driving.SettingsService
	closeStores     func() error
)

// Root flags.
var (
	verbose        bool
	configDir      string
	noConfig       bool
	backendFlag    string
	marketDataFlag string
	parallelFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "lakeseed",
	Short: "Seed the trading research data lake with fixture documents",
	Long: `lakeseed resets and populates one document store per research department
(Trend_Analyst, Mean-Reversion_Specialist, Volatility_Scout, Fundamental_Reader,
News-Sentiment_Reader) with deterministic synthetic documents.

Run without a subcommand to clear every department store, seed all
departments and print a summary.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print progress for each department and phase")
	flags.StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.lakeseed)")
	flags.BoolVar(&noConfig, "no-config", false, "ignore config.toml and use defaults plus flags")
	flags.StringVar(&backendFlag, "backend", "", "document store backend: memory, sqlite, mongo or redis")
	flags.StringVar(&marketDataFlag, "market-data", "", "JSON market data file; switches market snapshots to adapter mode")
	flags.BoolVar(&parallelFlag, "parallel", false, "seed departments concurrently")
}

// Execute runs the root command and releases any opened store.
func Execute() error {
	err := rootCmd.Execute()
	if closeStores != nil {
		if cerr := closeStores(); cerr != nil && err == nil {
			err = fmt.Errorf("closing stores: %w", cerr)
		}
		closeStores = nil
	}
	return err
}

func runSeed(cmd *cobra.Command, _ []string) error {
	s, err := getSeeder(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	cmd.Println("Clearing department stores...")
	if err := s.Clear(ctx); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	cmd.Printf("Seeding %d departments...\n", len(domain.Departments()))
	report, err := s.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	renderReport(cmd, report)
	return nil
}

// getSettingsService returns the configured settings service, opening the
// TOML config store on first use. With --no-config an in-memory store is used
// and nothing is read from or written to disk.
func getSettingsService() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if noConfig {
		settingsService = services.NewSettingsService(memory.NewConfigStore())
		return settingsService, nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService = services.NewSettingsService(store)
	return settingsService, nil
}

// resolveSettings reads configured settings and applies flag overrides.
func resolveSettings(cmd *cobra.Command) (*domain.SeedSettings, error) {
	svc, err := getSettingsService()
	if err != nil {
		return nil, err
	}
	settings, err := svc.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		settings.Storage.Backend = domain.Backend(backendFlag)
	}
	if flags.Changed("market-data") {
		settings.Market.Mode = domain.MarketModeAdapter
		settings.Market.DataFile = marketDataFlag
	}
	if flags.Changed("parallel") {
		settings.Run.Parallel = parallelFlag
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// getSeeder returns the seeding service, opening the configured backend on
// first use. Adapter market data is read by the seeder only when it
// generates, so read-only commands work without the data file.
func getSeeder(cmd *cobra.Command) (driving.Seeder, error) {
	if seeder != nil {
		return seeder, nil
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	registry, err := storage.Open(ctx, settings.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", settings.Storage.Backend, err)
	}

	closeStores = registry.Close
	seeder = services.NewSeeder(registry, *settings)
	return seeder, nil
}

// parseDepartmentArg accepts a department name from the command line.
func parseDepartmentArg(arg string) (domain.Department, error) {
	dept, err := domain.ParseDepartment(arg)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownDepartment) {
			return "", fmt.Errorf("%w: %q (run 'lakeseed status' to list departments)", domain.ErrUnknownDepartment, arg)
		}
		return "", err
	}
	return dept, nil
}
