package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driven"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driving"
	"github.com/custodia-labs/lakeseed/internal/generators"
	"github.com/custodia-labs/lakeseed/internal/logger"
)

// Ensure Seeder implements the interface.
var _ driving.Seeder = (*Seeder)(nil)

// Artifact names used as the final key segment.
const (
	ArtifactStrategyCasesChecklist = "strategy_cases_checklist"
	ArtifactMemoryGuideline        = "memory_guideline"

	ArtifactMarketSnapshot    = "market_snapshot"
	ArtifactPortfolioSnapshot = "portfolio_snapshot"
	ArtifactDecision          = "trading_agent_decision"
	ArtifactExecutions        = "executions"
	artifactTradeMemoryPrefix = "memory_update_snapshot_trade_memory_"

	ArtifactEpisodeTrades              = "episode_trades"
	ArtifactMetrics                    = "metrics"
	ArtifactFeedback                   = "feedback_agent"
	ArtifactStrategyUpdateAgent        = "strategy_update_agent"
	ArtifactMemoryGuidelineUpdateAgent = "memory_guideline_update_agent"
)

// Payload fields wrapping list-valued documents.
const (
	FieldExecutionsData = "executions_data"
	FieldTradesData     = "trades_data"
)

// Seeding phases, used in error messages and logs.
const (
	phaseReset   = "reset"
	phaseCentral = "central memory"
	phaseDaily   = "daily snapshots"
	phaseEpisode = "episode metadata"
)

// TradeMemoryArtifact returns the artifact name for a trade memory period.
func TradeMemoryArtifact(p generators.MemoryPeriod) string {
	return artifactTradeMemoryPrefix + string(p)
}

// SeederOption configures a Seeder.
type SeederOption func(*Seeder)

// WithSeederClock overrides the timestamp source used when wall clock mode
// is enabled.
func WithSeederClock(now func() time.Time) SeederOption {
	return func(s *Seeder) {
		s.now = now
	}
}

// WithMarketData supplies adapter input for market snapshots. Without it,
// adapter mode reads settings.Market.DataFile the first time a department is
// generated.
func WithMarketData(md domain.MarketData) SeederOption {
	return func(s *Seeder) {
		s.market = md
	}
}

// Seeder resets and populates every department store.
type Seeder struct {
	registry driven.StoreRegistry
	settings domain.SeedSettings
	now      func() time.Time

	marketMu sync.Mutex
	market   domain.MarketData
}

// NewSeeder creates a seeder writing through the given registry.
func NewSeeder(registry driven.StoreRegistry, settings domain.SeedSettings, opts ...SeederOption) *Seeder {
	s := &Seeder{
		registry: registry,
		settings: settings,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed resets and regenerates every department, then reports the counts.
func (s *Seeder) Seed(ctx context.Context) (*domain.SeedReport, error) {
	if err := s.settings.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	ep := s.settings.Run.Episode
	logger.Section("Seed run " + runID)
	logger.Info("Episode: date=%s loop=%d episode=%d, departments=%d",
		ep.DateString(), ep.Loop, ep.Episode, len(domain.Departments()))

	if s.settings.Run.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for _, dept := range domain.Departments() {
			g.Go(func() error {
				return s.SeedDepartment(gctx, dept)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, dept := range domain.Departments() {
			if err := s.SeedDepartment(ctx, dept); err != nil {
				return nil, err
			}
		}
	}

	report, err := s.Counts(ctx)
	if err != nil {
		return nil, err
	}
	report.RunID = runID
	logger.Info("Seed run %s complete: %d documents", runID, report.Total())
	return report, nil
}

// SeedDepartment resets one department and writes all of its documents.
func (s *Seeder) SeedDepartment(ctx context.Context, dept domain.Department) error {
	store, err := s.registry.Store(dept)
	if err != nil {
		return fmt.Errorf("%s: open store: %w", dept, err)
	}

	gen, err := s.generator(dept)
	if err != nil {
		return fmt.Errorf("%s: %w", dept, err)
	}
	defer logger.Timed(dept.String())()

	phases := []struct {
		name string
		run  func(context.Context, driven.DocumentStore, *generators.Generator) error
	}{
		{phaseReset, func(ctx context.Context, st driven.DocumentStore, _ *generators.Generator) error {
			return ResetDepartment(ctx, st)
		}},
		{phaseCentral, s.seedCentralMemory},
		{phaseDaily, s.seedDailySnapshots},
		{phaseEpisode, s.seedEpisodeMeta},
	}

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %s: %w", dept, p.name, err)
		}
		if err := p.run(ctx, store, gen); err != nil {
			return fmt.Errorf("%s: %s: %w", dept, p.name, err)
		}
		logger.Debug("%s: %s done", dept, p.name)
	}

	logger.Info("%s: seeded", dept)
	return nil
}

// Clear empties every department store.
func (s *Seeder) Clear(ctx context.Context) error {
	for _, dept := range domain.Departments() {
		store, err := s.registry.Store(dept)
		if err != nil {
			return fmt.Errorf("%s: open store: %w", dept, err)
		}
		if err := ResetDepartment(ctx, store); err != nil {
			return fmt.Errorf("%s: %s: %w", dept, phaseReset, err)
		}
		logger.Info("%s: cleared", dept)
	}
	return nil
}

// Counts reports current per-collection document counts.
func (s *Seeder) Counts(ctx context.Context) (*domain.SeedReport, error) {
	report := &domain.SeedReport{
		Episode:     s.settings.Run.Episode,
		Departments: make([]domain.DepartmentCounts, 0, len(domain.Departments())),
	}

	for _, dept := range domain.Departments() {
		store, err := s.registry.Store(dept)
		if err != nil {
			return nil, fmt.Errorf("%s: open store: %w", dept, err)
		}

		counts := domain.DepartmentCounts{
			Department:  dept,
			Collections: make(map[domain.Collection]int, len(domain.Collections())),
		}
		for _, c := range domain.Collections() {
			n, err := store.Count(ctx, c)
			if err != nil {
				return nil, fmt.Errorf("%s: count %s: %w", dept, c, err)
			}
			counts.Collections[c] = n
		}
		report.Departments = append(report.Departments, counts)
	}

	return report, nil
}

// Get retrieves one stored document.
func (s *Seeder) Get(
	ctx context.Context,
	dept domain.Department,
	collection domain.Collection,
	key string,
) (domain.Fields, error) {
	if !collection.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
	store, err := s.registry.Store(dept)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, collection, key)
}

// ResetDepartment drops all collections of one department store.
func ResetDepartment(ctx context.Context, store driven.DocumentStore) error {
	var errs []error
	for _, c := range domain.Collections() {
		if err := store.Drop(ctx, c); err != nil {
			errs = append(errs, fmt.Errorf("drop %s: %w", c, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Seeder) generator(dept domain.Department) (*generators.Generator, error) {
	clock := s.now
	if !s.settings.Run.WallClock {
		asOf := s.settings.Run.AsOf()
		clock = func() time.Time { return asOf }
	}

	opts := []generators.Option{
		generators.WithClock(clock),
		generators.WithRand(generators.NewRand(s.settings.Run.RandomSeed, dept)),
	}
	if s.settings.Market.Mode == domain.MarketModeAdapter {
		md, err := s.marketData()
		if err != nil {
			return nil, err
		}
		opts = append(opts, generators.WithMarketData(md))
	}
	return generators.New(dept, s.settings.Run.Episode, opts...)
}

// marketData returns the adapter input, loading the data file once.
func (s *Seeder) marketData() (domain.MarketData, error) {
	s.marketMu.Lock()
	defer s.marketMu.Unlock()

	if s.market == nil {
		md, err := generators.LoadMarketData(s.settings.Market.DataFile)
		if err != nil {
			return nil, err
		}
		s.market = md
	}
	return s.market, nil
}

func (s *Seeder) seedCentralMemory(ctx context.Context, store driven.DocumentStore, gen *generators.Generator) error {
	checklist, err := gen.StrategyCasesChecklist()
	if err != nil {
		return err
	}
	guideline, err := gen.MemoryGuideline()
	if err != nil {
		return err
	}

	docs := []struct {
		artifact string
		payload  domain.Fields
	}{
		{ArtifactStrategyCasesChecklist, checklist},
		{ArtifactMemoryGuideline, guideline},
	}
	for _, d := range docs {
		path := domain.NewPath(d.artifact)
		if err := s.write(ctx, store, domain.CollectionCentralMemory, path, nil, d.payload); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedDailySnapshots(ctx context.Context, store driven.DocumentStore, gen *generators.Generator) error {
	ep := s.settings.Run.Episode
	daily := domain.DailyContext(ep)

	market, err := gen.MarketSnapshot(s.settings.Market.Mode)
	if err != nil {
		return err
	}

	docs := []struct {
		artifact string
		payload  domain.Fields
	}{
		{ArtifactMarketSnapshot, market},
		{ArtifactPortfolioSnapshot, gen.PortfolioSnapshot()},
		{ArtifactDecision, gen.Decision(gen.StrategyID())},
		{ArtifactExecutions, domain.Fields{FieldExecutionsData: gen.Executions()}},
	}
	for _, p := range generators.MemoryPeriods() {
		memory, err := gen.TradeMemory(p)
		if err != nil {
			return err
		}
		docs = append(docs, struct {
			artifact string
			payload  domain.Fields
		}{TradeMemoryArtifact(p), memory})
	}

	for _, d := range docs {
		path := domain.NewPath(ep.Date, ep.Loop, ep.Episode, d.artifact)
		if err := s.write(ctx, store, domain.CollectionDailySnapshots, path, daily, d.payload); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedEpisodeMeta(ctx context.Context, store driven.DocumentStore, gen *generators.Generator) error {
	ep := s.settings.Run.Episode
	episodeCtx := domain.EpisodeContext(ep)

	docs := []struct {
		artifact string
		payload  domain.Fields
	}{
		{ArtifactEpisodeTrades, domain.Fields{FieldTradesData: gen.EpisodeTrades()}},
		{ArtifactMetrics, gen.Metrics()},
		{ArtifactFeedback, gen.Feedback()},
		{ArtifactStrategyUpdateAgent, gen.StrategyUpdateAgentConfig()},
		{ArtifactMemoryGuidelineUpdateAgent, gen.MemoryGuidelineUpdateAgentConfig()},
	}
	for _, d := range docs {
		path := domain.NewPath(ep.Loop, ep.Episode, d.artifact)
		if err := s.write(ctx, store, domain.CollectionEpisodesMeta, path, episodeCtx, d.payload); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) write(
	ctx context.Context,
	store driven.DocumentStore,
	collection domain.Collection,
	path domain.Path,
	shared domain.Fields,
	payload domain.Fields,
) error {
	key, err := collection.Key(path)
	if err != nil {
		return fmt.Errorf("key for %s: %w", collection, err)
	}

	doc := domain.Document{
		ID:         key,
		Collection: collection,
		Context:    shared,
		Payload:    payload,
	}
	if err := store.Upsert(ctx, collection, key, doc.Fields()); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", collection, key, err)
	}
	return nil
}
