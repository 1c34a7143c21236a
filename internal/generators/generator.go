package generators

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

// Generator produces document payloads for one department and episode.
// Every randomised field is drawn from its PRNG, and every timestamp from
// its clock, so two generators built with the same inputs agree exactly.
type Generator struct {
	dept    domain.Department
	episode domain.Episode
	now     func() time.Time
	rng     *rand.Rand
	market  domain.MarketData
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRand sets the random source for randomised fields.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithMarketData supplies adapter input for MarketSnapshot in adapter mode.
func WithMarketData(md domain.MarketData) Option {
	return func(g *Generator) {
		g.market = md
	}
}

// New creates a generator for a department. Without options it uses the
// wall clock and a PRNG seeded from the department name.
func New(dept domain.Department, episode domain.Episode, opts ...Option) (*Generator, error) {
	if !dept.IsValid() {
		return nil, domain.ErrUnknownDepartment
	}

	g := &Generator{
		dept:    dept,
		episode: episode,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(0, dept)
	}
	return g, nil
}

// NewRand returns a PRNG whose stream depends only on seed and department.
func NewRand(seed uint64, dept domain.Department) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(dept))
	return rand.New(rand.NewPCG(seed, h.Sum64()))
}

// Department returns the department the generator serves.
func (g *Generator) Department() domain.Department {
	return g.dept
}

// StrategyID is the strategy case identifier decisions are attributed to.
func (g *Generator) StrategyID() string {
	return "strategy_" + strings.ToLower(string(g.dept)) + "_001"
}

func (g *Generator) timestamp() string {
	return g.now().UTC().Format(time.RFC3339Nano)
}

func (g *Generator) version(suffix string) string {
	return g.episode.DateString() + "_" + suffix
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
