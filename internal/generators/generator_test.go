package generators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

var testEpisode = domain.Episode{
	Date:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	Loop:    12,
	Episode: 5,
}

var testNow = time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

func newTestGenerator(t *testing.T, dept domain.Department, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{
		WithClock(func() time.Time { return testNow }),
		WithRand(NewRand(42, dept)),
	}, opts...)
	g, err := New(dept, testEpisode, opts...)
	require.NoError(t, err)
	return g
}

func TestNew_UnknownDepartment(t *testing.T) {
	_, err := New(domain.Department("Astrologer"), testEpisode)

	assert.ErrorIs(t, err, domain.ErrUnknownDepartment)
}

func TestNew_DefaultsApplied(t *testing.T) {
	g, err := New(domain.DepartmentTrendAnalyst, testEpisode)

	require.NoError(t, err)
	assert.NotNil(t, g.rng)
	assert.NotNil(t, g.now)
	assert.Equal(t, domain.DepartmentTrendAnalyst, g.Department())
}

func TestStrategyID(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentVolatilityScout)

	assert.Equal(t, "strategy_volatility_scout_001", g.StrategyID())
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.123, 0.12},
		{0.125, 0.13},
		{-45.678, -45.68},
		{61234.5, 61234.5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 1e-9)
	}
}

func TestGenerator_SameSeedSameOutput(t *testing.T) {
	a := newTestGenerator(t, domain.DepartmentTrendAnalyst)
	b := newTestGenerator(t, domain.DepartmentTrendAnalyst)

	assert.Equal(t, a.Decision(a.StrategyID()), b.Decision(b.StrategyID()))
	assert.Equal(t, a.Metrics(), b.Metrics())
	assert.Equal(t, a.Feedback(), b.Feedback())
}

func TestNewRand_DependsOnDepartment(t *testing.T) {
	a := NewRand(42, domain.DepartmentTrendAnalyst)
	b := NewRand(42, domain.DepartmentVolatilityScout)

	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestTimestamp_UsesClock(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentTrendAnalyst)

	assert.Equal(t, "2025-06-30T23:59:59Z", g.timestamp())
}

func TestStrategyCasesChecklist_AllDepartments(t *testing.T) {
	for _, dept := range domain.Departments() {
		t.Run(dept.String(), func(t *testing.T) {
			g := newTestGenerator(t, dept)

			fields, err := g.StrategyCasesChecklist()

			require.NoError(t, err)
			assert.Equal(t, "2025-06-30_1", fields["version"])
			cases := fields["cases"].([]domain.Fields)
			require.Len(t, cases, 1)
			assert.NotEmpty(t, cases[0]["id"])
			assert.Len(t, fields["checklists"], 1)
		})
	}
}

func TestMemoryGuideline_PerDepartmentStyle(t *testing.T) {
	trend := newTestGenerator(t, domain.DepartmentTrendAnalyst)
	news := newTestGenerator(t, domain.DepartmentNewsSentimentReader)

	a, err := trend.MemoryGuideline()
	require.NoError(t, err)
	b, err := news.MemoryGuideline()
	require.NoError(t, err)

	assert.Equal(t, 350, a["length_limit_tokens"])
	assert.NotEqual(t, a["style_guide"], b["style_guide"])
}

func TestLookbackDays(t *testing.T) {
	want := map[MemoryPeriod]int{MemoryShort: 3, MemoryMid: 20, MemoryLong: 90}

	for _, p := range MemoryPeriods() {
		days, err := p.LookbackDays()
		require.NoError(t, err)
		assert.Equal(t, want[p], days)
	}
}

func TestTradeMemory_UnknownPeriod(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentTrendAnalyst)

	_, err := g.TradeMemory(MemoryPeriod("forever"))

	assert.ErrorIs(t, err, domain.ErrUnknownPeriod)
}

func TestTradeMemory_Fields(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentTrendAnalyst)

	fields, err := g.TradeMemory(MemoryMid)

	require.NoError(t, err)
	assert.Equal(t, "mid", fields["period"])
	assert.Equal(t, 20, fields["lookback_days"])
}

func TestDecision_QuantityInRange(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentMeanReversionSpecialist)

	for i := 0; i < 50; i++ {
		qty := g.Decision("s")["qty"].(float64)
		assert.GreaterOrEqual(t, qty, 0.05)
		assert.LessOrEqual(t, qty, 0.2)
		assert.InDelta(t, Round2(qty), qty, 1e-9)
	}
}

func TestExecutions_StableIDs(t *testing.T) {
	a := newTestGenerator(t, domain.DepartmentTrendAnalyst)
	b := newTestGenerator(t, domain.DepartmentTrendAnalyst)
	other := newTestGenerator(t, domain.DepartmentFundamentalReader)

	execA := a.Executions()[0]
	execB := b.Executions()[0]
	execOther := other.Executions()[0]

	assert.Equal(t, execA["order_id"], execB["order_id"])
	assert.NotEqual(t, execA["order_id"], execA["exec_id"])
	assert.NotEqual(t, execA["order_id"], execOther["order_id"])
	assert.Equal(t, "2025-06-30T09:18:02.317Z", execA["ts"])
}

func TestMetrics_Ranges(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentTrendAnalyst)

	m := g.Metrics()

	assert.Equal(t, "12_5", m["episode_id"])
	assert.Equal(t, "2025-06-28T23:00:00Z", m["start_ts"])
	assert.Equal(t, "2025-06-30T23:59:59Z", m["end_ts"])
	assert.GreaterOrEqual(t, m["win_rate"].(float64), 0.4)
	assert.LessOrEqual(t, m["win_rate"].(float64), 0.7)
	assert.GreaterOrEqual(t, m["sharpe_ratio"].(float64), 0.5)
	assert.LessOrEqual(t, m["sharpe_ratio"].(float64), 2.0)
}

func TestFeedback_GradeFromSet(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentNewsSentimentReader)

	summary := g.Feedback()["summary"].(domain.Fields)

	assert.Contains(t, feedbackGrades, summary["overall_grade"])
}

func TestAgentConfigs(t *testing.T) {
	g := newTestGenerator(t, domain.DepartmentTrendAnalyst)

	strategy := g.StrategyUpdateAgentConfig()
	guideline := g.MemoryGuidelineUpdateAgentConfig()

	assert.Len(t, strategy["checklists"], 2)
	assert.Equal(t, "model_retrain_trigger", strategy["cases"].([]domain.Fields)[0]["id"])
	assert.Equal(t, 500, guideline["length_limit_tokens"])
}
