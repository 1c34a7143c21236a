package generators

import (
	"fmt"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

type strategyCase struct {
	id         string
	name       string
	condition  string
	confidence float64
}

var strategyCases = map[domain.Department]strategyCase{
	domain.DepartmentTrendAnalyst: {
		id: "ma_cross_long", name: "MA golden cross trend following",
		condition: "MA5 > MA20", confidence: 0.75,
	},
	domain.DepartmentMeanReversionSpecialist: {
		id: "rsi_oversold_long", name: "RSI oversold reversal long",
		condition: "RSI14 < 30", confidence: 0.80,
	},
	domain.DepartmentVolatilityScout: {
		id: "bb_breakout_long", name: "Bollinger upper band breakout",
		condition: "Price > BB_Upper", confidence: 0.72,
	},
	domain.DepartmentFundamentalReader: {
		id: "halving_narrative_long", name: "Halving narrative accumulation",
		condition: "days_to_halving < 180", confidence: 0.85,
	},
	domain.DepartmentNewsSentimentReader: {
		id: "positive_news_spike_long", name: "Positive news spike long",
		condition: "sentiment_score > 0.8", confidence: 0.68,
	},
}

var styleGuides = map[domain.Department]string{
	domain.DepartmentTrendAnalyst:            "Record trend strength and persistence first.",
	domain.DepartmentMeanReversionSpecialist: "Record successful and failed reversals of overbought/oversold signals.",
	domain.DepartmentVolatilityScout:         "Record volatility expansion/contraction phases and their link to major events.",
	domain.DepartmentFundamentalReader:       "Record changes in on-chain data and macroeconomic indicators.",
	domain.DepartmentNewsSentimentReader:     "Record how major news and community reaction moved prices.",
}

// StrategyCasesChecklist returns the department's strategy case and
// pre-trade checklist.
func (g *Generator) StrategyCasesChecklist() (domain.Fields, error) {
	c, ok := strategyCases[g.dept]
	if !ok {
		return nil, fmt.Errorf("strategy case for %s: %w", g.dept, domain.ErrUnknownDepartment)
	}

	return domain.Fields{
		"version":    g.version("1"),
		"updated_at": g.timestamp(),
		"cases": []domain.Fields{
			{
				"id":                   c.id,
				"name":                 c.name,
				"condition":            c.condition,
				"confidence":           c.confidence,
				"predicted_scenario":   "Uptrend reversal or continuation likely",
				"recommended_response": "Scale in, take profit at 2.0 RR",
				"market":               "futures",
				"position_side":        "long",
				"preferred_action":     "long",
			},
		},
		"checklists": []domain.Fields{
			{
				"id":        "min_rr",
				"item":      "Risk/reward ratio >= 1.5",
				"metric":    "rr",
				"threshold": 1.5,
				"critical":  true,
			},
		},
	}, nil
}

// MemoryGuideline returns the department's memory-keeping rules.
func (g *Generator) MemoryGuideline() (domain.Fields, error) {
	style, ok := styleGuides[g.dept]
	if !ok {
		return nil, fmt.Errorf("style guide for %s: %w", g.dept, domain.ErrUnknownDepartment)
	}

	return domain.Fields{
		"version":             g.version("1"),
		"updated_at":          g.timestamp(),
		"short_memory_rule":   "Summarise the last 5 days of market events and PnL.",
		"mid_memory_rule":     "Analyse strategy wins and losses over the last 20 days.",
		"long_memory_rule":    "Track macro indicators and long-term trend over 60+ days.",
		"length_limit_tokens": 350,
		"style_guide":         style,
	}, nil
}
