package generators

import "github.com/custodia-labs/lakeseed/internal/core/domain"

var feedbackGrades = []string{"A", "B+", "B-", "C"}

// EpisodeTrades returns the trade ledger rows for the episode.
func (g *Generator) EpisodeTrades() []domain.Fields {
	ts := g.timestamp()
	return []domain.Fields{
		{
			"ts":               ts,
			"symbol":           "BTCUSDT",
			"position_side":    "long",
			"side":             "buy",
			"price":            60500.0,
			"qty":              0.10,
			"notional_usd":     6050.0,
			"order_type":       "limit",
			"fee":              0.03,
			"realized_pnl":     0.0,
			"cum_realized_pnl": 0.0,
			"slippage_pct":     0.0,
			"strategy_case_id": g.StrategyID(),
			"decision_ts":      ts,
			"loop":             g.episode.Loop,
			"episode":          g.episode.Episode,
		},
	}
}

// Metrics returns the episode performance metrics.
func (g *Generator) Metrics() domain.Fields {
	return domain.Fields{
		"episode_id":         g.episode.ID(),
		"start_ts":           g.episode.Date.AddDate(0, 0, -2).Format("2006-01-02") + "T23:00:00Z",
		"end_ts":             g.episode.DateString() + "T23:59:59Z",
		"total_realized_pnl": Round2(g.uniform(-50, 200)),
		"win_rate":           Round2(g.uniform(0.4, 0.7)),
		"sharpe_ratio":       Round2(g.uniform(0.5, 2.0)),
	}
}

// Feedback returns the feedback agent's episode summary.
func (g *Generator) Feedback() domain.Fields {
	return domain.Fields{
		"episode_id":   g.episode.ID(),
		"generated_at": g.timestamp(),
		"summary": domain.Fields{
			"overall_grade": feedbackGrades[g.rng.IntN(len(feedbackGrades))],
			"key_stat":      "PnL +102.5, Sharpe 1.43",
		},
		"problem_recognition": []string{},
		"hypotheses":          []string{},
		"recommendations":     domain.Fields{},
	}
}

// StrategyUpdateAgentConfig returns the strategy-update agent configuration.
func (g *Generator) StrategyUpdateAgentConfig() domain.Fields {
	return domain.Fields{
		"version":    g.version("strategy_update_agent_1"),
		"updated_at": g.timestamp(),
		"cases": []domain.Fields{
			{
				"id":                   "model_retrain_trigger",
				"name":                 "Model retrain trigger",
				"condition":            "SharpeRatio < 1.0 or PnL_Drop > 0.05",
				"confidence":           0.95,
				"predicted_scenario":   "Strategy performance degradation detected",
				"recommended_response": "Retrain and redeploy the strategy model",
				"market":               "n/a",
				"position_side":        "n/a",
				"preferred_action":     "retrain_strategy_model",
			},
		},
		"checklists": []domain.Fields{
			{
				"id":        "data_freshness_check",
				"item":      "Latest market data available",
				"metric":    "data_age_hours",
				"threshold": 24,
				"critical":  true,
			},
			{
				"id":        "compute_resource_check",
				"item":      "Compute available for retraining",
				"metric":    "cpu_utilization_pct",
				"threshold": 80,
				"critical":  false,
			},
		},
	}
}

// MemoryGuidelineUpdateAgentConfig returns the memory-guideline-update agent
// configuration.
func (g *Generator) MemoryGuidelineUpdateAgentConfig() domain.Fields {
	return domain.Fields{
		"version":             g.version("memory_guideline_update_agent_1"),
		"updated_at":          g.timestamp(),
		"short_memory_rule":   "Adjust short-term guidelines from the last 7 days of feedback.",
		"mid_memory_rule":     "Improve mid-term guidelines from problems recurring across 30 days of episodes.",
		"long_memory_rule":    "Set long-term direction from quarterly performance reviews.",
		"length_limit_tokens": 500,
		"style_guide":         "Keep guideline updates clear, concise and measurable.",
	}
}
