package generators

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

// MemoryPeriod is a trade memory horizon.
type MemoryPeriod string

// Available memory periods.
const (
	MemoryShort MemoryPeriod = "short"
	MemoryMid   MemoryPeriod = "mid"
	MemoryLong  MemoryPeriod = "long"
)

// MemoryPeriods returns all periods, shortest first.
func MemoryPeriods() []MemoryPeriod {
	return []MemoryPeriod{MemoryShort, MemoryMid, MemoryLong}
}

// LookbackDays returns the fixed lookback for the period.
func (p MemoryPeriod) LookbackDays() (int, error) {
	switch p {
	case MemoryShort:
		return 3, nil
	case MemoryMid:
		return 20, nil
	case MemoryLong:
		return 90, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownPeriod, string(p))
	}
}

// PortfolioSnapshot returns the account state at snapshot time.
func (g *Generator) PortfolioSnapshot() domain.Fields {
	return domain.Fields{
		"timestamp_utc": g.timestamp(),
		"cash":          20500.0,
		"positions": domain.Fields{
			"BTCUSDT": domain.Fields{
				"side":      "long",
				"qty":       0.25,
				"avg_entry": 61120.0,
				"leverage":  3,
			},
		},
		"pending_orders": []domain.Fields{},
	}
}

// Decision returns the trading agent's decision for the day.
func (g *Generator) Decision(strategyID string) domain.Fields {
	return domain.Fields{
		"ts":                    g.timestamp(),
		"symbol":                "BTCUSDT",
		"market":                "futures",
		"position_side":         "long",
		"side":                  "buy",
		"qty":                   Round2(g.uniform(0.05, 0.2)),
		"price":                 60500.0,
		"leverage":              3,
		"order_type":            "limit",
		"strategy_case_id":      strategyID,
		"decision_reason":       "Decision by " + string(g.dept),
		"comment":               "<ASSUMPTION: Market rebound>",
		"risk_reward":           2.4,
		"checklist_pass_rate":   0.83,
		"expected_drawdown_pct": 1.2,
	}
}

// Executions returns the fills for the day.
func (g *Generator) Executions() []domain.Fields {
	d := g.episode.Date
	ts := time.Date(d.Year(), d.Month(), d.Day(), 9, 18, 2, 317_000_000, time.UTC)

	return []domain.Fields{
		{
			"ts":            ts.Format(time.RFC3339Nano),
			"order_id":      g.stableID("order", 0),
			"exec_id":       g.stableID("exec", 0),
			"symbol":        "BTCUSDT",
			"position_side": "long",
			"side":          "buy",
			"price":         60500.0,
			"qty":           0.10,
			"fee":           0.030,
			"realized_pnl":  0.0,
			"status":        "filled",
		},
	}
}

// TradeMemory returns the memory summary for one horizon.
func (g *Generator) TradeMemory(period MemoryPeriod) (domain.Fields, error) {
	days, err := period.LookbackDays()
	if err != nil {
		return nil, err
	}

	return domain.Fields{
		"updated_at":     g.timestamp(),
		"period":         string(period),
		"lookback_days":  days,
		"market_summary": "Market is in a consolidation phase.",
		"strategy_notes": []string{},
		"risk_events":    "None",
		"keywords":       []string{},
	}, nil
}

// stableID derives an identifier that is the same on every run for the
// same department, date and sequence.
func (g *Generator) stableID(kind string, seq int) string {
	name := fmt.Sprintf("%s/%s/%s/%d", g.dept, g.episode.DateString(), kind, seq)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
