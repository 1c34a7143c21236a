package generators

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/logger"
)

// indicatorField maps one adapter sub-key onto a compact snapshot field.
type indicatorField struct {
	family string
	keys   []string // first present key wins
	field  string
}

var indicatorFields = []indicatorField{
	{family: "RSI", keys: []string{"RSI-14"}, field: "rsi14"},
	{family: "MACD", keys: []string{"MACD-12-26-9", "MACDh-12-26-9"}, field: "macd"},
	{family: "MA", keys: []string{"MA-20"}, field: "ma20"},
	{family: "EMA", keys: []string{"EMA-20"}, field: "ema20"},
	{family: "ATR", keys: []string{"ATR-14"}, field: "atr14"},
}

// bollingerFields maps the 20-period BBANDS sub-keys.
var bollingerFields = []struct {
	key   string
	field string
}{
	{"BBU", "bb_upper"},
	{"BBL", "bb_lower"},
	{"BBM", "bb_middle"},
}

// MarketSnapshot returns the market state for the day. In dummy mode it
// uses built-in sample symbols; in adapter mode it projects the data given
// through WithMarketData.
func (g *Generator) MarketSnapshot(mode domain.MarketMode) (domain.Fields, error) {
	var symbols map[string]domain.Fields
	switch mode {
	case domain.MarketModeDummy:
		symbols = g.dummySymbols()
	case domain.MarketModeAdapter:
		symbols = ProjectSymbols(g.market)
	default:
		return nil, fmt.Errorf("%w: unknown market mode %q", domain.ErrInvalidSettings, mode)
	}

	return domain.Fields{
		"date":          g.episode.DateString(),
		"timestamp_utc": g.timestamp(),
		"symbols":       symbols,
		"research_reports": []string{
			"Glassnode Report (Summary): BTC futures open interest reaches 6-month high.",
		},
	}, nil
}

func (g *Generator) dummySymbols() map[string]domain.Fields {
	return map[string]domain.Fields{
		"BTCUSDT": {
			"p":     Round2(61234.5 + g.uniform(-100, 100)),
			"v":     34750.2,
			"rsi14": 62.1,
			"macd":  -45.3,
		},
		"ETHUSDT": {
			"p":     3412.7,
			"v":     18210.1,
			"rsi14": 58.8,
			"macd":  3.4,
		},
	}
}

// ProjectSymbols converts adapter market data into the snapshot's compact
// per-symbol schema. Price and volume are always present (zero when the
// source omits them); indicator fields appear only when the source supplied
// them. Unrecognised indicators, and families that are not objects, are
// ignored.
func ProjectSymbols(md domain.MarketData) map[string]domain.Fields {
	symbols := make(map[string]domain.Fields, len(md))

	for symbol, data := range md {
		entry := domain.Fields{
			"p": valueOr(data.ChartData, "close", 0.0),
			"v": valueOr(data.ChartData, "volume", 0.0),
		}

		for _, ind := range indicatorFields {
			values := data.Indicator(ind.family)
			for _, k := range ind.keys {
				if v, ok := values[k]; ok {
					entry[ind.field] = v
					break
				}
			}
		}

		if bb, ok := data.Indicator("BBANDS")["20"].(map[string]any); ok {
			for _, f := range bollingerFields {
				if v, ok := bb[f.key]; ok {
					entry[f.field] = v
				}
			}
		}

		symbols[symbol] = entry
	}

	return symbols
}

// LoadMarketData reads adapter input from a JSON file.
func LoadMarketData(path string) (domain.MarketData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading market data: %w", err)
	}

	var md domain.MarketData
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("parsing market data %s: %w", path, err)
	}

	logger.Debug("Loaded market data for %d symbols from %s", len(md), path)
	return md, nil
}

func valueOr(m map[string]any, key string, fallback any) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return fallback
}
