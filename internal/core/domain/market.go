package domain

// MarketMode selects how market snapshots are produced.
type MarketMode string

// Available market modes.
const (
	// MarketModeDummy produces fixed, lightly randomised example values.
	MarketModeDummy MarketMode = "dummy"

	// MarketModeAdapter projects externally computed market data.
	MarketModeAdapter MarketMode = "adapter"
)

// IsValid returns true if the mode is recognised.
func (m MarketMode) IsValid() bool {
	switch m {
	case MarketModeDummy, MarketModeAdapter:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m MarketMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m MarketMode) Description() string {
	switch m {
	case MarketModeDummy:
		return "Dummy (built-in sample symbols)"
	case MarketModeAdapter:
		return "Adapter (external market data file)"
	default:
		return unknownDescription
	}
}

// MarketData is the upstream adapter input: symbol to chart data and
// technical indicators. It is treated as already validated.
type MarketData map[string]SymbolData

// SymbolData is the adapter payload for one symbol.
type SymbolData struct {
	// ChartData carries at least "close" and "volume".
	ChartData map[string]any `json:"chart_data"`

	// TechnicalIndicators maps an indicator family (RSI, MACD, BBANDS...) to
	// its named sub-values. Families that are not objects are kept but never
	// projected.
	TechnicalIndicators map[string]any `json:"technical_indicators"`
}

// Indicator returns the sub-values of one indicator family, or nil when the
// family is absent or not an object.
func (s SymbolData) Indicator(family string) map[string]any {
	values, _ := s.TechnicalIndicators[family].(map[string]any)
	return values
}
