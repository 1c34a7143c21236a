// Package generators produces the synthetic payloads seeded into each
// department store.
//
// A Generator is bound to one department and one episode (date, loop,
// episode index). Each method returns the payload for one artifact type:
//
//   - Central memory: StrategyCasesChecklist, MemoryGuideline
//   - Daily snapshots: MarketSnapshot, PortfolioSnapshot, Decision,
//     Executions, TradeMemory
//   - Episode metadata: EpisodeTrades, Metrics, Feedback,
//     StrategyUpdateAgentConfig, MemoryGuidelineUpdateAgentConfig
//
// Generators do not know about document keys or stores; the seeding
// service wraps their output and writes it.
package generators
