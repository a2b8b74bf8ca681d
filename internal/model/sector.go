package model

// SectorGroup is the subset of valued holdings classified into one sector,
// with the sector's aggregate market value.
type SectorGroup struct {
	Sector     string          `json:"sector"`
	Holdings   []ValuedHolding `json:"holdings"`
	TotalValue float64         `json:"totalValue"`
}

// Rebalance actions.
const (
	ActionBuyMore         = "buy-more"
	ActionConsiderSelling = "consider-selling"
	ActionOnTarget        = "on-target"
	ActionNoTarget        = "no-target-set"
)

// RebalanceSuggestion describes how far one sector's current allocation sits
// from its target and what direction would close the gap.
type RebalanceSuggestion struct {
	Sector         string  `json:"sector"`
	CurrentPercent float64 `json:"currentPercent"`
	TargetPercent  float64 `json:"targetPercent"`
	DiffPercent    float64 `json:"diffPercent"` // target - current
	DiffValue      float64 `json:"diffValue"`
	Action         string  `json:"action"`
}

// PortfolioAnalysis is the output of the rule-based portfolio diagnostics:
// qualitative observations grouped by severity.
type PortfolioAnalysis struct {
	Insights        []string `json:"insights"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}
