// Package refdata holds frozen reference tables used by the simulation engine.
// A real optimizer could replace the lookup without touching call sites.
package refdata

// AssetTemplate describes one asset class within a model allocation. BaselineCO2Tons
// is the per-class annual footprint before weighting by allocation.
type AssetTemplate struct {
	Name            string
	Allocation      float64
	ExpectedReturn  float64
	Volatility      float64
	BaselineCO2Tons float64
}

// Risk tiers accepted by the portfolio optimizer.
const (
	TierConservative = "conservative"
	TierModerate     = "moderate"
	TierAggressive   = "aggressive"
)

// Portfolio branches.
const (
	BranchTraditional = "traditional"
	BranchGreen       = "green"
)

var traditionalAllocations = map[string][]AssetTemplate{
	TierConservative: {
		{"Bonds", 0.60, 0.04, 0.05, 500},
		{"Large Cap Stocks", 0.25, 0.08, 0.15, 2000},
		{"Real Estate", 0.10, 0.06, 0.12, 1500},
		{"Cash", 0.05, 0.01, 0.02, 0},
	},
	TierModerate: {
		{"Index Funds", 0.40, 0.08, 0.15, 2000},
		{"Bonds", 0.30, 0.04, 0.06, 500},
		{"Stocks", 0.20, 0.10, 0.18, 2500},
		{"Alternatives", 0.10, 0.07, 0.20, 1800},
	},
	TierAggressive: {
		{"Growth Stocks", 0.50, 0.12, 0.25, 3000},
		{"Tech Stocks", 0.25, 0.15, 0.30, 2500},
		{"Emerging Markets", 0.15, 0.10, 0.28, 3500},
		{"Commodities", 0.10, 0.08, 0.22, 4000},
	},
}

var greenAllocations = map[string][]AssetTemplate{
	TierConservative: {
		{"Green Bonds", 0.50, 0.045, 0.06, 50},
		{"Renewable Energy Funds", 0.25, 0.07, 0.12, 100},
		{"ESG Index Funds", 0.15, 0.065, 0.10, 200},
		{"Sustainable Real Estate", 0.10, 0.055, 0.09, 150},
	},
	TierModerate: {
		{"ESG Equity Funds", 0.35, 0.085, 0.14, 180},
		{"Green Bonds", 0.30, 0.045, 0.06, 50},
		{"Renewable Infrastructure", 0.20, 0.075, 0.11, 120},
		{"Sustainable Agriculture", 0.15, 0.070, 0.13, 100},
	},
	TierAggressive: {
		{"Clean Tech Stocks", 0.40, 0.13, 0.24, 150},
		{"Solar Energy Companies", 0.25, 0.14, 0.26, 80},
		{"Electric Vehicle Sector", 0.20, 0.12, 0.23, 200},
		{"Carbon Credit Futures", 0.15, 0.10, 0.28, 50},
	},
}

// Tiers lists the known risk tiers.
func Tiers() []string {
	return []string{TierConservative, TierModerate, TierAggressive}
}

// Allocations returns the model allocation for a risk tier and branch. Unknown
// tiers fall back to moderate. The returned slice is a copy; callers may mutate it.
func Allocations(tier, branch string) []AssetTemplate {
	tables := traditionalAllocations
	if branch == BranchGreen {
		tables = greenAllocations
	}
	templates, ok := tables[tier]
	if !ok {
		templates = tables[TierModerate]
	}
	out := make([]AssetTemplate, len(templates))
	copy(out, templates)
	return out
}
