package models

import "time"

// PortfolioOptimizationRequest is the body of POST /api/v1/portfolio/optimize.
type PortfolioOptimizationRequest struct {
	Capital       float64 `json:"capital"`
	RiskTolerance string  `json:"risk_tolerance"` // conservative, moderate, aggressive
	TargetReturn  float64 `json:"target_return"`
}

// AssetAllocation is one position within a portfolio.
type AssetAllocation struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"` // "traditional" or "green"
	Allocation     float64 `json:"allocation"`
	Value          float64 `json:"value"`
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
	AnnualCO2Tons  float64 `json:"annual_co2_tons"`
	ESGRating      string  `json:"esg_rating,omitempty"`
	SDGAligned     bool    `json:"sdg_aligned,omitempty"`
}

// Portfolio is a fully allocated portfolio with derived metrics.
type Portfolio struct {
	PortfolioType         string            `json:"portfolio_type"`
	TotalValue            float64           `json:"total_value"`
	Assets                []AssetAllocation `json:"assets"`
	ExpectedReturn        float64           `json:"expected_return"`
	Volatility            float64           `json:"volatility"`
	SharpeRatio           float64           `json:"sharpe_ratio"`
	AnnualCarbonFootprint float64           `json:"annual_carbon_footprint"`
	NeutralityYears       float64           `json:"carbon_neutrality_timeline_years,omitempty"`
	SDGAlignmentScore     float64           `json:"sdg_alignment_score,omitempty"`
}

// CarbonComparison compares the carbon footprint of two portfolios.
type CarbonComparison struct {
	TraditionalEmissionsTons float64 `json:"traditional_emissions_tons"`
	GreenEmissionsTons       float64 `json:"green_emissions_tons"`
	ReductionTons            float64 `json:"reduction_tons"`
	ReductionPercentage      float64 `json:"reduction_percentage"`
	NetZeroTimelineYears     float64 `json:"net_zero_timeline_years"`
}

// PortfolioPair is the response of POST /api/v1/portfolio/optimize.
type PortfolioPair struct {
	RequestID        string           `json:"request_id,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
	Traditional      Portfolio        `json:"traditional_portfolio"`
	Green            Portfolio        `json:"green_portfolio"`
	CarbonComparison CarbonComparison `json:"carbon_comparison"`
	Recommendation   string           `json:"recommendations"`
	Status           string           `json:"status"`
}
