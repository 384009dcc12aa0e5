package models

import "time"

// CreditAssessmentRequest is the body of POST /api/v1/credit/assess.
type CreditAssessmentRequest struct {
	EntityID   string `json:"entity_id"`
	EntityType string `json:"entity_type"` // "company" or "individual"
}

// TraditionalRisk holds the traditional financial risk sub-assessment.
type TraditionalRisk struct {
	RiskScore               float64 `json:"risk_score"`
	RevenueAssessment       string  `json:"revenue_assessment"`
	ProfitabilityAssessment string  `json:"profitability_assessment"`
	LeverageAssessment      string  `json:"leverage_assessment"`
	LiquidityAssessment     string  `json:"liquidity_assessment"`
	DefaultHistory          string  `json:"default_history"`
}

// CarbonRisk holds the carbon-related risk sub-assessment.
type CarbonRisk struct {
	CarbonRiskScore     float64 `json:"carbon_risk_score"`
	EmissionIntensity   string  `json:"emission_intensity"`
	TrendDirection      string  `json:"trend_direction"`
	TransitionReadiness string  `json:"transition_readiness"`
	RegulatoryRisk      string  `json:"regulatory_risk"`
	StrandedAssetRisk   string  `json:"stranded_asset_risk"`
}

// ESGRisk holds the ESG risk sub-assessment.
type ESGRisk struct {
	ESGRiskScore        float64 `json:"esg_risk_score"`
	EnvironmentalRating string  `json:"environmental_rating"`
	SocialRating        string  `json:"social_rating"`
	GovernanceRating    string  `json:"governance_rating"`
	ReputationalRisk    string  `json:"reputational_risk"`
}

// RiskAnalysis aggregates the three risk sub-assessments.
type RiskAnalysis struct {
	Traditional    TraditionalRisk `json:"traditional_risk"`
	Carbon         CarbonRisk      `json:"carbon_risk"`
	ESG            ESGRisk         `json:"esg_risk"`
	CompositeScore float64         `json:"composite_risk_score"`
	CreditScore    int             `json:"credit_score"` // 300-850 range
	RiskCategory   string          `json:"risk_category"`
}

// CreditRating is the final rating combining traditional and carbon metrics.
type CreditRating struct {
	Rating                 string  `json:"rating"` // AAA, AA, A, BBB, BB
	CombinedScore          float64 `json:"combined_score"`
	TraditionalScore       float64 `json:"traditional_score"`
	CarbonScore            float64 `json:"carbon_score"`
	InterestRateAdjustment float64 `json:"interest_rate_adjustment"`
}

// CreditAssessmentResult is the response of POST /api/v1/credit/assess.
type CreditAssessmentResult struct {
	RequestID       string       `json:"request_id,omitempty"`
	EntityID        string       `json:"entity_id"`
	EntityType      string       `json:"entity_type"`
	Timestamp       time.Time    `json:"timestamp"`
	CarbonScore     float64      `json:"carbon_score"`
	ESGScore        float64      `json:"esg_score"`
	RiskAnalysis    RiskAnalysis `json:"risk_analysis"`
	CreditRating    CreditRating `json:"credit_rating"`
	Recommendations []string     `json:"recommendations"`
	Status          string       `json:"status"`
}
