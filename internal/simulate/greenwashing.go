package simulate

import (
	"time"

	"github.com/greenpulse/greenpulse/internal/models"
)

// GreenwashingIndicators are the drawn observations a greenwashing check
// evaluates its rules against.
type GreenwashingIndicators struct {
	EnvironmentalScore float64
	TotalCO2Tons       float64
	RenewablePct       float64
	Trend              float64
}

// CheckGreenwashing fabricates a greenwashing report for a company.
func CheckGreenwashing(src *Source, companyID string) models.GreenwashingReport {
	indicators := GreenwashingIndicators{
		EnvironmentalScore: round2(src.Float64Between(50, 95)),
		TotalCO2Tons:       round2(src.Float64Between(500, 4000)),
		RenewablePct:       round2(src.Float64Between(10, 70)),
		Trend:              round3(src.Float64Between(-0.1, 0.1)),
	}
	noise := src.IntBetween(0, 20)
	confidence := round2(src.Float64Between(0.75, 0.95))

	return BuildGreenwashingReport(companyID, indicators, noise, confidence)
}

// BuildGreenwashingReport evaluates the anomaly rules over drawn indicators and
// assembles the report. noise is the random 0-20 component of the risk index.
func BuildGreenwashingReport(companyID string, ind GreenwashingIndicators, noise int, confidence float64) models.GreenwashingReport {
	anomalies, riskFactors := EvaluateAnomalies(ind)

	riskIndex := riskFactors*15 + noise
	if riskIndex > 100 {
		riskIndex = 100
	}

	return models.GreenwashingReport{
		CompanyID:       companyID,
		Timestamp:       time.Now().UTC(),
		RiskIndex:       riskIndex,
		RiskLevel:       GreenwashingRiskLevel(riskIndex),
		Anomalies:       anomalies,
		AnomalyCount:    len(anomalies),
		Recommendations: greenwashingRecommendations(riskIndex),
		Confidence:      confidence,
		Status:          "success",
	}
}

// EvaluateAnomalies runs the three independent rule checks. Each triggered rule
// appends an anomaly and contributes its fixed weight to the risk-factor count.
func EvaluateAnomalies(ind GreenwashingIndicators) ([]models.Anomaly, int) {
	anomalies := []models.Anomaly{}
	riskFactors := 0

	if ind.EnvironmentalScore > 80 && ind.TotalCO2Tons > 3000 {
		anomalies = append(anomalies, models.Anomaly{
			Type:        "high_score_high_emissions",
			Description: "Environmental score is high but emissions are substantial",
			Severity:    "medium",
		})
		riskFactors += 2
	}
	if ind.EnvironmentalScore > 70 && ind.RenewablePct < 20 {
		anomalies = append(anomalies, models.Anomaly{
			Type:        "score_renewable_mismatch",
			Description: "High environmental score but low renewable energy usage",
			Severity:    "high",
		})
		riskFactors += 3
	}
	if ind.Trend > 0.05 && ind.EnvironmentalScore > 75 {
		anomalies = append(anomalies, models.Anomaly{
			Type:        "increasing_emissions_high_score",
			Description: "Emissions increasing while maintaining high environmental score",
			Severity:    "high",
		})
		riskFactors += 3
	}

	return anomalies, riskFactors
}

// GreenwashingRiskLevel buckets a risk index into a discrete level.
func GreenwashingRiskLevel(riskIndex int) string {
	switch {
	case riskIndex > 60:
		return "high"
	case riskIndex > 30:
		return "moderate"
	default:
		return "low"
	}
}

// Recommendation bands are cumulative: an index above 50 collects the >50 items
// and the >30 item.
func greenwashingRecommendations(riskIndex int) []string {
	recs := []string{}
	if riskIndex > 50 {
		recs = append(recs,
			"Request third-party verification of carbon claims",
			"Conduct detailed supply chain emissions audit",
		)
	}
	if riskIndex > 30 {
		recs = append(recs, "Monitor emissions data more frequently")
	} else {
		recs = append(recs, "No immediate action required; continue routine disclosure monitoring")
	}
	return recs
}
