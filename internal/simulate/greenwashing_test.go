package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAnomaliesRules(t *testing.T) {
	// Clean profile: no rules fire.
	anomalies, factors := EvaluateAnomalies(GreenwashingIndicators{
		EnvironmentalScore: 60, TotalCO2Tons: 1000, RenewablePct: 50, Trend: -0.05,
	})
	assert.Empty(t, anomalies)
	assert.Zero(t, factors)

	// All three rules fire.
	anomalies, factors = EvaluateAnomalies(GreenwashingIndicators{
		EnvironmentalScore: 85, TotalCO2Tons: 3500, RenewablePct: 15, Trend: 0.08,
	})
	require.Len(t, anomalies, 3)
	assert.Equal(t, 8, factors)
	assert.Equal(t, "high_score_high_emissions", anomalies[0].Type)
	assert.Equal(t, "medium", anomalies[0].Severity)
	assert.Equal(t, "high", anomalies[1].Severity)
	assert.Equal(t, "high", anomalies[2].Severity)
}

func TestBuildGreenwashingReportIndexClamped(t *testing.T) {
	// 8 factors * 15 + 20 noise = 140, clamped to 100.
	report := BuildGreenwashingReport("CORP", GreenwashingIndicators{
		EnvironmentalScore: 85, TotalCO2Tons: 3500, RenewablePct: 15, Trend: 0.08,
	}, 20, 0.9)

	assert.Equal(t, 100, report.RiskIndex)
	assert.Equal(t, "high", report.RiskLevel)
	assert.Equal(t, 3, report.AnomalyCount)
}

func TestGreenwashingRiskLevels(t *testing.T) {
	assert.Equal(t, "low", GreenwashingRiskLevel(0))
	assert.Equal(t, "low", GreenwashingRiskLevel(30))
	assert.Equal(t, "moderate", GreenwashingRiskLevel(31))
	assert.Equal(t, "moderate", GreenwashingRiskLevel(60))
	assert.Equal(t, "high", GreenwashingRiskLevel(61))
}

func TestRecommendationBandsAreCumulative(t *testing.T) {
	// Index 55 collects both the >50 items and the >30 item.
	report := BuildGreenwashingReport("CORP", GreenwashingIndicators{
		EnvironmentalScore: 72, TotalCO2Tons: 1000, RenewablePct: 15, Trend: 0,
	}, 10, 0.8) // 3 factors * 15 + 10 = 55
	require.Equal(t, 55, report.RiskIndex)
	assert.Len(t, report.Recommendations, 3)

	// A quiet index gets only the monitoring item.
	quiet := BuildGreenwashingReport("CORP", GreenwashingIndicators{
		EnvironmentalScore: 55, TotalCO2Tons: 800, RenewablePct: 40, Trend: -0.02,
	}, 5, 0.8)
	require.Equal(t, 5, quiet.RiskIndex)
	require.Len(t, quiet.Recommendations, 1)
	assert.Contains(t, quiet.Recommendations[0], "No immediate action")
}

func TestCheckGreenwashingRangesAndReproducibility(t *testing.T) {
	src := NewSource(13)
	for i := 0; i < 200; i++ {
		report := CheckGreenwashing(src, "CORP")
		assert.GreaterOrEqual(t, report.RiskIndex, 0)
		assert.LessOrEqual(t, report.RiskIndex, 100)
		assert.GreaterOrEqual(t, report.Confidence, 0.75)
		assert.LessOrEqual(t, report.Confidence, 0.95)
		assert.Equal(t, len(report.Anomalies), report.AnomalyCount)
	}

	a := CheckGreenwashing(NewSource(21), "CORP")
	b := CheckGreenwashing(NewSource(21), "CORP")
	assert.Equal(t, a.RiskIndex, b.RiskIndex)
	assert.Equal(t, a.Anomalies, b.Anomalies)
	assert.Equal(t, a.Recommendations, b.Recommendations)
}
