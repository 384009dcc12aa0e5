package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingForBands(t *testing.T) {
	cases := []struct {
		combined float64
		rating   string
		rateAdj  float64
	}{
		{85, "AAA", -0.02},
		{72, "AA", -0.01},
		{61, "A", 0},
		{55, "BBB", 0.01},
		{40, "BB", 0.02},
		// Boundary values map to the upper band, not the adjacent one.
		{80, "AAA", -0.02},
		{70, "AA", -0.01},
		{60, "A", 0},
		{50, "BBB", 0.01},
		{49.99, "BB", 0.02},
	}
	for _, tc := range cases {
		rating, adj := RatingFor(tc.combined)
		assert.Equal(t, tc.rating, rating, "combined=%v", tc.combined)
		assert.Equal(t, tc.rateAdj, adj, "combined=%v", tc.combined)
	}
}

func TestBuildCreditResultKnownDraws(t *testing.T) {
	res := BuildCreditResult("ACME", "company", 90, 85, 80)

	assert.Equal(t, 88.0, res.CreditRating.CombinedScore)
	assert.Equal(t, "AAA", res.CreditRating.Rating)
	assert.Equal(t, -0.02, res.CreditRating.InterestRateAdjustment)
	assert.Equal(t, "success", res.Status)

	// 0.5*90 + 0.3*85 + 0.2*80 = 86.5
	assert.Equal(t, 86.5, res.RiskAnalysis.CompositeScore)
	assert.Equal(t, "low_risk", res.RiskAnalysis.RiskCategory)
	assert.Equal(t, 775, res.RiskAnalysis.CreditScore)

	// High carbon and combined scores trigger no recommendations.
	assert.Empty(t, res.Recommendations)
}

func TestBuildCreditResultLowScores(t *testing.T) {
	res := BuildCreditResult("ACME", "company", 50, 45, 52)

	// 0.6*50 + 0.4*45 = 48 -> BB, +2% premium.
	assert.Equal(t, "BB", res.CreditRating.Rating)
	assert.Equal(t, 0.02, res.CreditRating.InterestRateAdjustment)

	// carbon < 60 yields both carbon templates, combined < 60 adds the ESG one.
	require.Len(t, res.Recommendations, 3)

	assert.Equal(t, "concerning", res.RiskAnalysis.Traditional.DefaultHistory)
	assert.Equal(t, "high", res.RiskAnalysis.Carbon.EmissionIntensity)
	assert.Equal(t, "high", res.RiskAnalysis.Carbon.StrandedAssetRisk)
}

func TestAssessCreditScoreRanges(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 200; i++ {
		res := AssessCredit(src, "ent", "company")

		for name, score := range map[string]float64{
			"traditional": res.CreditRating.TraditionalScore,
			"carbon":      res.CarbonScore,
			"esg":         res.ESGScore,
			"combined":    res.CreditRating.CombinedScore,
			"composite":   res.RiskAnalysis.CompositeScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 100.0, name)
		}
	}
}

func TestAssessCreditReproducible(t *testing.T) {
	a := AssessCredit(NewSource(42), "ACME", "company")
	b := AssessCredit(NewSource(42), "ACME", "company")

	assert.Equal(t, a.CreditRating, b.CreditRating)
	assert.Equal(t, a.RiskAnalysis, b.RiskAnalysis)
	assert.Equal(t, a.Recommendations, b.Recommendations)
}

func TestConvertToCreditScoreRange(t *testing.T) {
	assert.Equal(t, 300, ConvertToCreditScore(0))
	assert.Equal(t, 850, ConvertToCreditScore(100))
	assert.Equal(t, 575, ConvertToCreditScore(50))
}
