package simulate

import (
	"time"

	"github.com/greenpulse/greenpulse/internal/models"
)

// Score draw ranges for credit assessment.
const (
	traditionalScoreMin, traditionalScoreMax = 45.0, 95.0
	carbonScoreMin, carbonScoreMax           = 40.0, 92.0
	esgScoreMin, esgScoreMax                 = 50.0, 90.0
)

// AssessCredit fabricates a credit assessment for an entity. Three component
// scores are drawn; everything else is derived deterministically from them.
func AssessCredit(src *Source, entityID, entityType string) models.CreditAssessmentResult {
	traditional := round2(src.Float64Between(traditionalScoreMin, traditionalScoreMax))
	carbon := round2(src.Float64Between(carbonScoreMin, carbonScoreMax))
	esg := round2(src.Float64Between(esgScoreMin, esgScoreMax))

	return BuildCreditResult(entityID, entityType, traditional, carbon, esg)
}

// BuildCreditResult assembles the full assessment from already drawn component
// scores. Split out so the derivation can be exercised with fixed inputs.
func BuildCreditResult(entityID, entityType string, traditional, carbon, esg float64) models.CreditAssessmentResult {
	combined := round2(traditional*0.6 + carbon*0.4)
	rating, rateAdj := RatingFor(combined)

	// Composite risk blends all three components 50/30/20.
	composite := round2(traditional*0.5 + carbon*0.3 + esg*0.2)

	return models.CreditAssessmentResult{
		EntityID:    entityID,
		EntityType:  entityType,
		Timestamp:   time.Now().UTC(),
		CarbonScore: carbon,
		ESGScore:    esg,
		RiskAnalysis: models.RiskAnalysis{
			Traditional:    traditionalRiskLabels(traditional),
			Carbon:         carbonRiskLabels(carbon),
			ESG:            esgRiskLabels(esg),
			CompositeScore: composite,
			CreditScore:    ConvertToCreditScore(composite),
			RiskCategory:   RiskCategory(composite),
		},
		CreditRating: models.CreditRating{
			Rating:                 rating,
			CombinedScore:          combined,
			TraditionalScore:       traditional,
			CarbonScore:            carbon,
			InterestRateAdjustment: rateAdj,
		},
		Recommendations: creditRecommendations(carbon, combined),
		Status:          "success",
	}
}

// RatingFor maps a combined score to a rating band and its interest-rate
// adjustment. Bands are inclusive on their lower bound.
func RatingFor(combined float64) (string, float64) {
	switch {
	case combined >= 80:
		return "AAA", -0.02
	case combined >= 70:
		return "AA", -0.01
	case combined >= 60:
		return "A", 0
	case combined >= 50:
		return "BBB", 0.01
	default:
		return "BB", 0.02
	}
}

// ConvertToCreditScore maps a 0-100 score onto the traditional 300-850 range.
func ConvertToCreditScore(score float64) int {
	return int(300 + score/100*550)
}

// RiskCategory buckets an overall risk score.
func RiskCategory(score float64) string {
	switch {
	case score >= 80:
		return "low_risk"
	case score >= 60:
		return "moderate_risk"
	case score >= 40:
		return "elevated_risk"
	default:
		return "high_risk"
	}
}

// ComponentRating rates an individual component score.
func ComponentRating(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "needs_improvement"
	}
}

func traditionalRiskLabels(score float64) models.TraditionalRisk {
	return models.TraditionalRisk{
		RiskScore:               score,
		RevenueAssessment:       gradeAbove(score, 75, "strong", "moderate"),
		ProfitabilityAssessment: gradeAbove(score, 70, "strong", "moderate"),
		LeverageAssessment:      gradeAbove(score, 65, "low", "moderate"),
		LiquidityAssessment:     gradeAbove(score, 60, "strong", "moderate"),
		DefaultHistory:          gradeAbove(score, 55, "clean", "concerning"),
	}
}

func carbonRiskLabels(score float64) models.CarbonRisk {
	regulatory := "high"
	switch {
	case score >= 70:
		regulatory = "low"
	case score >= 50:
		regulatory = "moderate"
	}
	return models.CarbonRisk{
		CarbonRiskScore:     score,
		EmissionIntensity:   gradeAbove(score, 55, "moderate", "high"),
		TrendDirection:      gradeAbove(score, 65, "improving", "worsening"),
		TransitionReadiness: gradeAbove(score, 70, "strong", "developing"),
		RegulatoryRisk:      regulatory,
		StrandedAssetRisk:   gradeAbove(score, 50, "low", "high"),
	}
}

func esgRiskLabels(score float64) models.ESGRisk {
	// The component ratings spread around the single ESG draw with fixed
	// offsets so the three pillars stay distinguishable yet deterministic.
	return models.ESGRisk{
		ESGRiskScore:        score,
		EnvironmentalRating: ComponentRating(score),
		SocialRating:        ComponentRating(clamp(score-4, 0, 100)),
		GovernanceRating:    ComponentRating(clamp(score+3, 0, 100)),
		ReputationalRisk:    gradeAbove(score, 70, "low", "moderate"),
	}
}

func gradeAbove(score, threshold float64, above, below string) string {
	if score > threshold {
		return above
	}
	return below
}

func creditRecommendations(carbon, combined float64) []string {
	recs := []string{}
	if carbon < 60 {
		recs = append(recs,
			"Consider implementing renewable energy sources to improve carbon score",
			"Develop a carbon reduction roadmap to access better financing terms",
		)
	}
	if combined < 60 {
		recs = append(recs, "Improve ESG reporting transparency to enhance investor confidence")
	}
	return recs
}
