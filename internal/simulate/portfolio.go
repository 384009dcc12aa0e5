package simulate

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/greenpulse/greenpulse/internal/models"
	"github.com/greenpulse/greenpulse/internal/refdata"
)

// riskFreeRate is the fixed risk-free rate assumption behind the Sharpe ratio.
const riskFreeRate = 0.02

// OptimizePortfolio fabricates a traditional/green portfolio pair for the given
// capital and risk tier. targetReturn is accepted for API symmetry but the model
// allocations are fixed per tier.
func OptimizePortfolio(src *Source, capital float64, riskTolerance string, targetReturn float64) models.PortfolioPair {
	traditional := BuildPortfolio(src, capital, riskTolerance, refdata.BranchTraditional)
	green := BuildPortfolio(src, capital, riskTolerance, refdata.BranchGreen)
	comparison := CompareCarbonImpact(traditional, green)

	return models.PortfolioPair{
		Timestamp:        time.Now().UTC(),
		Traditional:      traditional,
		Green:            green,
		CarbonComparison: comparison,
		Recommendation: fmt.Sprintf(
			"Consider green portfolio for %.0f%% lower carbon footprint",
			comparison.ReductionPercentage,
		),
		Status: "success",
	}
}

// BuildPortfolio expands a model allocation table into a priced portfolio with
// derived aggregate metrics.
func BuildPortfolio(src *Source, capital float64, tier, branch string) models.Portfolio {
	templates := refdata.Allocations(tier, branch)

	assets := make([]models.AssetAllocation, 0, len(templates))
	weights := make([]float64, 0, len(templates))
	returns := make([]float64, 0, len(templates))
	vols := make([]float64, 0, len(templates))
	footprints := make([]float64, 0, len(templates))

	for _, tpl := range templates {
		asset := models.AssetAllocation{
			Name:           tpl.Name,
			Type:           branch,
			Allocation:     tpl.Allocation,
			Value:          round2(capital * tpl.Allocation),
			ExpectedReturn: tpl.ExpectedReturn,
			Volatility:     tpl.Volatility,
			AnnualCO2Tons:  round2(tpl.BaselineCO2Tons * tpl.Allocation),
		}
		if branch == refdata.BranchGreen {
			asset.ESGRating = src.Pick("AA", "AAA")
			asset.SDGAligned = true
		}
		assets = append(assets, asset)
		weights = append(weights, tpl.Allocation)
		returns = append(returns, tpl.ExpectedReturn)
		vols = append(vols, tpl.Volatility)
		footprints = append(footprints, asset.AnnualCO2Tons)
	}

	expectedReturn := round4(floats.Dot(weights, returns))
	volatility := round4(floats.Dot(weights, vols))
	footprint := round2(floats.Sum(footprints))

	sharpe := 0.0
	if volatility > 0 {
		sharpe = round3((expectedReturn - riskFreeRate) / volatility)
	}

	p := models.Portfolio{
		PortfolioType:         branch,
		TotalValue:            capital,
		Assets:                assets,
		ExpectedReturn:        expectedReturn,
		Volatility:            volatility,
		SharpeRatio:           sharpe,
		AnnualCarbonFootprint: footprint,
	}
	if branch == refdata.BranchGreen {
		p.NeutralityYears = NeutralityTimelineYears(footprint)
		p.SDGAlignmentScore = sdgAlignmentScore(assets)
	}
	return p
}

// NeutralityTimelineYears buckets a portfolio carbon footprint into an
// estimated years-to-neutrality figure.
func NeutralityTimelineYears(footprint float64) float64 {
	switch {
	case footprint <= 100:
		return 2
	case footprint <= 300:
		return 5
	default:
		return 8
	}
}

// CompareCarbonImpact builds the comparison record between the two branches.
// The net-zero timeline uses the same footprint buckets as the green portfolio.
func CompareCarbonImpact(traditional, green models.Portfolio) models.CarbonComparison {
	reduction := round2(traditional.AnnualCarbonFootprint - green.AnnualCarbonFootprint)
	pct := 0.0
	if traditional.AnnualCarbonFootprint > 0 {
		pct = round2(reduction / traditional.AnnualCarbonFootprint * 100)
	}
	return models.CarbonComparison{
		TraditionalEmissionsTons: traditional.AnnualCarbonFootprint,
		GreenEmissionsTons:       green.AnnualCarbonFootprint,
		ReductionTons:            reduction,
		ReductionPercentage:      pct,
		NetZeroTimelineYears:     NeutralityTimelineYears(green.AnnualCarbonFootprint),
	}
}

func sdgAlignmentScore(assets []models.AssetAllocation) float64 {
	score := 0.0
	for _, a := range assets {
		if a.SDGAligned {
			score += a.Allocation * 100
		}
	}
	return round2(score)
}
