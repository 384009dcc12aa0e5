package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpulse/greenpulse/internal/refdata"
)

func TestBuildPortfolioModerateTraditional(t *testing.T) {
	src := NewSource(1)
	p := BuildPortfolio(src, 100000, refdata.TierModerate, refdata.BranchTraditional)

	require.Len(t, p.Assets, 4)
	assert.Equal(t, 100000.0, p.TotalValue)

	sum := 0.0
	for _, a := range p.Assets {
		sum += a.Allocation
		assert.Equal(t, refdata.BranchTraditional, a.Type)
		assert.Empty(t, a.ESGRating)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// 0.4*0.08 + 0.3*0.04 + 0.2*0.10 + 0.1*0.07 = 0.071
	assert.InDelta(t, 0.071, p.ExpectedReturn, 1e-9)
	// 0.4*0.15 + 0.3*0.06 + 0.2*0.18 + 0.1*0.20 = 0.134
	assert.InDelta(t, 0.134, p.Volatility, 1e-9)
	// (0.071 - 0.02) / 0.134
	assert.InDelta(t, 0.381, p.SharpeRatio, 1e-9)
	// 2000*0.4 + 500*0.3 + 2500*0.2 + 1800*0.1 = 1630
	assert.InDelta(t, 1630.0, p.AnnualCarbonFootprint, 1e-9)

	// Traditional branch carries no green-only fields.
	assert.Zero(t, p.NeutralityYears)
	assert.Zero(t, p.SDGAlignmentScore)
}

func TestBuildPortfolioGreenFields(t *testing.T) {
	src := NewSource(2)
	p := BuildPortfolio(src, 50000, refdata.TierConservative, refdata.BranchGreen)

	for _, a := range p.Assets {
		assert.True(t, a.SDGAligned)
		assert.Contains(t, []string{"AA", "AAA"}, a.ESGRating)
	}
	assert.InDelta(t, 100.0, p.SDGAlignmentScore, 1e-9)

	// Conservative green footprint: 50*0.5 + 100*0.25 + 200*0.15 + 150*0.1 = 95 -> 2y bucket.
	assert.InDelta(t, 95.0, p.AnnualCarbonFootprint, 1e-9)
	assert.Equal(t, 2.0, p.NeutralityYears)
}

func TestNeutralityTimelineBuckets(t *testing.T) {
	assert.Equal(t, 2.0, NeutralityTimelineYears(100))
	assert.Equal(t, 5.0, NeutralityTimelineYears(100.01))
	assert.Equal(t, 5.0, NeutralityTimelineYears(300))
	assert.Equal(t, 8.0, NeutralityTimelineYears(300.01))
}

func TestOptimizePortfolioPair(t *testing.T) {
	src := NewSource(3)
	pair := OptimizePortfolio(src, 250000, refdata.TierAggressive, 0.08)

	assert.Equal(t, "success", pair.Status)
	assert.Equal(t, refdata.BranchTraditional, pair.Traditional.PortfolioType)
	assert.Equal(t, refdata.BranchGreen, pair.Green.PortfolioType)

	cc := pair.CarbonComparison
	assert.Equal(t, pair.Traditional.AnnualCarbonFootprint, cc.TraditionalEmissionsTons)
	assert.Equal(t, pair.Green.AnnualCarbonFootprint, cc.GreenEmissionsTons)
	assert.InDelta(t, cc.TraditionalEmissionsTons-cc.GreenEmissionsTons, cc.ReductionTons, 0.01)
	assert.Greater(t, cc.ReductionPercentage, 0.0)

	// The comparison timeline uses the same buckets as the green portfolio's field.
	assert.Equal(t, pair.Green.NeutralityYears, cc.NetZeroTimelineYears)
	assert.Contains(t, pair.Recommendation, "green portfolio")
}

func TestOptimizePortfolioUnknownTierFallsBack(t *testing.T) {
	pair := OptimizePortfolio(NewSource(4), 10000, "unknown", 0)
	moderate := OptimizePortfolio(NewSource(4), 10000, refdata.TierModerate, 0)

	assert.Equal(t, moderate.Traditional.ExpectedReturn, pair.Traditional.ExpectedReturn)
	assert.Equal(t, moderate.Green.ExpectedReturn, pair.Green.ExpectedReturn)
}
