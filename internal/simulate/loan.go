package simulate

import (
	"math"
	"time"

	"github.com/greenpulse/greenpulse/internal/models"
)

// Alternative-data score draw ranges.
const (
	mobileScoreMin, mobileScoreMax = 50.0, 95.0
	greenScoreMin, greenScoreMax   = 40.0, 90.0
	socialScoreMin, socialScoreMax = 55.0, 85.0
)

// approvalThreshold is the minimum composite score for loan approval.
const approvalThreshold = 55.0

// loanTermMonths is the fixed repayment term.
const loanTermMonths = 24

// ApplyMicroLoan fabricates a micro-loan decision. The alternative-data payloads
// on the request only influence scoring by their presence; the component scores
// themselves are drawn. Rejected applications carry no loan terms.
func ApplyMicroLoan(src *Source, req models.MicroLoanRequest) models.LoanDecision {
	mobile := round2(src.Float64Between(mobileScoreMin, mobileScoreMax))
	green := round2(src.Float64Between(greenScoreMin, greenScoreMax))
	social := round2(src.Float64Between(socialScoreMin, socialScoreMax))
	confidence := round2(src.Float64Between(0.70, 0.92))

	return BuildLoanDecision(req, mobile, green, social, confidence)
}

// BuildLoanDecision assembles the decision from already drawn component scores.
func BuildLoanDecision(req models.MicroLoanRequest, mobile, green, social, confidence float64) models.LoanDecision {
	composite := round2(mobile*0.5 + green*0.3 + social*0.2)
	approved := composite >= approvalThreshold

	decision := models.LoanDecision{
		ApplicantID: req.ApplicantID,
		Timestamp:   time.Now().UTC(),
		Assessment: models.AlternativeAssessment{
			CompositeScore:     composite,
			MobilePaymentScore: mobile,
			GreenActivityScore: green,
			SocialScore:        social,
			ConfidenceLevel:    confidence,
			AssessmentMethod:   "alternative_data",
		},
		ApprovalStatus: approved,
		Status:         "success",
	}
	if approved {
		terms := CalculateLoanTerms(composite, green, req.Amount)
		decision.LoanTerms = &terms
	}
	return decision
}

// LoanBand maps a composite score to an interest rate and a maximum-amount
// multiplier.
func LoanBand(composite float64) (rate, maxMultiplier float64) {
	switch {
	case composite >= 80:
		return 0.06, 1.2
	case composite >= 65:
		return 0.08, 1.0
	case composite >= 55:
		return 0.10, 0.8
	default:
		return 0.12, 0.5
	}
}

// CalculateLoanTerms prices an approved loan over the fixed 24-month term. The
// approved amount never exceeds the requested amount.
func CalculateLoanTerms(composite, greenScore, requested float64) models.LoanTerms {
	rate, maxMultiplier := LoanBand(composite)
	approvedAmount := round2(math.Min(requested, requested*maxMultiplier))

	monthly := round2(MonthlyPayment(approvedAmount, rate, loanTermMonths))
	totalRepayment := round2(monthly * loanTermMonths)
	totalInterest := round2(totalRepayment - approvedAmount)

	return models.LoanTerms{
		ApprovedAmount:   approvedAmount,
		InterestRate:     rate,
		LoanTermMonths:   loanTermMonths,
		MonthlyPayment:   monthly,
		TotalRepayment:   totalRepayment,
		TotalInterest:    totalInterest,
		FirstPaymentDate: time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
		SpecialTerms:     specialTerms(greenScore),
	}
}

// MonthlyPayment computes the fixed-rate amortization payment
// P*r(1+r)^n / ((1+r)^n - 1) with a monthly rate derived from the annual rate.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+r, float64(months))
	return principal * (r * growth) / (growth - 1)
}

func specialTerms(greenScore float64) []string {
	terms := []string{}
	if greenScore > 70 {
		terms = append(terms,
			"Green bonus: 0.5% interest rate reduction for maintaining solar generation",
			"Carbon credit: Earn credits for verified emission reductions",
		)
	}
	if greenScore > 50 {
		terms = append(terms, "Flexible repayment: Adjust payments based on seasonal income")
	}
	terms = append(terms, "Financial literacy: Free access to online financial education")
	return terms
}
