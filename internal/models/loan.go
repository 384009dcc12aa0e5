package models

import "time"

// MicroLoanRequest is the body of POST /api/v1/loan/apply. The alternative-data
// payloads are accepted as free-form documents; scoring only inspects their presence.
type MicroLoanRequest struct {
	ApplicantID          string           `json:"applicant_id"`
	Amount               float64          `json:"amount"`
	Purpose              string           `json:"purpose"`
	MobilePaymentHistory []map[string]any `json:"mobile_payment_history,omitempty"`
	GreenActivities      map[string]any   `json:"green_activities,omitempty"`
	SocialData           map[string]any   `json:"social_data,omitempty"`
}

// AlternativeAssessment holds the component scores behind a loan decision.
type AlternativeAssessment struct {
	CompositeScore     float64 `json:"alternative_credit_score"`
	MobilePaymentScore float64 `json:"mobile_payment_score"`
	GreenActivityScore float64 `json:"green_activity_score"`
	SocialScore        float64 `json:"social_score"`
	ConfidenceLevel    float64 `json:"confidence_level"`
	AssessmentMethod   string  `json:"assessment_method"`
}

// LoanTerms holds the repayment schedule for an approved loan.
type LoanTerms struct {
	ApprovedAmount   float64  `json:"approved_amount"`
	InterestRate     float64  `json:"interest_rate"`
	LoanTermMonths   int      `json:"loan_term_months"`
	MonthlyPayment   float64  `json:"monthly_payment"`
	TotalRepayment   float64  `json:"total_repayment"`
	TotalInterest    float64  `json:"total_interest"`
	FirstPaymentDate string   `json:"first_payment_date"` // Format: YYYY-MM-DD
	SpecialTerms     []string `json:"special_terms"`
}

// LoanDecision is the response of POST /api/v1/loan/apply. LoanTerms is nil
// when the application is rejected.
type LoanDecision struct {
	RequestID      string                `json:"request_id,omitempty"`
	ApplicantID    string                `json:"applicant_id"`
	Timestamp      time.Time             `json:"timestamp"`
	Assessment     AlternativeAssessment `json:"assessment"`
	ApprovalStatus bool                  `json:"approval_status"`
	LoanTerms      *LoanTerms            `json:"loan_terms,omitempty"`
	Status         string                `json:"status"`
}
