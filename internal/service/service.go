package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/greenpulse/greenpulse/internal/models"
	"github.com/greenpulse/greenpulse/internal/repository"
	"github.com/greenpulse/greenpulse/internal/simulate"
)

// Workflow names used for result records and completion events.
const (
	WorkflowCredit       = "credit_assessment"
	WorkflowPortfolio    = "portfolio_optimization"
	WorkflowLoan         = "micro_loan"
	WorkflowGreenwashing = "greenwashing_check"
)

// Service coordinates the intelligence workflows: it validates inputs, runs the
// simulation engine, tags results with request IDs and records completions.
type Service struct {
	src      *simulate.Source
	results  *repository.ResultStore
	log      *logrus.Logger
	inflight atomic.Int64
}

// NewService initializes a new service.
func NewService(src *simulate.Source, results *repository.ResultStore, log *logrus.Logger) *Service {
	return &Service{src: src, results: results, log: log}
}

// AssessCredit runs a combined traditional/carbon credit assessment.
func (s *Service) AssessCredit(req models.CreditAssessmentRequest) (models.CreditAssessmentResult, error) {
	if req.EntityID == "" {
		return models.CreditAssessmentResult{}, fmt.Errorf("entity_id is required")
	}
	entityType := req.EntityType
	if entityType == "" {
		entityType = "company"
	}
	if entityType != "company" && entityType != "individual" {
		return models.CreditAssessmentResult{}, fmt.Errorf("invalid entity_type: %s", entityType)
	}

	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	result := simulate.AssessCredit(s.src, req.EntityID, entityType)
	result.RequestID = uuid.NewString()
	s.results.Put(result.RequestID, WorkflowCredit, result)

	s.log.Infof("Credit assessment for %s: rating %s (combined %.2f)",
		req.EntityID, result.CreditRating.Rating, result.CreditRating.CombinedScore)
	return result, nil
}

// OptimizePortfolio builds the traditional/green portfolio pair for the given
// capital and risk tier.
func (s *Service) OptimizePortfolio(req models.PortfolioOptimizationRequest) (models.PortfolioPair, error) {
	if req.Capital <= 0 {
		return models.PortfolioPair{}, fmt.Errorf("capital must be positive, got %.2f", req.Capital)
	}
	tier := req.RiskTolerance
	if tier == "" {
		tier = "moderate"
	}

	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	pair := simulate.OptimizePortfolio(s.src, req.Capital, tier, req.TargetReturn)
	pair.RequestID = uuid.NewString()
	s.results.Put(pair.RequestID, WorkflowPortfolio, pair)

	s.log.Infof("Portfolio optimized: capital %.2f, tier %s, green footprint %.2f t",
		req.Capital, tier, pair.Green.AnnualCarbonFootprint)
	return pair, nil
}

// ApplyMicroLoan processes a micro-loan application against alternative data.
func (s *Service) ApplyMicroLoan(req models.MicroLoanRequest) (models.LoanDecision, error) {
	if req.ApplicantID == "" {
		return models.LoanDecision{}, fmt.Errorf("applicant_id is required")
	}
	if req.Amount <= 0 {
		return models.LoanDecision{}, fmt.Errorf("amount must be positive, got %.2f", req.Amount)
	}

	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	decision := simulate.ApplyMicroLoan(s.src, req)
	decision.RequestID = uuid.NewString()
	s.results.Put(decision.RequestID, WorkflowLoan, decision)

	s.log.Infof("Micro-loan for %s: approved=%t (composite %.2f)",
		req.ApplicantID, decision.ApprovalStatus, decision.Assessment.CompositeScore)
	return decision, nil
}

// CheckGreenwashing analyzes a company for claim/performance discrepancies.
func (s *Service) CheckGreenwashing(req models.GreenwashingCheckRequest) (models.GreenwashingReport, error) {
	if req.CompanyID == "" {
		return models.GreenwashingReport{}, fmt.Errorf("company_id is required")
	}

	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	report := simulate.CheckGreenwashing(s.src, req.CompanyID)
	report.RequestID = uuid.NewString()
	s.results.Put(report.RequestID, WorkflowGreenwashing, report)

	s.log.Infof("Greenwashing check for %s: index %d (%s)",
		req.CompanyID, report.RiskIndex, report.RiskLevel)
	return report, nil
}

// SystemStatus reports agent health and the live queue/cache gauges.
func (s *Service) SystemStatus() models.SystemStatus {
	return models.SystemStatus{
		Status:    "operational",
		Timestamp: time.Now().UTC(),
		Agents: map[string]string{
			"data_collection":        "active",
			"risk_assessment":        "active",
			"portfolio_optimization": "active",
			"inclusion":              "active",
		},
		QueueSize: int(s.inflight.Load()),
		CacheSize: s.results.Size(),
	}
}

// Result looks up a recently completed workflow result by request ID.
func (s *Service) Result(requestID string) (repository.Entry, error) {
	entry, err := s.results.Get(requestID)
	if err != nil {
		return repository.Entry{}, fmt.Errorf("failed to find result: %w", err)
	}
	return entry, nil
}
