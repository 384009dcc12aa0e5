package service

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpulse/greenpulse/internal/models"
	"github.com/greenpulse/greenpulse/internal/repository"
	"github.com/greenpulse/greenpulse/internal/simulate"
)

func newTestService(seed int64) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(simulate.NewSource(seed), repository.NewResultStore(time.Minute), log)
}

func TestAssessCreditValidation(t *testing.T) {
	svc := newTestService(1)

	_, err := svc.AssessCredit(models.CreditAssessmentRequest{})
	assert.ErrorContains(t, err, "entity_id")

	_, err = svc.AssessCredit(models.CreditAssessmentRequest{EntityID: "ACME", EntityType: "robot"})
	assert.ErrorContains(t, err, "invalid entity_type")

	// Empty type defaults to company.
	res, err := svc.AssessCredit(models.CreditAssessmentRequest{EntityID: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, "company", res.EntityType)
	assert.NotEmpty(t, res.RequestID)
}

func TestOptimizePortfolioValidation(t *testing.T) {
	svc := newTestService(2)

	_, err := svc.OptimizePortfolio(models.PortfolioOptimizationRequest{Capital: 0})
	assert.ErrorContains(t, err, "capital must be positive")

	pair, err := svc.OptimizePortfolio(models.PortfolioOptimizationRequest{Capital: 100000})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.RequestID)
	assert.Equal(t, "success", pair.Status)
}

func TestApplyMicroLoanValidation(t *testing.T) {
	svc := newTestService(3)

	_, err := svc.ApplyMicroLoan(models.MicroLoanRequest{Amount: 1000})
	assert.ErrorContains(t, err, "applicant_id")

	_, err = svc.ApplyMicroLoan(models.MicroLoanRequest{ApplicantID: "A1", Amount: -5})
	assert.ErrorContains(t, err, "amount must be positive")

	decision, err := svc.ApplyMicroLoan(models.MicroLoanRequest{ApplicantID: "A1", Amount: 5000})
	require.NoError(t, err)
	if decision.ApprovalStatus {
		assert.NotNil(t, decision.LoanTerms)
	} else {
		assert.Nil(t, decision.LoanTerms)
	}
}

func TestCheckGreenwashingValidation(t *testing.T) {
	svc := newTestService(4)

	_, err := svc.CheckGreenwashing(models.GreenwashingCheckRequest{})
	assert.ErrorContains(t, err, "company_id")

	report, err := svc.CheckGreenwashing(models.GreenwashingCheckRequest{CompanyID: "CORP"})
	require.NoError(t, err)
	assert.LessOrEqual(t, report.RiskIndex, 100)
}

func TestSystemStatusGauges(t *testing.T) {
	svc := newTestService(5)

	status := svc.SystemStatus()
	assert.Equal(t, "operational", status.Status)
	assert.Equal(t, "active", status.Agents["risk_assessment"])
	assert.Len(t, status.Agents, 4)
	assert.Equal(t, 0, status.QueueSize)
	assert.Equal(t, 0, status.CacheSize)

	_, err := svc.CheckGreenwashing(models.GreenwashingCheckRequest{CompanyID: "CORP"})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.SystemStatus().CacheSize)
}

func TestResultLookup(t *testing.T) {
	svc := newTestService(6)

	res, err := svc.AssessCredit(models.CreditAssessmentRequest{EntityID: "ACME"})
	require.NoError(t, err)

	entry, err := svc.Result(res.RequestID)
	require.NoError(t, err)
	assert.Equal(t, WorkflowCredit, entry.Workflow)

	_, err = svc.Result("missing")
	assert.Error(t, err)
}
