// Package gateway is the dashboard-facing façade over the intelligence
// workflows. When a backend base URL is configured each call becomes a single
// HTTP request; otherwise responses are simulated in process after an
// artificial delay that emulates network latency.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/greenpulse/greenpulse/internal/models"
	"github.com/greenpulse/greenpulse/internal/service"
)

// ErrSuperseded reports that a newer request for the same workflow was started
// while this one was in flight. The stale result must not reach the caller.
var ErrSuperseded = errors.New("request superseded by a newer submission")

// WorkflowError is the single error shape surfaced to the view layer.
type WorkflowError struct {
	Workflow string
	Detail   string
}

func (e *WorkflowError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Workflow + "_failed"
}

const workflowStatus = "system_status"

// Artificial response delays in demo mode, distinct per workflow.
var simulatedDelay = map[string]time.Duration{
	workflowStatus:               500 * time.Millisecond,
	service.WorkflowCredit:       1500 * time.Millisecond,
	service.WorkflowPortfolio:    2000 * time.Millisecond,
	service.WorkflowLoan:         1800 * time.Millisecond,
	service.WorkflowGreenwashing: 1200 * time.Millisecond,
}

// Client calls the intelligence workflows. The demo/remote mode is fixed at
// construction: an empty baseURL selects local simulation.
type Client struct {
	baseURL string
	http    *http.Client
	svc     *service.Service
	log     *logrus.Logger
	gens    map[string]*atomic.Uint64
	delays  map[string]time.Duration
}

// NewClient initializes a gateway client. svc backs the local simulation path
// and must be non-nil when baseURL is empty.
func NewClient(baseURL string, svc *service.Service, log *logrus.Logger) *Client {
	gens := make(map[string]*atomic.Uint64, len(simulatedDelay))
	for workflow := range simulatedDelay {
		gens[workflow] = &atomic.Uint64{}
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		svc:    svc,
		log:    log,
		gens:   gens,
		delays: simulatedDelay,
	}
}

// Remote reports whether calls go to a configured backend.
func (c *Client) Remote() bool {
	return c.baseURL != ""
}

// GetSystemStatus fetches system and agent health.
func (c *Client) GetSystemStatus(ctx context.Context) (models.SystemStatus, error) {
	gen := c.begin(workflowStatus)
	if c.Remote() {
		var out models.SystemStatus
		if err := c.request(ctx, http.MethodGet, "/api/v1/system/status", workflowStatus, nil, &out); err != nil {
			return models.SystemStatus{}, err
		}
		if c.stale(workflowStatus, gen) {
			return models.SystemStatus{}, ErrSuperseded
		}
		return out, nil
	}
	if err := c.wait(ctx, workflowStatus, gen); err != nil {
		return models.SystemStatus{}, err
	}
	return c.svc.SystemStatus(), nil
}

// AssessCredit runs the credit assessment workflow.
func (c *Client) AssessCredit(ctx context.Context, req models.CreditAssessmentRequest) (models.CreditAssessmentResult, error) {
	workflow := service.WorkflowCredit
	gen := c.begin(workflow)
	if c.Remote() {
		var out models.CreditAssessmentResult
		if err := c.request(ctx, http.MethodPost, "/api/v1/credit/assess", workflow, req, &out); err != nil {
			return models.CreditAssessmentResult{}, err
		}
		if c.stale(workflow, gen) {
			return models.CreditAssessmentResult{}, ErrSuperseded
		}
		return out, nil
	}
	if err := c.wait(ctx, workflow, gen); err != nil {
		return models.CreditAssessmentResult{}, err
	}
	result, err := c.svc.AssessCredit(req)
	if err != nil {
		return models.CreditAssessmentResult{}, c.fail(workflow, err)
	}
	return result, nil
}

// OptimizePortfolio runs the portfolio optimization workflow.
func (c *Client) OptimizePortfolio(ctx context.Context, req models.PortfolioOptimizationRequest) (models.PortfolioPair, error) {
	workflow := service.WorkflowPortfolio
	gen := c.begin(workflow)
	if c.Remote() {
		var out models.PortfolioPair
		if err := c.request(ctx, http.MethodPost, "/api/v1/portfolio/optimize", workflow, req, &out); err != nil {
			return models.PortfolioPair{}, err
		}
		if c.stale(workflow, gen) {
			return models.PortfolioPair{}, ErrSuperseded
		}
		return out, nil
	}
	if err := c.wait(ctx, workflow, gen); err != nil {
		return models.PortfolioPair{}, err
	}
	pair, err := c.svc.OptimizePortfolio(req)
	if err != nil {
		return models.PortfolioPair{}, c.fail(workflow, err)
	}
	return pair, nil
}

// ApplyMicroLoan runs the micro-loan workflow.
func (c *Client) ApplyMicroLoan(ctx context.Context, req models.MicroLoanRequest) (models.LoanDecision, error) {
	workflow := service.WorkflowLoan
	gen := c.begin(workflow)
	if c.Remote() {
		var out models.LoanDecision
		if err := c.request(ctx, http.MethodPost, "/api/v1/loan/apply", workflow, req, &out); err != nil {
			return models.LoanDecision{}, err
		}
		if c.stale(workflow, gen) {
			return models.LoanDecision{}, ErrSuperseded
		}
		return out, nil
	}
	if err := c.wait(ctx, workflow, gen); err != nil {
		return models.LoanDecision{}, err
	}
	decision, err := c.svc.ApplyMicroLoan(req)
	if err != nil {
		return models.LoanDecision{}, c.fail(workflow, err)
	}
	return decision, nil
}

// CheckGreenwashing runs the greenwashing detection workflow.
func (c *Client) CheckGreenwashing(ctx context.Context, req models.GreenwashingCheckRequest) (models.GreenwashingReport, error) {
	workflow := service.WorkflowGreenwashing
	gen := c.begin(workflow)
	if c.Remote() {
		var out models.GreenwashingReport
		if err := c.request(ctx, http.MethodPost, "/api/v1/greenwashing/check", workflow, req, &out); err != nil {
			return models.GreenwashingReport{}, err
		}
		if c.stale(workflow, gen) {
			return models.GreenwashingReport{}, ErrSuperseded
		}
		return out, nil
	}
	if err := c.wait(ctx, workflow, gen); err != nil {
		return models.GreenwashingReport{}, err
	}
	report, err := c.svc.CheckGreenwashing(req)
	if err != nil {
		return models.GreenwashingReport{}, c.fail(workflow, err)
	}
	return report, nil
}

// begin bumps the workflow's request generation and returns the caller's token.
func (c *Client) begin(workflow string) uint64 {
	return c.gens[workflow].Add(1)
}

// stale reports whether a newer request started after the given token.
func (c *Client) stale(workflow string, gen uint64) bool {
	return c.gens[workflow].Load() != gen
}

// wait blocks for the workflow's artificial delay, honoring cancellation and
// the generation guard.
func (c *Client) wait(ctx context.Context, workflow string, gen uint64) error {
	select {
	case <-ctx.Done():
		return c.fail(workflow, ctx.Err())
	case <-time.After(c.delays[workflow]):
	}
	if c.stale(workflow, gen) {
		return ErrSuperseded
	}
	return nil
}

// request performs a single HTTP attempt against the backend. No retry, no
// backoff: any failure terminates the submission.
func (c *Client) request(ctx context.Context, method, path, workflow string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return c.fail(workflow, fmt.Errorf("failed to encode request: %w", err))
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return c.fail(workflow, fmt.Errorf("failed to create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorf("%s request failed: %v", workflow, err)
		return &WorkflowError{Workflow: workflow}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(workflow, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := serverDetail(raw)
		c.log.Errorf("%s returned status %d: %s", workflow, resp.StatusCode, detail)
		return &WorkflowError{Workflow: workflow, Detail: detail}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Errorf("%s response malformed: %v", workflow, err)
		return &WorkflowError{Workflow: workflow}
	}
	return nil
}

// fail logs the cause and converts it to the single error shape the view
// layer displays.
func (c *Client) fail(workflow string, err error) error {
	c.log.Errorf("%s failed: %v", workflow, err)
	return &WorkflowError{Workflow: workflow, Detail: err.Error()}
}

// serverDetail extracts the backend-provided error detail, if any.
func serverDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Detail != "" {
		return body.Detail
	}
	return body.Error
}
