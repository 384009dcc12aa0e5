package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/greenpulse/greenpulse/internal/dashboard"
	"github.com/greenpulse/greenpulse/internal/models"
	"github.com/greenpulse/greenpulse/internal/service"
)

// Version reported by the info and health endpoints.
const Version = "1.0.0"

// Broadcaster pushes workflow completion events to live dashboard clients.
type Broadcaster interface {
	Broadcast(event map[string]any)
}

// Handler exposes the intelligence workflows over HTTP.
type Handler struct {
	svc    *service.Service
	ticker *dashboard.Ticker
	events Broadcaster
	log    *logrus.Logger
}

// NewHandler initializes a new handler. events may be nil when no live
// streaming is wired.
func NewHandler(svc *service.Service, ticker *dashboard.Ticker, events Broadcaster, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, ticker: ticker, events: events, log: log}
}

// RegisterRoutes mounts all endpoints on the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Info).Methods("GET")
	r.HandleFunc("/api/v1/health", h.Health).Methods("GET")
	r.HandleFunc("/api/v1/system/status", h.SystemStatus).Methods("GET")
	r.HandleFunc("/api/v1/credit/assess", h.AssessCredit).Methods("POST")
	r.HandleFunc("/api/v1/portfolio/optimize", h.OptimizePortfolio).Methods("POST")
	r.HandleFunc("/api/v1/loan/apply", h.ApplyMicroLoan).Methods("POST")
	r.HandleFunc("/api/v1/greenwashing/check", h.CheckGreenwashing).Methods("POST")
	r.HandleFunc("/api/v1/dashboard/metrics", h.DashboardMetrics).Methods("GET")
	r.HandleFunc("/api/v1/results/{request_id}", h.Result).Methods("GET")
}

// Info describes the service and its endpoints.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":      "GreenPulse API",
		"version":   Version,
		"status":    "operational",
		"timestamp": time.Now().UTC(),
		"endpoints": map[string]string{
			"credit_assessment":      "/api/v1/credit/assess",
			"portfolio_optimization": "/api/v1/portfolio/optimize",
			"micro_loan":             "/api/v1/loan/apply",
			"greenwashing_check":     "/api/v1/greenwashing/check",
			"system_status":          "/api/v1/system/status",
		},
	})
}

// Health is the monitoring probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   Version,
	})
}

// SystemStatus reports agent health.
func (h *Handler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.SystemStatus())
}

// AssessCredit handles credit assessment submissions.
func (h *Handler) AssessCredit(w http.ResponseWriter, r *http.Request) {
	var req models.CreditAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowCredit, "invalid request body")
		return
	}

	result, err := h.svc.AssessCredit(req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowCredit, err.Error())
		return
	}

	h.broadcast(map[string]any{
		"type":      "credit_assessment_complete",
		"entity_id": result.EntityID,
		"timestamp": result.Timestamp,
	})
	writeJSON(w, http.StatusOK, result)
}

// OptimizePortfolio handles portfolio optimization submissions.
func (h *Handler) OptimizePortfolio(w http.ResponseWriter, r *http.Request) {
	var req models.PortfolioOptimizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowPortfolio, "invalid request body")
		return
	}

	pair, err := h.svc.OptimizePortfolio(req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowPortfolio, err.Error())
		return
	}

	h.broadcast(map[string]any{
		"type":      "portfolio_optimized",
		"capital":   req.Capital,
		"timestamp": pair.Timestamp,
	})
	writeJSON(w, http.StatusOK, pair)
}

// ApplyMicroLoan handles micro-loan applications.
func (h *Handler) ApplyMicroLoan(w http.ResponseWriter, r *http.Request) {
	var req models.MicroLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowLoan, "invalid request body")
		return
	}

	decision, err := h.svc.ApplyMicroLoan(req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowLoan, err.Error())
		return
	}

	h.broadcast(map[string]any{
		"type":         "loan_processed",
		"applicant_id": decision.ApplicantID,
		"approved":     decision.ApprovalStatus,
		"timestamp":    decision.Timestamp,
	})
	writeJSON(w, http.StatusOK, decision)
}

// CheckGreenwashing handles greenwashing checks.
func (h *Handler) CheckGreenwashing(w http.ResponseWriter, r *http.Request) {
	var req models.GreenwashingCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowGreenwashing, "invalid request body")
		return
	}

	report, err := h.svc.CheckGreenwashing(req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, service.WorkflowGreenwashing, err.Error())
		return
	}

	h.broadcast(map[string]any{
		"type":       "greenwashing_check_complete",
		"company_id": report.CompanyID,
		"risk_index": report.RiskIndex,
		"timestamp":  report.Timestamp,
	})
	writeJSON(w, http.StatusOK, report)
}

// DashboardMetrics serves the cosmetic landing-view counters.
func (h *Handler) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ticker.Snapshot())
}

// Result serves a recently completed workflow result by request ID.
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["request_id"]
	entry, err := h.svc.Result(requestID)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "result_lookup", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"request_id":   entry.RequestID,
		"workflow":     entry.Workflow,
		"completed_at": entry.CompletedAt,
		"result":       entry.Result,
	})
}

func (h *Handler) broadcast(event map[string]any) {
	if h.events != nil {
		h.events.Broadcast(event)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, workflow, detail string) {
	h.log.Errorf("%s request rejected: %s", workflow, detail)
	writeJSON(w, status, map[string]string{
		"error":  workflow + "_failed",
		"detail": detail,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
