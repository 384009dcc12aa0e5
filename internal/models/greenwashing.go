package models

import "time"

// GreenwashingCheckRequest is the body of POST /api/v1/greenwashing/check.
type GreenwashingCheckRequest struct {
	CompanyID string `json:"company_id"`
}

// Anomaly is one detected inconsistency between claims and performance.
type Anomaly struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // low, medium, high
}

// GreenwashingReport is the response of POST /api/v1/greenwashing/check.
type GreenwashingReport struct {
	RequestID       string    `json:"request_id,omitempty"`
	CompanyID       string    `json:"company_id"`
	Timestamp       time.Time `json:"timestamp"`
	RiskIndex       int       `json:"greenwashing_risk_index"`
	RiskLevel       string    `json:"risk_level"` // low, moderate, high
	Anomalies       []Anomaly `json:"anomalies"`
	AnomalyCount    int       `json:"anomaly_count"`
	Recommendations []string  `json:"recommendations"`
	Confidence      float64   `json:"confidence"`
	Status          string    `json:"status"`
}
