package models

import "time"

// SystemStatus is the response of GET /api/v1/system/status.
type SystemStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Agents    map[string]string `json:"agents"`
	QueueSize int               `json:"queue_size"`
	CacheSize int               `json:"cache_size"`
}

// DashboardMetrics are cosmetic counters refreshed on a fixed schedule.
type DashboardMetrics struct {
	AssessmentsToday  int       `json:"assessments_today"`
	ActiveLoans       int       `json:"active_loans"`
	CarbonSavedTons   float64   `json:"carbon_saved_tons"`
	PortfoliosManaged int       `json:"portfolios_managed"`
	UpdatedAt         time.Time `json:"updated_at"`
}
