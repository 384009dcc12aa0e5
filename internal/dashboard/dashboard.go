// Package dashboard maintains the cosmetic headline counters shown on the
// landing view. The numbers drift on a fixed schedule purely for effect and
// carry no business meaning.
package dashboard

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/greenpulse/greenpulse/internal/models"
	"github.com/greenpulse/greenpulse/internal/simulate"
)

// Ticker drifts the dashboard counters every refresh interval.
type Ticker struct {
	mu      sync.RWMutex
	metrics models.DashboardMetrics
	src     *simulate.Source
	cron    *cron.Cron
	log     *logrus.Logger
}

// NewTicker seeds the counters with plausible starting values.
func NewTicker(src *simulate.Source, log *logrus.Logger) *Ticker {
	return &Ticker{
		metrics: models.DashboardMetrics{
			AssessmentsToday:  src.IntBetween(120, 180),
			ActiveLoans:       src.IntBetween(40, 90),
			CarbonSavedTons:   float64(src.IntBetween(800, 1500)),
			PortfoliosManaged: src.IntBetween(25, 60),
			UpdatedAt:         time.Now().UTC(),
		},
		src: src,
		log: log,
	}
}

// Start schedules the 5-second refresh.
func (t *Ticker) Start() error {
	t.cron = cron.New()
	if _, err := t.cron.AddFunc("@every 5s", t.Refresh); err != nil {
		return err
	}
	t.cron.Start()
	t.log.Debug("Dashboard ticker started")
	return nil
}

// Stop halts the schedule.
func (t *Ticker) Stop() {
	if t.cron != nil {
		t.cron.Stop()
	}
}

// Refresh drifts each counter by a small random amount.
func (t *Ticker) Refresh() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics.AssessmentsToday += t.src.IntBetween(0, 3)
	t.metrics.ActiveLoans += t.src.IntBetween(-1, 2)
	if t.metrics.ActiveLoans < 0 {
		t.metrics.ActiveLoans = 0
	}
	t.metrics.CarbonSavedTons += t.src.Float64Between(0.5, 5)
	t.metrics.PortfoliosManaged += t.src.IntBetween(0, 1)
	t.metrics.UpdatedAt = time.Now().UTC()
}

// Snapshot returns a copy of the current counters.
func (t *Ticker) Snapshot() models.DashboardMetrics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.metrics
}
