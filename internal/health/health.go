// Package health exposes the service's health report and HTTP surface.
package health

import (
	"context"
	"time"
)

// Status is the health of one component.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusDegraded Status = "degraded"
	StatusCritical Status = "critical"
)

// ComponentReport describes one checked component.
type ComponentReport struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check probes one component; nil means healthy.
type Check struct {
	Name string
	// Critical components fail the overall report; non-critical ones only
	// degrade it (the pipeline keeps working without them).
	Critical bool
	Probe    func(ctx context.Context) error
}

// Monitor runs registered component checks.
type Monitor struct {
	checks []Check
}

// NewMonitor creates a monitor over the given checks.
func NewMonitor(checks ...Check) *Monitor {
	return &Monitor{checks: checks}
}

// Register adds a check.
func (m *Monitor) Register(c Check) {
	m.checks = append(m.checks, c)
}

// Report runs all checks and returns per-component results plus the
// aggregated worst-case status.
func (m *Monitor) Report(ctx context.Context) ([]ComponentReport, Status) {
	overall := StatusHealthy
	reports := make([]ComponentReport, 0, len(m.checks))

	for _, c := range m.checks {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := c.Probe(checkCtx)
		cancel()

		report := ComponentReport{Name: c.Name, Status: StatusHealthy}
		if err != nil {
			report.Message = err.Error()
			if c.Critical {
				report.Status = StatusCritical
				overall = StatusCritical
			} else {
				report.Status = StatusDegraded
				if overall == StatusHealthy {
					overall = StatusDegraded
				}
			}
		}
		reports = append(reports, report)
	}
	return reports, overall
}
