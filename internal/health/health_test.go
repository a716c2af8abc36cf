package health

import (
	"context"
	"errors"
	"testing"
)

func TestMonitor_AllHealthy(t *testing.T) {
	m := NewMonitor(
		Check{Name: "database", Critical: true, Probe: func(ctx context.Context) error { return nil }},
		Check{Name: "cache", Probe: func(ctx context.Context) error { return nil }},
	)

	reports, overall := m.Report(context.Background())
	if overall != StatusHealthy {
		t.Errorf("overall = %s", overall)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	for _, r := range reports {
		if r.Status != StatusHealthy || r.Message != "" {
			t.Errorf("component %s: %+v", r.Name, r)
		}
	}
}

func TestMonitor_NonCriticalFailureDegrades(t *testing.T) {
	m := NewMonitor(
		Check{Name: "database", Critical: true, Probe: func(ctx context.Context) error { return nil }},
		Check{Name: "cache", Probe: func(ctx context.Context) error { return errors.New("redis down") }},
	)

	reports, overall := m.Report(context.Background())
	if overall != StatusDegraded {
		t.Errorf("overall = %s, want degraded", overall)
	}
	if reports[1].Status != StatusDegraded || reports[1].Message != "redis down" {
		t.Errorf("cache report = %+v", reports[1])
	}
}

func TestMonitor_CriticalFailureWins(t *testing.T) {
	m := NewMonitor(
		Check{Name: "cache", Probe: func(ctx context.Context) error { return errors.New("redis down") }},
		Check{Name: "database", Critical: true, Probe: func(ctx context.Context) error { return errors.New("pg down") }},
	)

	_, overall := m.Report(context.Background())
	if overall != StatusCritical {
		t.Errorf("overall = %s, want critical", overall)
	}
}

func TestMonitor_Register(t *testing.T) {
	m := NewMonitor()
	m.Register(Check{Name: "connectivity", Probe: func(ctx context.Context) error { return nil }})

	reports, overall := m.Report(context.Background())
	if overall != StatusHealthy || len(reports) != 1 {
		t.Errorf("reports = %+v, overall = %s", reports, overall)
	}
}
