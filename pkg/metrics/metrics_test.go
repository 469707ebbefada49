package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		return total
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("erp", reg)

	m.ObserveFetch("customers", OutcomeFulfilled, 20*time.Millisecond)
	m.ObserveFetch("customers", OutcomeRejected, time.Second)
	m.ObserveRetry("customers")
	m.ObserveBoundaryFailure("GlobalError")
	m.ObserveBreakerState("/lookups/customers", "open")

	if got := gather(t, reg, "erp_lookup_fetch_total"); got != 2 {
		t.Errorf("lookup_fetch_total = %v, want 2", got)
	}
	if got := gather(t, reg, "erp_lookup_fetch_duration_seconds"); got != 2 {
		t.Errorf("lookup_fetch_duration_seconds samples = %v, want 2", got)
	}
	if got := gather(t, reg, "erp_lookup_retries_total"); got != 1 {
		t.Errorf("lookup_retries_total = %v, want 1", got)
	}
	if got := gather(t, reg, "erp_boundary_failures_total"); got != 1 {
		t.Errorf("boundary_failures_total = %v, want 1", got)
	}
	if got := gather(t, reg, "erp_upstream_breaker_state"); got != 2 {
		t.Errorf("upstream_breaker_state = %v, want 2", got)
	}

	m.ObserveBreakerState("/lookups/customers", "closed")
	if got := gather(t, reg, "erp_upstream_breaker_state"); got != 0 {
		t.Errorf("upstream_breaker_state = %v, want 0", got)
	}
}
