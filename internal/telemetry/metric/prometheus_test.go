package metric

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Two registries must coexist (private prometheus registries).
	r2 := NewRegistry()
	if r2 == nil {
		t.Fatal("second NewRegistry() returned nil")
	}
}

func TestObserveOp(t *testing.T) {
	r := NewRegistry()

	r.ObserveOp(OpGet, true, 0.001)
	r.ObserveOp(OpGet, false, 0.001)
	r.ObserveOp(OpPut, false, 0.002)

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	var total float64
	for _, mf := range families {
		if mf.GetName() != "lockmap_ops_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	if total != 3 {
		t.Errorf("lockmap_ops_total sum = %v, want 3", total)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	r := NewRegistry()
	r.Capacity.Set(16)
	r.Entries.Set(3)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "lockmap_capacity 16") {
		t.Errorf("metrics output missing lockmap_capacity:\n%s", body)
	}
	if !strings.Contains(body, "lockmap_entries 3") {
		t.Errorf("metrics output missing lockmap_entries")
	}
}
