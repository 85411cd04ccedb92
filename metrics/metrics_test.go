package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/webgrove/rendertree"
	"github.com/webgrove/rendertree/engine"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	eng := engine.New()
	c := New(reg, eng)

	c.TreesBuilt.Inc()
	c.SessionsOpen.Inc()
	c.NodesMaterialized.Add(3)

	if got := testutil.ToFloat64(c.TreesBuilt); got != 1 {
		t.Errorf("trees built = %g", got)
	}
	if got := testutil.ToFloat64(c.NodesMaterialized); got != 3 {
		t.Errorf("nodes materialized = %g", got)
	}
	c.SessionsOpen.Dec()
	if got := testutil.ToFloat64(c.SessionsOpen); got != 0 {
		t.Errorf("sessions open = %g", got)
	}
}

func TestLiveHandleGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	eng := engine.New()
	New(reg, eng)

	s, err := rendertree.Open("<html><p>x</p></html>", rendertree.WithEngine(eng))
	if err != nil {
		t.Fatal(err)
	}

	fams, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range fams {
		if f.GetName() != "rendertree_engine_live_handles" {
			continue
		}
		found = true
		if got := f.GetMetric()[0].GetGauge().GetValue(); got != 3 {
			t.Errorf("live handles = %g, want 3", got)
		}
	}
	if !found {
		t.Fatal("gauge not registered")
	}

	s.Close()
	fams, _ = reg.Gather()
	for _, f := range fams {
		if f.GetName() == "rendertree_engine_live_handles" {
			if got := f.GetMetric()[0].GetGauge().GetValue(); got != 0 {
				t.Errorf("live handles after close = %g", got)
			}
		}
	}
}
