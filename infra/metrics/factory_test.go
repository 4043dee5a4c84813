package metrics_test

import (
	"testing"

	"github.com/kilianp07/ecogrid/core/factory"
	coremetrics "github.com/kilianp07/ecogrid/core/metrics"
	"github.com/kilianp07/ecogrid/infra/metrics"
)

/*
TestMetricsFactory_Builtins verifies registration via infra/metrics/factory.go.

	Cases:
	- instantiate builtin nop, log and prometheus sinks
	- unknown type and unknown conf keys return errors
*/
func TestMetricsFactory_Builtins(t *testing.T) {
	s, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}})
	if err != nil {
		t.Fatalf("create nop: %v", err)
	}
	if s == nil {
		t.Fatal("expected sink instance")
	}
	s, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "log", Conf: map[string]any{"component": "test"}}})
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	if _, ok := s.(*metrics.LogSink); !ok {
		t.Fatalf("expected LogSink, got %T", s)
	}
	s, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus"}})
	if err != nil {
		t.Fatalf("create prometheus: %v", err)
	}
	if _, ok := s.(*metrics.PromSink); !ok {
		t.Fatalf("expected PromSink, got %T", s)
	}
	if _, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "missing"}}); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if _, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "log", Conf: map[string]any{"port": 9090}}}); err == nil {
		t.Fatal("expected error for unknown conf key")
	}
}

/*
TestNewMetricsSink_Multi validates NewMetricsSink behavior with zero and multiple configs.

	Cases:
	- no config -> NopSink
	- two configs -> MultiSink with two sub-sinks
*/
func TestNewMetricsSink_Multi(t *testing.T) {
	s, err := coremetrics.NewMetricsSink(nil)
	if err != nil {
		t.Fatalf("create nop default: %v", err)
	}
	if _, ok := s.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	cfgs := []factory.ModuleConfig{{Type: "nop"}, {Type: "log"}}
	s, err = coremetrics.NewMetricsSink(cfgs)
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	m, ok := s.(*coremetrics.MultiSink)
	if !ok {
		t.Fatalf("expected MultiSink, got %T", s)
	}
	if len(m.Sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(m.Sinks))
	}
}
