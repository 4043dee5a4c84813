package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/ecogrid/core/factory"
	coremetrics "github.com/kilianp07/ecogrid/core/metrics"
	"github.com/kilianp07/ecogrid/infra/logger"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterMetricsSink("nop", func(map[string]any) (coremetrics.MetricsSink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterMetricsSink("log", func(conf map[string]any) (coremetrics.MetricsSink, error) {
		c := struct {
			Component string `json:"component"`
		}{Component: "metrics"}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewLogSink(logger.New(c.Component)), nil
	})

	_ = coremetrics.RegisterMetricsSink("prometheus", func(conf map[string]any) (coremetrics.MetricsSink, error) {
		if err := factory.Decode(conf, &struct{}{}); err != nil {
			return nil, err
		}
		s, err := NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
