package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/ecogrid/core/metrics"
)

// PromSink records report events in Prometheus metrics.
type PromSink struct {
	reports     *prometheus.CounterVec
	base        *prometheus.GaugeVec
	effective   *prometheus.GaugeVec
	fleetOutput prometheus.Gauge
	fleetSize   prometheus.Gauge
}

// NewPromSink registers report metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by an earlier sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reports, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecogrid_reports_total",
		Help: "Total number of reports generated per source",
	}, []string{"source_id", "kind", "detailed"}))
	if err != nil {
		return nil, err
	}
	base, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ecogrid_source_base_output_kw",
		Help: "Rated output of the source in kW",
	}, []string{"source_id", "kind"}))
	if err != nil {
		return nil, err
	}
	effective, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ecogrid_source_effective_output_kw",
		Help: "Output of the source in kW after environmental scaling",
	}, []string{"source_id", "kind"}))
	if err != nil {
		return nil, err
	}
	fleetOutput, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecogrid_fleet_effective_output_kw",
		Help: "Sum of effective output over all sources of the session",
	}))
	if err != nil {
		return nil, err
	}
	fleetSize, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecogrid_fleet_sources",
		Help: "Number of sources reported in the session",
	}))
	if err != nil {
		return nil, err
	}
	return &PromSink{
		reports:     reports,
		base:        base,
		effective:   effective,
		fleetOutput: fleetOutput,
		fleetSize:   fleetSize,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordReport counts the report and updates the per-source gauges.
func (s *PromSink) RecordReport(ev coremetrics.ReportEvent) error {
	kind := ev.Kind.String()
	s.reports.WithLabelValues(ev.SourceID, kind, strconv.FormatBool(ev.Detailed)).Inc()
	s.base.WithLabelValues(ev.SourceID, kind).Set(ev.BaseKW)
	s.effective.WithLabelValues(ev.SourceID, kind).Set(ev.EffectiveKW)
	return nil
}

// RecordFleetOutput sets the fleet gauges.
func (s *PromSink) RecordFleetOutput(ev coremetrics.FleetOutputEvent) error {
	s.fleetOutput.Set(ev.EffectiveKW)
	s.fleetSize.Set(float64(ev.Sources))
	return nil
}
