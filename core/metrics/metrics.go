package metrics

import (
	"time"

	"github.com/kilianp07/ecogrid/core/model"
)

// ReportEvent describes a single report generated for a power source.
type ReportEvent struct {
	SessionID   string
	SourceID    string
	Kind        model.Kind
	BaseKW      float64
	EffectiveKW float64
	Detailed    bool
	Time        time.Time
}

// NewReportEvent snapshots src for a report of the given form.
func NewReportEvent(sessionID string, src model.PowerSource, detailed bool, at time.Time) ReportEvent {
	return ReportEvent{
		SessionID:   sessionID,
		SourceID:    src.SourceID(),
		Kind:        src.Kind(),
		BaseKW:      src.BaseOutput(),
		EffectiveKW: src.EffectiveOutput(),
		Detailed:    detailed,
		Time:        at,
	}
}

// MetricsSink records report events for observability purposes.
type MetricsSink interface {
	RecordReport(ev ReportEvent) error
}

// FleetOutputEvent aggregates the output of every source in a session.
type FleetOutputEvent struct {
	SessionID   string
	Sources     int
	BaseKW      float64
	EffectiveKW float64
	Time        time.Time
}

// FleetOutputRecorder records fleet-wide output totals.
type FleetOutputRecorder interface {
	RecordFleetOutput(ev FleetOutputEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordReport(ReportEvent) error           { return nil }
func (NopSink) RecordFleetOutput(FleetOutputEvent) error { return nil }

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordReport forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordReport(ev ReportEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordReport(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordFleetOutput forwards totals to the sinks that support them.
func (m *MultiSink) RecordFleetOutput(ev FleetOutputEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(FleetOutputRecorder); ok {
			if err := rec.RecordFleetOutput(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
