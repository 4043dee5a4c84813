package metrics

import (
	coremetrics "github.com/kilianp07/ecogrid/core/metrics"
	"github.com/kilianp07/ecogrid/infra/logger"
)

// LogSink writes every event as a structured debug log line.
type LogSink struct {
	log logger.Logger
}

// NewLogSink returns a LogSink writing to log.
func NewLogSink(log logger.Logger) *LogSink {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &LogSink{log: log}
}

func (s *LogSink) RecordReport(ev coremetrics.ReportEvent) error {
	s.log.Debugw("report generated", map[string]any{
		"session_id":   ev.SessionID,
		"source_id":    ev.SourceID,
		"kind":         ev.Kind.String(),
		"base_kw":      ev.BaseKW,
		"effective_kw": ev.EffectiveKW,
		"detailed":     ev.Detailed,
		"time":         ev.Time,
	})
	return nil
}

func (s *LogSink) RecordFleetOutput(ev coremetrics.FleetOutputEvent) error {
	s.log.Debugw("fleet output", map[string]any{
		"session_id":   ev.SessionID,
		"sources":      ev.Sources,
		"base_kw":      ev.BaseKW,
		"effective_kw": ev.EffectiveKW,
		"time":         ev.Time,
	})
	return nil
}
