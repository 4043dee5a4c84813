package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/ecogrid/config"
	coremetrics "github.com/kilianp07/ecogrid/core/metrics"
	"github.com/kilianp07/ecogrid/core/model"
	"github.com/kilianp07/ecogrid/core/report"
	"github.com/kilianp07/ecogrid/infra/logger"
	"github.com/kilianp07/ecogrid/infra/metrics"
	"github.com/kilianp07/ecogrid/internal/prompt"
)

const (
	PromptSolarID     = "Enter Solar Panel ID: "
	PromptSolarOutput = "Enter Solar Panel Base Output (kW): "
	PromptSunlight    = "Enter Sunlight Percent (0-100): "
	PromptWindID      = "Enter Wind Turbine ID: "
	PromptWindOutput  = "Enter Wind Turbine Base Output (kW): "
	PromptWindSpeed   = "Enter Wind Speed (m/s): "
	banner            = "=== ECO-GRID ENERGY DISTRIBUTOR ===\n\n"
	summaryHeader     = "\n--- Summary Report ---\n"
	detailedHeader    = "\n--- Detailed Report ---\n"
	closingMessage    = "\nSystem running successfully.\nSession Ended.\n"
)

// Session drives one interactive run: it gathers one solar and one wind
// source and prints the summary and detailed reports.
type Session struct {
	ID       string
	in       *prompt.Reader
	out      io.Writer
	sink     coremetrics.MetricsSink
	gatherer prometheus.Gatherer
	log      logger.Logger
	now      func() time.Time
}

// New creates a Session from the configuration, reading answers from in and
// writing the transcript to out.
func New(cfg *config.Config, in io.Reader, out io.Writer) (*Session, error) {
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	s := NewSession(in, out, sink, logger.New("session"))
	s.gatherer = prometheus.DefaultGatherer
	return s, nil
}

// NewSession wires a Session with explicit dependencies. A nil sink records
// nothing and a nil logger discards output.
func NewSession(in io.Reader, out io.Writer, sink coremetrics.MetricsSink, log logger.Logger) *Session {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Session{
		ID:   uuid.NewString(),
		in:   prompt.NewReader(in, out, log),
		out:  out,
		sink: sink,
		log:  log,
		now:  time.Now,
	}
}

// Run executes the session script. It returns ctx.Err() as soon as ctx is
// cancelled, including while a prompt waits for input, and prompt.ErrInputClosed
// if the input ends.
func (s *Session) Run(ctx context.Context) error {
	s.log.Infof("session %s started", s.ID)
	if _, err := io.WriteString(s.out, banner); err != nil {
		return err
	}

	solar, err := s.readSolarPanel(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	wind, err := s.readWindTurbine(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sources := []model.PowerSource{solar, wind}
	if err := s.writeSection(summaryHeader, sources, false); err != nil {
		return err
	}
	if err := s.writeSection(detailedHeader, sources, true); err != nil {
		return err
	}
	s.recordFleet(sources)
	if _, err := io.WriteString(s.out, closingMessage); err != nil {
		return err
	}
	s.log.Infof("session %s ended", s.ID)
	return nil
}

// Close logs a snapshot of the Prometheus metrics recorded by the session.
func (s *Session) Close() error {
	if s.gatherer == nil {
		return nil
	}
	return metrics.LogSnapshot(s.gatherer, s.log)
}

func (s *Session) readSolarPanel(ctx context.Context) (*model.SolarPanel, error) {
	id, err := s.in.ReadNonEmptyString(ctx, PromptSolarID)
	if err != nil {
		return nil, err
	}
	base, err := s.in.ReadNonNegativeNumber(ctx, PromptSolarOutput)
	if err != nil {
		return nil, err
	}
	pct, err := s.in.ReadNumberInRange(ctx, PromptSunlight, 0, 100)
	if err != nil {
		return nil, err
	}
	p, err := model.NewSolarPanel(id, base, pct)
	if err != nil {
		return nil, fmt.Errorf("solar panel: %w", err)
	}
	return p, nil
}

func (s *Session) readWindTurbine(ctx context.Context) (*model.WindTurbine, error) {
	id, err := s.in.ReadNonEmptyString(ctx, PromptWindID)
	if err != nil {
		return nil, err
	}
	base, err := s.in.ReadNonNegativeNumber(ctx, PromptWindOutput)
	if err != nil {
		return nil, err
	}
	speed, err := s.in.ReadNonNegativeNumber(ctx, PromptWindSpeed)
	if err != nil {
		return nil, err
	}
	t, err := model.NewWindTurbine(id, base, speed)
	if err != nil {
		return nil, fmt.Errorf("wind turbine: %w", err)
	}
	return t, nil
}

func (s *Session) writeSection(header string, sources []model.PowerSource, detailed bool) error {
	if _, err := io.WriteString(s.out, header); err != nil {
		return err
	}
	for _, src := range sources {
		if err := report.Generate(s.out, src, detailed); err != nil {
			return err
		}
		ev := coremetrics.NewReportEvent(s.ID, src, detailed, s.now())
		if err := s.sink.RecordReport(ev); err != nil {
			s.log.Warnf("record report for %s: %v", src.SourceID(), err)
		}
	}
	return nil
}

func (s *Session) recordFleet(sources []model.PowerSource) {
	ev := coremetrics.FleetOutputEvent{
		SessionID:   s.ID,
		Sources:     len(sources),
		BaseKW:      model.TotalBaseOutput(sources...),
		EffectiveKW: model.TotalEffectiveOutput(sources...),
		Time:        s.now(),
	}
	s.log.Infof("fleet output: %d sources, %.2f kW effective of %s kW rated",
		ev.Sources, ev.EffectiveKW, model.FormatKW(ev.BaseKW))
	if rec, ok := s.sink.(coremetrics.FleetOutputRecorder); ok {
		if err := rec.RecordFleetOutput(ev); err != nil {
			s.log.Warnf("record fleet output: %v", err)
		}
	}
}
