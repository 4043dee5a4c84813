package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/ecogrid/infra/logger"
)

const namePrefix = "ecogrid_"

// Sample is a single gathered value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Gather collects the ecogrid_* counters and gauges exposed by g.
func Gather(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namePrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: v})
		}
	}
	return out, nil
}

// LogSnapshot writes every gathered sample to log at debug level.
func LogSnapshot(g prometheus.Gatherer, log logger.Logger) error {
	samples, err := Gather(g)
	if err != nil {
		return err
	}
	for _, s := range samples {
		fields := make(map[string]any, len(s.Labels)+1)
		for k, v := range s.Labels {
			fields[k] = v
		}
		fields["value"] = s.Value
		log.Debugw(s.Name, fields)
	}
	return nil
}
