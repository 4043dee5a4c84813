package model

import "fmt"

// SolarPanel is a photovoltaic source whose output scales with sunlight.
type SolarPanel struct {
	Base
	sunlightPct float64 // between 0 and 100
}

// NewSolarPanel validates every field and returns the panel.
func NewSolarPanel(id string, baseKW, sunlightPct float64) (*SolarPanel, error) {
	b, err := NewBase(id, baseKW)
	if err != nil {
		return nil, err
	}
	p := &SolarPanel{Base: b}
	if err := p.SetSunlightPercent(sunlightPct); err != nil {
		return nil, err
	}
	return p, nil
}

// SunlightPercent returns the share of full sunlight received.
func (p *SolarPanel) SunlightPercent() float64 { return p.sunlightPct }

// SetSunlightPercent accepts values in the inclusive range [0,100].
func (p *SolarPanel) SetSunlightPercent(pct float64) error {
	if !finite(pct) || pct < 0 || pct > 100 {
		return fmt.Errorf("%w: sunlight percent must be between 0 and 100", ErrInvalidArgument)
	}
	p.sunlightPct = pct
	return nil
}

// Kind reports KindSolar.
func (p *SolarPanel) Kind() Kind { return KindSolar }

// EffectiveOutput returns the rated output scaled by the sunlight percentage.
func (p *SolarPanel) EffectiveOutput() float64 {
	return p.baseKW * (p.sunlightPct / 100)
}

// Summary renders the effective-output line with two decimals.
func (p *SolarPanel) Summary() string {
	return fmt.Sprintf("Solar Panel [%s] Effective Output: %.2f kW", p.id, p.EffectiveOutput())
}
