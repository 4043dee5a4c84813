package model

import "fmt"

// WindTurbine is a wind source whose output scales linearly with wind speed,
// reaching its rated output at 10 m/s.
type WindTurbine struct {
	Base
	windSpeed float64 // m/s
}

// NewWindTurbine validates every field and returns the turbine.
func NewWindTurbine(id string, baseKW, windSpeed float64) (*WindTurbine, error) {
	b, err := NewBase(id, baseKW)
	if err != nil {
		return nil, err
	}
	t := &WindTurbine{Base: b}
	if err := t.SetWindSpeed(windSpeed); err != nil {
		return nil, err
	}
	return t, nil
}

// WindSpeed returns the wind speed in m/s.
func (t *WindTurbine) WindSpeed() float64 { return t.windSpeed }

// SetWindSpeed rejects negative speeds.
func (t *WindTurbine) SetWindSpeed(speed float64) error {
	if !nonNegative(speed) {
		return fmt.Errorf("%w: wind speed cannot be negative", ErrInvalidArgument)
	}
	t.windSpeed = speed
	return nil
}

// Kind reports KindWind.
func (t *WindTurbine) Kind() Kind { return KindWind }

// EffectiveOutput returns the rated output scaled by windSpeed/10.
func (t *WindTurbine) EffectiveOutput() float64 {
	return t.baseKW * (t.windSpeed / 10)
}

// Summary renders the effective-output line with two decimals.
func (t *WindTurbine) Summary() string {
	return fmt.Sprintf("Wind Turbine [%s] Effective Output: %.2f kW", t.id, t.EffectiveOutput())
}
