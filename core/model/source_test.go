package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarPanelEffectiveOutput(t *testing.T) {
	p, err := NewSolarPanel("S1", 100, 50)
	require.NoError(t, err)
	if got := p.EffectiveOutput(); got != 50 {
		t.Fatalf("expected 50 got %v", got)
	}
	assert.Equal(t, "Solar Panel [S1] Effective Output: 50.00 kW", p.Summary())
}

func TestWindTurbineEffectiveOutput(t *testing.T) {
	w, err := NewWindTurbine("W1", 200, 5)
	require.NoError(t, err)
	if got := w.EffectiveOutput(); got != 100 {
		t.Fatalf("expected 100 got %v", got)
	}
	assert.Equal(t, "Wind Turbine [W1] Effective Output: 100.00 kW", w.Summary())
}

func TestSummaryRoundsToTwoDecimals(t *testing.T) {
	p, err := NewSolarPanel("roof", 3.333, 33)
	require.NoError(t, err)
	// 3.333 * 0.33 = 1.09989
	assert.Equal(t, "Solar Panel [roof] Effective Output: 1.10 kW", p.Summary())

	w, err := NewWindTurbine("mast", 0, 12)
	require.NoError(t, err)
	assert.Equal(t, "Wind Turbine [mast] Effective Output: 0.00 kW", w.Summary())
}

func TestSetSourceID(t *testing.T) {
	var b Base
	for _, id := range []string{"", "   ", "\t\n"} {
		err := b.SetSourceID(id)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("id %q: expected ErrInvalidArgument got %v", id, err)
		}
	}
	require.NoError(t, b.SetSourceID(" S-1 "))
	assert.Equal(t, " S-1 ", b.SourceID())

	// A rejected assignment keeps the previous identifier.
	require.Error(t, b.SetSourceID(""))
	assert.Equal(t, " S-1 ", b.SourceID())
}

func TestSetBaseOutput(t *testing.T) {
	var b Base
	for _, v := range []float64{-0.0001, -10, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, b.SetBaseOutput(v), ErrInvalidArgument, "value %v", v)
	}
	require.NoError(t, b.SetBaseOutput(0))
	require.NoError(t, b.SetBaseOutput(12.5))
	require.Error(t, b.SetBaseOutput(-1))
	assert.Equal(t, 12.5, b.BaseOutput())
}

func TestSetSunlightPercentBounds(t *testing.T) {
	p, err := NewSolarPanel("S1", 10, 10)
	require.NoError(t, err)
	cases := []struct {
		pct float64
		ok  bool
	}{
		{-0.01, false},
		{0, true},
		{42.5, true},
		{100, true},
		{100.01, false},
		{math.NaN(), false},
	}
	for _, c := range cases {
		err := p.SetSunlightPercent(c.pct)
		if c.ok {
			assert.NoError(t, err, "pct %v", c.pct)
			assert.Equal(t, c.pct, p.SunlightPercent())
		} else {
			assert.ErrorIs(t, err, ErrInvalidArgument, "pct %v", c.pct)
		}
	}
}

func TestSetWindSpeed(t *testing.T) {
	w, err := NewWindTurbine("W1", 10, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, w.SetWindSpeed(-0.5), ErrInvalidArgument)
	assert.Equal(t, 1.0, w.WindSpeed())
	require.NoError(t, w.SetWindSpeed(0))
	require.NoError(t, w.SetWindSpeed(25))
	assert.Equal(t, 25.0, w.WindSpeed())
}

func TestConstructorsValidate(t *testing.T) {
	_, err := NewSolarPanel(" ", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewSolarPanel("S", -1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewSolarPanel("S", 1, 101)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewWindTurbine("", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewWindTurbine("W", 1, -3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBaseSummaryUsesRatedOutput(t *testing.T) {
	b, err := NewBase("G7", 12.5)
	require.NoError(t, err)
	assert.Equal(t, "Power Source G7 producing 12.5 kW.", b.Summary())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "solar", KindSolar.String())
	assert.Equal(t, "wind", KindWind.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestFormatKW(t *testing.T) {
	assert.Equal(t, "100", FormatKW(100))
	assert.Equal(t, "12.5", FormatKW(12.5))
	assert.Equal(t, "0", FormatKW(0))

	cases := []struct {
		in   float64
		want string
	}{
		{1e14, "100000000000000"},
		{123456789012345, "123456789012345"},
		{1e15, "1E+15"},
		{1e16, "1E+16"},
		{1.5e20, "1.5E+20"},
		{1.7976931348623157e308, "1.7976931348623157E+308"},
		{0.0001, "0.0001"},
		{0.00001, "1E-05"},
		{2.5e-7, "2.5E-07"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatKW(c.in), "%g", c.in)
	}
}
