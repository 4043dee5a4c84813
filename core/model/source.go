package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a power source field is assigned a value
// outside its domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Kind identifies the concrete generator behind a PowerSource.
type Kind int

const (
	KindSolar Kind = iota + 1
	KindWind
)

func (k Kind) String() string {
	switch k {
	case KindSolar:
		return "solar"
	case KindWind:
		return "wind"
	default:
		return "unknown"
	}
}

// PowerSource is the reporting contract shared by every generator kind.
type PowerSource interface {
	SourceID() string
	// BaseOutput is the rated output in kW, independent of conditions.
	BaseOutput() float64
	// EffectiveOutput is the rated output scaled by the environmental factor.
	EffectiveOutput() float64
	Kind() Kind
	// Summary returns the one-line report for the source.
	Summary() string
}

// Base holds the identity and rated output common to all generators.
// It is embedded by each concrete source and is not a PowerSource on its own.
type Base struct {
	id     string
	baseKW float64
}

// NewBase validates and returns a Base record.
func NewBase(id string, baseKW float64) (Base, error) {
	var b Base
	if err := b.SetSourceID(id); err != nil {
		return Base{}, err
	}
	if err := b.SetBaseOutput(baseKW); err != nil {
		return Base{}, err
	}
	return b, nil
}

// SourceID returns the source identifier.
func (b *Base) SourceID() string { return b.id }

// BaseOutput returns the rated output in kW.
func (b *Base) BaseOutput() float64 { return b.baseKW }

// SetSourceID replaces the identifier. Blank values are rejected and leave the
// current identifier unchanged.
func (b *Base) SetSourceID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: source ID cannot be empty", ErrInvalidArgument)
	}
	b.id = id
	return nil
}

// SetBaseOutput replaces the rated output.
func (b *Base) SetBaseOutput(kw float64) error {
	if !nonNegative(kw) {
		return fmt.Errorf("%w: base output cannot be negative", ErrInvalidArgument)
	}
	b.baseKW = kw
	return nil
}

// Summary renders the generic one-line report using the rated output.
// Concrete sources shadow it with their effective-output line.
func (b *Base) Summary() string {
	return fmt.Sprintf("Power Source %s producing %s kW.", b.id, FormatKW(b.baseKW))
}

// FormatKW formats a power value with the shortest representation that
// round-trips, e.g. 100 or 12.5. Values whose decimal exponent is below -5
// or at least 15 use exponent form with a two-digit minimum exponent, e.g.
// 1E+16 or 1E-06.
func FormatKW(kw float64) string {
	if kw == 0 || !finite(kw) {
		return strconv.FormatFloat(kw, 'f', -1, 64)
	}
	s := strconv.FormatFloat(kw, 'e', -1, 64)
	_, expText, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expText)
	if err != nil || (exp >= -5 && exp < 15) {
		return strconv.FormatFloat(kw, 'f', -1, 64)
	}
	return strings.Replace(s, "e", "E", 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return finite(v) && v >= 0
}
