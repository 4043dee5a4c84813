package model

import "gonum.org/v1/gonum/floats"

// TotalBaseOutput sums the rated output of all sources.
func TotalBaseOutput(sources ...PowerSource) float64 {
	vals := make([]float64, len(sources))
	for i, s := range sources {
		vals[i] = s.BaseOutput()
	}
	return floats.Sum(vals)
}

// TotalEffectiveOutput sums the effective output of all sources.
func TotalEffectiveOutput(sources ...PowerSource) float64 {
	vals := make([]float64, len(sources))
	for i, s := range sources {
		vals[i] = s.EffectiveOutput()
	}
	return floats.Sum(vals)
}
