package timeseries

import "gonum.org/v1/gonum/floats"

// Grid returns n uniformly spaced instants between min and max
// inclusive, the evaluation grid for the aggregated signal.
func Grid(min, max float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{min}
	}
	return floats.Span(make([]float64, n), min, max)
}
