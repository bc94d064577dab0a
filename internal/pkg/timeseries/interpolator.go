package timeseries

import (
	"fmt"
	"sort"
)

// Interpolator reconstructs a continuous signal from discrete samples.
// Evaluating the same interpolator at the same instants always yields
// the same values.
type Interpolator interface {
	Evaluate(ts []float64) []float64
}

// Constant returns a single observed value for any query time. Used for
// cameras that reported exactly one sample in the window.
type Constant struct {
	Value float64
}

func (c Constant) Evaluate(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i := range out {
		out[i] = c.Value
	}
	return out
}

// Linear interpolates piecewise-linearly between samples. Outside the
// observed range it extrapolates with the nearest segment's slope, it
// does not clamp to the boundary values.
type Linear struct {
	xs []float64
	ys []float64
}

// NewLinear builds a Linear interpolator over (x, y) pairs. xs must be
// strictly increasing and hold at least two points.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched lengths: %d xs vs %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("xs not strictly increasing at index %d", i)
		}
	}
	return &Linear{xs: xs, ys: ys}, nil
}

func (l *Linear) Evaluate(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = l.at(t)
	}
	return out
}

func (l *Linear) at(t float64) float64 {
	n := len(l.xs)

	// Pick the segment [seg, seg+1] whose line defines the value at t.
	// Queries before the first or after the last sample reuse the
	// nearest segment, which yields linear extrapolation.
	var seg int
	switch {
	case t <= l.xs[0]:
		seg = 0
	case t >= l.xs[n-1]:
		seg = n - 2
	default:
		seg = sort.SearchFloat64s(l.xs, t) - 1
	}

	x0, x1 := l.xs[seg], l.xs[seg+1]
	y0, y1 := l.ys[seg], l.ys[seg+1]
	return y0 + (t-x0)*(y1-y0)/(x1-x0)
}
