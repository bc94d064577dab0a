package timeseries

import "gonum.org/v1/gonum/floats"

// MovingAverage smooths values with a centered window of size
// 2*halfWindow+1. The series is padded by repeating the first and last
// values halfWindow times on each side, so the output has the same
// length as the input and the boundaries are not biased toward zero.
// halfWindow 0 returns the input unchanged.
func MovingAverage(values []float64, halfWindow int) []float64 {
	if halfWindow <= 0 || len(values) == 0 {
		return values
	}

	window := 2*halfWindow + 1
	padded := make([]float64, len(values)+2*halfWindow)
	for i := 0; i < halfWindow; i++ {
		padded[i] = values[0]
		padded[len(padded)-1-i] = values[len(values)-1]
	}
	copy(padded[halfWindow:], values)

	out := make([]float64, len(values))
	for i := range out {
		out[i] = floats.Sum(padded[i:i+window]) / float64(window)
	}
	return out
}
