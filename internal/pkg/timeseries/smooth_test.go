package timeseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tensora-ai/cc-backend/internal/pkg/timeseries"
)

func TestMovingAverage(t *testing.T) {
	t.Run("zero half window is the identity", func(t *testing.T) {
		values := []float64{3, 1, 4, 1, 5}
		assert.Equal(t, values, timeseries.MovingAverage(values, 0))
	})

	t.Run("output keeps the input length", func(t *testing.T) {
		values := []float64{1, 2, 3, 4, 5, 6, 7}
		out := timeseries.MovingAverage(values, 2)
		assert.Len(t, out, len(values))
	})

	t.Run("spike is spread over the window", func(t *testing.T) {
		values := []float64{0, 0, 0, 9, 0, 0, 0}
		out := timeseries.MovingAverage(values, 1)
		assert.InDeltaSlice(t, []float64{0, 0, 3, 3, 3, 0, 0}, out, 1e-9)
	})

	t.Run("constant series is unchanged", func(t *testing.T) {
		values := []float64{5, 5, 5, 5}
		out := timeseries.MovingAverage(values, 2)
		assert.InDeltaSlice(t, values, out, 1e-9)
	})

	t.Run("edges are padded by replication, not zeros", func(t *testing.T) {
		// With zero padding the first output would be pulled toward 0;
		// replicating the boundary value keeps it at 10.
		values := []float64{10, 10, 10, 4, 4, 4}
		out := timeseries.MovingAverage(values, 1)
		assert.InDelta(t, 10.0, out[0], 1e-9)
		assert.InDelta(t, 4.0, out[len(out)-1], 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, timeseries.MovingAverage(nil, 3))
	})
}
