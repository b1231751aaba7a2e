package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := ComputeLatencyStats(nil)
		assert.Zero(t, s.SampleCount)
		assert.Zero(t, s.P50())
		assert.NotNil(t, s.Percentiles)
	})

	t.Run("single value", func(t *testing.T) {
		s := ComputeLatencyStats([]time.Duration{10 * time.Millisecond})
		assert.Equal(t, 10*time.Millisecond, s.Min)
		assert.Equal(t, 10*time.Millisecond, s.Max)
		assert.Equal(t, 10*time.Millisecond, s.P99())
		assert.Zero(t, s.Stddev)
	})

	t.Run("unsorted input", func(t *testing.T) {
		in := []time.Duration{
			50 * time.Millisecond,
			10 * time.Millisecond,
			30 * time.Millisecond,
			20 * time.Millisecond,
			40 * time.Millisecond,
		}
		s := ComputeLatencyStats(in)
		assert.Equal(t, 10*time.Millisecond, s.Min)
		assert.Equal(t, 50*time.Millisecond, s.Max)
		assert.Equal(t, 30*time.Millisecond, s.Mean)
		assert.Equal(t, 30*time.Millisecond, s.P50())
		assert.InDelta(t, float64(46*time.Millisecond), float64(s.P90()), float64(time.Microsecond))
		assert.Equal(t, 5, s.SampleCount)
		assert.Equal(t, 50*time.Millisecond, in[0], "input must not be reordered")
	})

	t.Run("interpolated median", func(t *testing.T) {
		s := ComputeLatencyStats([]time.Duration{10 * time.Millisecond, 20 * time.Millisecond})
		assert.Equal(t, 15*time.Millisecond, s.P50())
	})
}

func TestAggregateLatencyStats(t *testing.T) {
	a := ComputeLatencyStats([]time.Duration{time.Millisecond, 3 * time.Millisecond})
	b := ComputeLatencyStats([]time.Duration{2 * time.Millisecond})

	agg := AggregateLatencyStats([]LatencyStats{a, b})
	assert.Equal(t, 3, agg.SampleCount)
	assert.Equal(t, time.Millisecond, agg.Min)
	assert.Equal(t, 3*time.Millisecond, agg.Max)
	assert.Equal(t, 2*time.Millisecond, agg.Mean)

	assert.Zero(t, AggregateLatencyStats(nil).SampleCount)
}
