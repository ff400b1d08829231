package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/tptester/internal/model"
)

func TestNewTimingStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, m.TimingStats{}, NewTimingStats(nil))
	})

	t.Run("only sentinels", func(t *testing.T) {
		assert.Equal(t, m.TimingStats{}, NewTimingStats([]float64{m.SentinelTime, m.SentinelTime}))
	})

	t.Run("ignores sentinels", func(t *testing.T) {
		stats := NewTimingStats([]float64{0.1, m.SentinelTime, 0.2, 0.3, 0.4})

		assert.Equal(t, int64(4), stats.Count)
		assert.InDelta(t, 0.1, stats.Min, 0.001)
		assert.InDelta(t, 0.4, stats.Max, 0.001)
		assert.InDelta(t, 0.25, stats.Mean, 0.001)
		assert.InDelta(t, 0.2, stats.P50, 0.001)
		assert.InDelta(t, 0.4, stats.P90, 0.001)
	})

	t.Run("zero times are counted", func(t *testing.T) {
		stats := NewTimingStats([]float64{0, 0})

		assert.Equal(t, int64(2), stats.Count)
		assert.InDelta(t, 0.0, stats.Max, 0.00001)
	})
}
