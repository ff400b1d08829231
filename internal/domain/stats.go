package domain

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/samber/lo"

	m "github.com/mouse-blink/tptester/internal/model"
)

const (
	// Timings are recorded with microsecond resolution, up to one hour.
	statsMaxMicros  = int64(3600 * 1_000_000)
	statsSigFigures = 3
	microsPerSecond = 1_000_000.0
)

// NewTimingStats summarises CPU times given in seconds. Negative values
// (launch failures) are ignored.
func NewTimingStats(times []float64) m.TimingStats {
	valid := lo.Filter(times, func(t float64, _ int) bool { return t >= 0 })
	if len(valid) == 0 {
		return m.TimingStats{}
	}

	hist := hdrhistogram.New(1, statsMaxMicros, statsSigFigures)

	for _, t := range valid {
		micros := int64(math.Round(t * microsPerSecond))
		if micros > statsMaxMicros {
			micros = statsMaxMicros
		}

		_ = hist.RecordValue(micros)
	}

	return m.TimingStats{
		Count: hist.TotalCount(),
		Min:   toSeconds(hist.Min()),
		Mean:  hist.Mean() / microsPerSecond,
		P50:   toSeconds(hist.ValueAtQuantile(50)),
		P90:   toSeconds(hist.ValueAtQuantile(90)),
		Max:   toSeconds(hist.Max()),
	}
}

func toSeconds(micros int64) float64 {
	return float64(micros) / microsPerSecond
}
