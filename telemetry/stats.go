package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStart time.Time `csv:"-"`
	TimeSec     float64   `csv:"time"` // Seconds since the collector started

	Frames int `csv:"frames"`

	// Particle population over the window
	ParticlesMean float64 `csv:"particles_mean"`
	ParticlesMin  int     `csv:"particles_min"`
	ParticlesMax  int     `csv:"particles_max"`

	// Links drawn per frame
	LinksMean float64 `csv:"links_mean"`
	LinksStd  float64 `csv:"links_std"`

	// Events during window
	Bursts   int `csv:"bursts"`
	Spawned  int `csv:"spawned"`
	Prunes   int `csv:"prunes"`
	Pruned   int `csv:"pruned"`
	Restarts int `csv:"restarts"`

	// Host frame timing
	FPSMean         float64 `csv:"fps_mean"`
	FrameTimeMeanMS float64 `csv:"frame_time_mean_ms"`
	FrameTimeStdMS  float64 `csv:"frame_time_std_ms"`
	FrameTimeP90MS  float64 `csv:"frame_time_p90_ms"`
}

// Summary holds the moments of a sample.
type Summary struct {
	Mean, Std, Min, Max float64
}

// Summarize computes mean, sample standard deviation, min and max.
// Empty input yields zeros; a single value has zero deviation.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{
		Mean: stat.Mean(values, nil),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}

// Percentile returns the p-th empirical quantile, p in [0, 1].
// Returns 0 for empty input. values is not modified.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return stat.Quantile(min(max(p, 0), 1), stat.Empirical, sorted, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("time", s.TimeSec),
		slog.Int("frames", s.Frames),
		slog.Float64("particles_mean", s.ParticlesMean),
		slog.Int("particles_min", s.ParticlesMin),
		slog.Int("particles_max", s.ParticlesMax),
		slog.Float64("links_mean", s.LinksMean),
		slog.Int("bursts", s.Bursts),
		slog.Int("prunes", s.Prunes),
		slog.Int("restarts", s.Restarts),
		slog.Float64("fps_mean", s.FPSMean),
		slog.Float64("frame_time_mean_ms", s.FrameTimeMeanMS),
		slog.Float64("frame_time_p90_ms", s.FrameTimeP90MS),
	)
}

// LogStats logs the window at info level.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
