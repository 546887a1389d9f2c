package game

import (
	"log/slog"
)

// flushTelemetry writes a stats window once one has elapsed.
func (g *Game) flushTelemetry() {
	now := g.sched.Now()
	if !g.collector.ShouldFlush(now) {
		return
	}

	stats := g.collector.Flush(now)
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.TimeSec); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
