package telemetry

import "time"

// Collector accumulates field activity within time windows and produces
// WindowStats. It satisfies field.Observer.
type Collector struct {
	window  time.Duration
	started time.Time

	windowStart time.Time

	particles  []float64
	links      []float64
	frameTimes []float64 // milliseconds
	fps        []float64

	bursts   int
	spawned  int
	prunes   int
	pruned   int
	restarts int
}

// NewCollector creates a collector whose windows last window, starting at now.
func NewCollector(window time.Duration, now time.Time) *Collector {
	if window <= 0 {
		window = 10 * time.Second
	}
	return &Collector{
		window:      window,
		started:     now,
		windowStart: now,
	}
}

// ObserveFrame records the population and link count of one field frame.
func (c *Collector) ObserveFrame(particles, links int) {
	c.particles = append(c.particles, float64(particles))
	c.links = append(c.links, float64(links))
}

// ObserveBurst records a click burst.
func (c *Collector) ObserveBurst(spawned int) {
	c.bursts++
	c.spawned += spawned
}

// ObservePrune records a prune that removed particles.
func (c *Collector) ObservePrune(removed int) {
	c.prunes++
	c.pruned += removed
}

// RecordRestart records a field rebuild.
func (c *Collector) RecordRestart() {
	c.restarts++
}

// RecordFrameTime records the host frame duration.
func (c *Collector) RecordFrameTime(d time.Duration) {
	c.frameTimes = append(c.frameTimes, float64(d)/float64(time.Millisecond))
}

// RecordFPS records a frame-rate sample.
func (c *Collector) RecordFPS(fps float64) {
	c.fps = append(c.fps, fps)
}

// ShouldFlush returns true once the current window has elapsed.
func (c *Collector) ShouldFlush(now time.Time) bool {
	return now.Sub(c.windowStart) >= c.window
}

// Window returns the window duration.
func (c *Collector) Window() time.Duration {
	return c.window
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(now time.Time) WindowStats {
	particles := Summarize(c.particles)
	links := Summarize(c.links)
	frameTimes := Summarize(c.frameTimes)
	fps := Summarize(c.fps)

	stats := WindowStats{
		WindowStart: c.windowStart,
		TimeSec:     now.Sub(c.started).Seconds(),
		Frames:      len(c.particles),

		ParticlesMean: particles.Mean,
		ParticlesMin:  int(particles.Min),
		ParticlesMax:  int(particles.Max),

		LinksMean: links.Mean,
		LinksStd:  links.Std,

		Bursts:   c.bursts,
		Spawned:  c.spawned,
		Prunes:   c.prunes,
		Pruned:   c.pruned,
		Restarts: c.restarts,

		FPSMean:         fps.Mean,
		FrameTimeMeanMS: frameTimes.Mean,
		FrameTimeStdMS:  frameTimes.Std,
		FrameTimeP90MS:  Percentile(c.frameTimes, 0.9),
	}

	// Reset for next window
	c.windowStart = now
	c.particles = c.particles[:0]
	c.links = c.links[:0]
	c.frameTimes = c.frameTimes[:0]
	c.fps = c.fps[:0]
	c.bursts = 0
	c.spawned = 0
	c.prunes = 0
	c.pruned = 0
	c.restarts = 0

	return stats
}
