package telemetry

import (
	"math"
	"time"

	"github.com/pthm-cable/glowfield/clock"
)

// FrameMonitor samples the frame rate once per interval and flags the host
// as degraded when a sample falls below the threshold. Degradation is never
// cleared.
type FrameMonitor struct {
	provider clock.Provider
	lowFPS   float64
	every    time.Duration

	windowStart time.Time
	frames      int
	fps         float64
	degraded    bool
	samples     int
}

// NewFrameMonitor creates a monitor flagging samples below lowFPS.
func NewFrameMonitor(p clock.Provider, lowFPS float64, every time.Duration) *FrameMonitor {
	if every <= 0 {
		every = time.Second
	}
	return &FrameMonitor{
		provider:    p,
		lowFPS:      lowFPS,
		every:       every,
		windowStart: p.Now(),
	}
}

// Frame counts one presented frame. It returns true when this frame closed
// a sample that was below the threshold.
func (m *FrameMonitor) Frame() bool {
	now := m.provider.Now()
	m.frames++

	elapsed := now.Sub(m.windowStart)
	if elapsed < m.every {
		return false
	}

	m.fps = math.Round(float64(m.frames) * float64(time.Second) / float64(elapsed))
	m.frames = 0
	m.windowStart = now
	m.samples++

	if m.fps < m.lowFPS {
		m.degraded = true
		return true
	}
	return false
}

// FPS returns the last sampled frame rate.
func (m *FrameMonitor) FPS() float64 {
	return m.fps
}

// Degraded reports whether any sample fell below the threshold.
func (m *FrameMonitor) Degraded() bool {
	return m.degraded
}

// Samples returns the number of completed samples.
func (m *FrameMonitor) Samples() int {
	return m.samples
}
