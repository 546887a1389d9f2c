package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/glowfield/clock"
)

// Phase is one slice of a host frame.
type Phase uint8

// Frame phases, in the order a host frame runs them.
const (
	PhaseInput     Phase = iota // Pointer, resize and visibility polling
	PhaseScheduler              // Scheduler pass: timers plus field update and draw
	PhaseComposite              // Background and surface compositing
	PhaseHUD
	PhaseTelemetry
	phaseCount
)

var phaseNames = [phaseCount]string{"input", "scheduler", "composite", "hud", "telemetry"}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// noPhase marks that no phase is being timed.
const noPhase = phaseCount

// PerfCollector times host frames and their phases over a ring of the most
// recent frames. Durations are kept in microseconds.
type PerfCollector struct {
	clock clock.Provider
	size  int
	next  int
	count int

	ticks  []float64
	phases [phaseCount][]float64
	frames []float64 // presented frame intervals
	nframe int
	fnext  int

	cur        [phaseCount]time.Duration
	tickStart  time.Time
	phaseStart time.Time
	active     Phase
	lastFrame  time.Time
}

// NewPerfCollector creates a collector reading time from c and averaging
// over size frames (60 is one second at 60 fps).
func NewPerfCollector(c clock.Provider, size int) *PerfCollector {
	if size < 1 {
		size = 60
	}
	p := &PerfCollector{
		clock:  c,
		size:   size,
		ticks:  make([]float64, size),
		frames: make([]float64, size),
		active: noPhase,
	}
	for i := range p.phases {
		p.phases[i] = make([]float64, size)
	}
	return p
}

// StartTick begins timing a frame.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.clock.Now()
	p.cur = [phaseCount]time.Duration{}
	p.active = noPhase
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.clock.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.active = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.active < phaseCount {
		p.cur[p.active] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the frame.
func (p *PerfCollector) EndTick() {
	now := p.clock.Now()
	p.closePhase(now)
	p.active = noPhase

	p.ticks[p.next] = micros(now.Sub(p.tickStart))
	for i := range p.phases {
		p.phases[i][p.next] = micros(p.cur[i])
	}
	p.next = (p.next + 1) % p.size
	p.count = min(p.count+1, p.size)
}

// RecordFrame records the wall time since the previous presented frame.
func (p *PerfCollector) RecordFrame() {
	now := p.clock.Now()
	if !p.lastFrame.IsZero() {
		p.frames[p.fnext] = micros(now.Sub(p.lastFrame))
		p.fnext = (p.fnext + 1) % p.size
		p.nframe = min(p.nframe+1, p.size)
	}
	p.lastFrame = now
}

// PerfStats summarizes the frames in the ring.
type PerfStats struct {
	TickMean time.Duration
	TickMin  time.Duration
	TickMax  time.Duration
	TickP95  time.Duration

	// Share of the mean tick spent in each phase, in percent
	PhasePct [phaseCount]float64

	TicksPerSecond float64

	// Presented frames; zero until two frames were recorded
	FrameMean   time.Duration
	FrameJitter time.Duration // standard deviation of frame intervals
	FPS         float64
}

// Stats summarizes the current window.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats

	if p.nframe > 0 {
		frames := p.frames[:p.nframe]
		mean := stat.Mean(frames, nil)
		s.FrameMean = fromMicros(mean)
		if p.nframe > 1 {
			s.FrameJitter = fromMicros(stat.StdDev(frames, nil))
		}
		if mean > 0 {
			s.FPS = 1e6 / mean
		}
	}

	if p.count == 0 {
		return s
	}

	ticks := p.ticks[:p.count]
	mean := stat.Mean(ticks, nil)
	s.TickMean = fromMicros(mean)
	s.TickMin = fromMicros(floats.Min(ticks))
	s.TickMax = fromMicros(floats.Max(ticks))
	s.TickP95 = fromMicros(Percentile(ticks, 0.95))
	if mean > 0 {
		s.TicksPerSecond = 1e6 / mean
		for i := range p.phases {
			s.PhasePct[i] = stat.Mean(p.phases[i][:p.count], nil) / mean * 100
		}
	}
	return s
}

// LogStats logs the summary at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer. Phases under 0.1% are left out.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("tick_mean_us", s.TickMean.Microseconds()),
		slog.Int64("tick_max_us", s.TickMax.Microseconds()),
		slog.Int64("tick_p95_us", s.TickP95.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs,
			slog.Float64("fps", s.FPS),
			slog.Int64("frame_jitter_us", s.FrameJitter.Microseconds()),
		)
	}
	for i, pct := range s.PhasePct {
		if pct >= 0.1 {
			attrs = append(attrs, slog.Float64(Phase(i).String()+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	TimeSec       float64 `csv:"time"`
	TickMeanUS    int64   `csv:"tick_mean_us"`
	TickMinUS     int64   `csv:"tick_min_us"`
	TickMaxUS     int64   `csv:"tick_max_us"`
	TickP95US     int64   `csv:"tick_p95_us"`
	TicksPerSec   float64 `csv:"ticks_per_sec"`
	FPS           float64 `csv:"fps"`
	FrameJitterUS int64   `csv:"frame_jitter_us"`
	InputPct      float64 `csv:"input_pct"`
	SchedulerPct  float64 `csv:"scheduler_pct"`
	CompositePct  float64 `csv:"composite_pct"`
	HUDPct        float64 `csv:"hud_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for export.
func (s PerfStats) ToCSV(timeSec float64) PerfStatsCSV {
	return PerfStatsCSV{
		TimeSec:       timeSec,
		TickMeanUS:    s.TickMean.Microseconds(),
		TickMinUS:     s.TickMin.Microseconds(),
		TickMaxUS:     s.TickMax.Microseconds(),
		TickP95US:     s.TickP95.Microseconds(),
		TicksPerSec:   s.TicksPerSecond,
		FPS:           s.FPS,
		FrameJitterUS: s.FrameJitter.Microseconds(),
		InputPct:      s.PhasePct[PhaseInput],
		SchedulerPct:  s.PhasePct[PhaseScheduler],
		CompositePct:  s.PhasePct[PhaseComposite],
		HUDPct:        s.PhasePct[PhaseHUD],
		TelemetryPct:  s.PhasePct[PhaseTelemetry],
	}
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

func fromMicros(us float64) time.Duration {
	return time.Duration(us * float64(time.Microsecond))
}
