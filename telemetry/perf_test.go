package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/glowfield/clock"
)

func newPerfRig(size int) (*PerfCollector, *clock.Mock) {
	mock := clock.NewMock(time.Unix(0, 0))
	return NewPerfCollector(mock, size), mock
}

func TestPerfCollector_TracksPhases(t *testing.T) {
	pc, mock := newPerfRig(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseInput)
		mock.Advance(100 * time.Microsecond)
		pc.StartPhase(PhaseScheduler)
		mock.Advance(300 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.TickMean != 400*time.Microsecond {
		t.Errorf("expected mean tick 400us, got %v", stats.TickMean)
	}
	if stats.TickMin != stats.TickMean || stats.TickMax != stats.TickMean {
		t.Errorf("expected equal ticks, got min %v max %v", stats.TickMin, stats.TickMax)
	}
	if got := stats.PhasePct[PhaseInput]; got != 25 {
		t.Errorf("expected input share 25%%, got %v", got)
	}
	if got := stats.PhasePct[PhaseScheduler]; got != 75 {
		t.Errorf("expected scheduler share 75%%, got %v", got)
	}
	if stats.PhasePct[PhaseHUD] != 0 {
		t.Errorf("expected no HUD time, got %v%%", stats.PhasePct[PhaseHUD])
	}
	if stats.TicksPerSecond != 2500 {
		t.Errorf("expected 2500 ticks/s, got %v", stats.TicksPerSecond)
	}
}

func TestPerfCollector_Spread(t *testing.T) {
	pc, mock := newPerfRig(20)

	// Ticks of 1ms..20ms
	for i := 1; i <= 20; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseScheduler)
		mock.Advance(time.Duration(i) * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.TickMin != time.Millisecond || stats.TickMax != 20*time.Millisecond {
		t.Errorf("expected range [1ms, 20ms], got [%v, %v]", stats.TickMin, stats.TickMax)
	}
	if stats.TickMean != 10500*time.Microsecond {
		t.Errorf("expected mean 10.5ms, got %v", stats.TickMean)
	}
	if stats.TickP95 < 18*time.Millisecond || stats.TickP95 > 20*time.Millisecond {
		t.Errorf("expected p95 near the top of the range, got %v", stats.TickP95)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc, mock := newPerfRig(5)

	// A slow frame early on must fall out of the window
	pc.StartTick()
	mock.Advance(20 * time.Millisecond)
	pc.EndTick()

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseInput)
		mock.Advance(time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.TickMax != time.Millisecond {
		t.Errorf("expected the slow frame to be evicted, max is %v", stats.TickMax)
	}
}

func TestPerfCollector_Empty(t *testing.T) {
	pc, _ := newPerfRig(10)
	stats := pc.Stats()

	if stats.TickMean != 0 || stats.FPS != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc, mock := newPerfRig(10)

	pc.RecordFrame()
	if pc.Stats().FPS != 0 {
		t.Error("a single frame has no interval")
	}

	mock.Advance(16 * time.Millisecond)
	pc.RecordFrame()
	mock.Advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameMean != 18*time.Millisecond {
		t.Errorf("expected mean interval 18ms, got %v", stats.FrameMean)
	}
	if want := 1000.0 / 18; math.Abs(stats.FPS-want) > 1e-9 {
		t.Errorf("expected %v fps, got %v", want, stats.FPS)
	}
	// Sample std-dev of {16ms, 20ms} is 2ms·√2
	ms := time.Millisecond
	if want := time.Duration(2 * math.Sqrt2 * float64(ms)); absDuration(stats.FrameJitter-want) > time.Microsecond {
		t.Errorf("expected jitter %v, got %v", want, stats.FrameJitter)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseComposite.String() != "composite" {
		t.Errorf("got %q", PhaseComposite.String())
	}
	if Phase(42).String() != "unknown" {
		t.Errorf("got %q", Phase(42).String())
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	var stats PerfStats
	stats.TickMean = 2 * time.Millisecond
	stats.TickP95 = 3 * time.Millisecond
	stats.PhasePct[PhaseScheduler] = 70
	stats.PhasePct[PhaseComposite] = 30
	stats.FPS = 60

	row := stats.ToCSV(12.5)

	if row.TimeSec != 12.5 {
		t.Errorf("expected time 12.5, got %v", row.TimeSec)
	}
	if row.TickMeanUS != 2000 || row.TickP95US != 3000 {
		t.Errorf("expected 2000/3000us, got %d/%d", row.TickMeanUS, row.TickP95US)
	}
	if row.SchedulerPct != 70 || row.CompositePct != 30 || row.HUDPct != 0 {
		t.Errorf("unexpected phase split %+v", row)
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
