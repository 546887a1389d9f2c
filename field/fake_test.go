package field

import (
	"errors"
	"time"

	"github.com/pthm-cable/glowfield/clock"
	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
)

type lineCall struct {
	x0, y0, x1, y1 float64
	width, alpha   float64
	color          components.Color
}

type recordingSurface struct {
	w, h    int
	opacity float64
	frames  int
	glows   int
	discs   int
	lines   []lineCall
	open    bool
}

func (s *recordingSurface) Begin() {
	s.open = true
	s.glows, s.discs = 0, 0
	s.lines = s.lines[:0]
}

func (s *recordingSurface) Glow(x, y, radius float64, c components.Color, alpha float64) {
	s.glows++
}

func (s *recordingSurface) Disc(x, y, radius float64, c components.Color, alpha float64) {
	s.discs++
}

func (s *recordingSurface) Line(x0, y0, x1, y1, width float64, c components.Color, alpha float64) {
	s.lines = append(s.lines, lineCall{x0, y0, x1, y1, width, alpha, c})
}

func (s *recordingSurface) End() {
	s.open = false
	s.frames++
}

func (s *recordingSurface) Resize(w, h int)          { s.w, s.h = w, h }
func (s *recordingSurface) SetOpacity(alpha float64) { s.opacity = alpha }

type fakeContainer struct {
	w, h      float64
	attachErr error
	surfaces  []*recordingSurface
	detached  int
}

func (c *fakeContainer) Bounds() (float64, float64) { return c.w, c.h }

func (c *fakeContainer) Attach(w, h int) (Surface, error) {
	if c.attachErr != nil {
		return nil, c.attachErr
	}
	s := &recordingSurface{w: w, h: h, opacity: 1}
	c.surfaces = append(c.surfaces, s)
	return s, nil
}

func (c *fakeContainer) Detach(Surface) { c.detached++ }

func (c *fakeContainer) surface() *recordingSurface {
	return c.surfaces[len(c.surfaces)-1]
}

var errAttach = errors.New("no context")

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	mock      *clock.Mock
	sched     *clock.Scheduler
	container *fakeContainer
	cfg       *config.Config
}

func newHarness(w, h float64) *harness {
	mock := clock.NewMock(epoch)
	return &harness{
		mock:      mock,
		sched:     clock.NewScheduler(mock),
		container: &fakeContainer{w: w, h: h},
		cfg:       config.Default(),
	}
}

// frame advances the mock clock by one 60Hz frame and pumps the scheduler.
func (h *harness) frame() {
	h.mock.Advance(time.Second / 60)
	h.sched.Advance()
}

type countingObserver struct {
	frames, bursts, spawned, prunes, removed int
}

func (o *countingObserver) ObserveFrame(particles, links int) { o.frames++ }
func (o *countingObserver) ObserveBurst(spawned int)          { o.bursts++; o.spawned += spawned }
func (o *countingObserver) ObservePrune(removed int)          { o.prunes++; o.removed += removed }
