// Package field implements the ambient particle field: drifting glowing
// particles linked by faint lines, reacting to pointer movement and clicks.
package field

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/glowfield/clock"
	"github.com/pthm-cable/glowfield/components"
	"github.com/pthm-cable/glowfield/config"
	"github.com/pthm-cable/glowfield/systems"
)

// State is the running state of a field.
type State uint8

const (
	// Active means frames are being scheduled.
	Active State = iota
	// Stopped means the field was torn down.
	Stopped
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Field is one running particle field bound to a container.
//
// Not safe for concurrent use. Event handlers must run on the goroutine that
// pumps the scheduler.
type Field struct {
	container Container
	surface   Surface
	sched     *clock.Scheduler
	cfg       *config.Config
	rng       *rand.Rand
	logger    *slog.Logger
	observer  Observer

	// ECS
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Glow, components.Pulse]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Glow, components.Pulse]

	// Creation order. Truncation drops from the end and links index into it.
	order []ecs.Entity

	bounds    systems.Bounds
	physics   systems.PhysicsParams
	pointer   systems.PointerParams
	spawn     systems.SpawnParams
	render    systems.RenderParams
	palette   systems.Palette
	highlight components.Color
	linkColor components.Color

	state       State
	frame       clock.FrameID
	prunes      map[*clock.Timer]struct{}
	pointerOver bool
	frames      uint64

	// Per-frame scratch
	points []components.Position
	links  []systems.Link
}

// New creates a field inside container, populates it with the baseline
// particle count and requests the first frame.
func New(container Container, sched *clock.Scheduler, cfg *config.Config, opts ...Option) (*Field, error) {
	if absent(container) {
		return nil, ErrNoContainer
	}

	world := ecs.NewWorld()
	f := &Field{
		container: container,
		sched:     sched,
		cfg:       cfg,
		world:     world,
		mapper:    ecs.NewMap4[components.Position, components.Velocity, components.Glow, components.Pulse](world),
		filter:    ecs.NewFilter4[components.Position, components.Velocity, components.Glow, components.Pulse](world),
		physics:   systems.PhysicsParamsFrom(cfg),
		pointer:   systems.PointerParamsFrom(cfg),
		spawn:     systems.SpawnParamsFrom(cfg),
		render:    systems.RenderParamsFrom(cfg),
		palette:   systems.PaletteFrom(cfg.Palette),
		highlight: components.ColorFrom(cfg.Pointer.Highlight),
		linkColor: components.ColorFrom(cfg.Render.LinkColor),
		prunes:    make(map[*clock.Timer]struct{}),
		state:     Stopped,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}

	w, h := container.Bounds()
	surface, err := container.Attach(int(w), int(h))
	if err != nil {
		return nil, fmt.Errorf("attaching surface: %w", err)
	}
	f.surface = surface
	f.bounds = systems.Bounds{Width: w, Height: h}

	f.order = make([]ecs.Entity, 0, cfg.Derived.MaxCount)
	for i := 0; i < cfg.Field.BaselineCount; i++ {
		f.add(systems.NewParticle(f.rng, f.bounds, f.palette, f.spawn))
	}

	f.state = Active
	f.frame = sched.RequestFrame(f.tick)

	f.logger.Info("field_started",
		"particles", len(f.order),
		"width", w,
		"height", h,
	)
	return f, nil
}

func (f *Field) add(p components.Particle) ecs.Entity {
	e := f.mapper.NewEntity(&p.Position, &p.Velocity, &p.Glow, &p.Pulse)
	f.order = append(f.order, e)
	return e
}

// truncate removes the most recently added particles until n remain.
func (f *Field) truncate(n int) int {
	removed := 0
	for len(f.order) > n {
		last := len(f.order) - 1
		f.world.RemoveEntity(f.order[last])
		f.order = f.order[:last]
		removed++
	}
	return removed
}

// Teardown stops the frame loop, cancels pending prunes and detaches the
// surface. Calling it again does nothing.
func (f *Field) Teardown() {
	if f == nil || f.state == Stopped {
		return
	}
	f.state = Stopped

	f.sched.CancelFrame(f.frame)
	f.frame = 0
	for t := range f.prunes {
		t.Stop()
	}
	clear(f.prunes)

	if f.surface != nil {
		f.container.Detach(f.surface)
		f.surface = nil
	}
	f.pointerOver = false

	f.logger.Info("field_torn_down", "particles", len(f.order), "frames", f.frames)
}

// State returns the running state.
func (f *Field) State() State {
	return f.state
}

// Count returns the live particle count.
func (f *Field) Count() int {
	return len(f.order)
}

// Bounds returns the surface size.
func (f *Field) Bounds() (w, h float64) {
	return f.bounds.Width, f.bounds.Height
}

// PointerOver reports whether the pointer is inside the container.
func (f *Field) PointerOver() bool {
	return f.pointerOver
}

// FrameCount returns the number of frames rendered.
func (f *Field) FrameCount() uint64 {
	return f.frames
}

// Surface returns the attached surface, or nil after teardown.
func (f *Field) Surface() Surface {
	return f.surface
}

// Particles returns a copy of every particle in creation order.
func (f *Field) Particles() []components.Particle {
	out := make([]components.Particle, len(f.order))
	for i, e := range f.order {
		pos, vel, glow, pulse := f.mapper.Get(e)
		out[i] = components.Particle{Position: *pos, Velocity: *vel, Glow: *glow, Pulse: *pulse}
	}
	return out
}

// Links returns the links drawn in the last frame.
func (f *Field) Links() []systems.Link {
	out := make([]systems.Link, len(f.links))
	copy(out, f.links)
	return out
}

// PendingPrunes returns the number of scheduled prunes.
func (f *Field) PendingPrunes() int {
	return len(f.prunes)
}
