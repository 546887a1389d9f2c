package field

import (
	"github.com/pthm-cable/glowfield/clock"
	"github.com/pthm-cable/glowfield/systems"
)

// Resize re-reads the container size and resizes the surface. Particles
// beyond the new bound on an axis get a fresh random coordinate on it.
func (f *Field) Resize() {
	if f.state != Active {
		return
	}
	w, h := f.container.Bounds()
	f.surface.Resize(int(w), int(h))
	f.bounds = systems.Bounds{Width: w, Height: h}

	relocated := 0
	for _, e := range f.order {
		pos, _, _, _ := f.mapper.Get(e)
		moved := false
		if pos.X > w {
			pos.X = f.rng.Float64() * w
			moved = true
		}
		if pos.Y > h {
			pos.Y = f.rng.Float64() * h
			moved = true
		}
		if moved {
			relocated++
		}
	}

	f.logger.Debug("field_resized", "width", w, "height", h, "relocated", relocated)
}

// PointerMove attracts particles within the pointer radius toward (x, y)
// and recolors them with the highlight color. Coordinates are
// container-relative.
func (f *Field) PointerMove(x, y float64) {
	if f.state != Active {
		return
	}
	f.pointerOver = true
	revert := f.cfg.Pointer.RevertHighlight

	query := f.filter.Query()
	for query.Next() {
		pos, vel, glow, _ := query.Get()
		if systems.Attract(*pos, vel, x, y, f.pointer) {
			glow.Color = f.highlight
		} else if revert {
			glow.Color = glow.Own
		}
	}
}

// PointerLeave records that the pointer left the container.
func (f *Field) PointerLeave() {
	f.pointerOver = false
}

// Click fans a burst of particles out from (x, y) and schedules a prune back
// to the baseline count.
func (f *Field) Click(x, y float64) {
	if f.state != Active {
		return
	}
	bc := f.cfg.Burst
	limit := f.cfg.Derived.MaxCount

	spawned := 0
	for i := 0; i < bc.Count; i++ {
		p := systems.NewParticle(f.rng, f.bounds, f.palette, f.spawn)
		p.Position.X, p.Position.Y = x, y
		p.Velocity = systems.BurstVelocity(i, bc.Count, bc.Speed)
		p.Glow.Radius = bc.Radius
		p.Glow.Opacity = bc.Opacity

		if len(f.order) < limit {
			f.add(p)
			spawned++
		}
	}

	// Every click gets its own prune, even when nothing was spawned
	var t *clock.Timer
	t = f.sched.AfterFunc(f.cfg.Derived.PruneDelay, func() {
		delete(f.prunes, t)
		f.prune()
	})
	f.prunes[t] = struct{}{}

	if f.observer != nil {
		f.observer.ObserveBurst(spawned)
	}
	f.logger.Debug("burst", "x", x, "y", y, "spawned", spawned, "particles", len(f.order))
}

func (f *Field) prune() {
	if f.state != Active {
		return
	}
	removed := f.truncate(f.cfg.Field.BaselineCount)
	if removed == 0 {
		return
	}
	if f.observer != nil {
		f.observer.ObservePrune(removed)
	}
	f.logger.Debug("pruned", "removed", removed, "particles", len(f.order))
}
