package field

import "github.com/pthm-cable/glowfield/systems"

// tick advances, draws and requests the next frame.
func (f *Field) tick() {
	if f.state != Active {
		return
	}
	f.update()
	f.draw()
	f.frames++

	if f.observer != nil {
		f.observer.ObserveFrame(len(f.order), len(f.links))
	}
	f.frame = f.sched.RequestFrame(f.tick)
}

func (f *Field) update() {
	query := f.filter.Query()
	for query.Next() {
		pos, vel, _, pulse := query.Get()
		systems.Step(pos, vel, pulse, f.bounds, f.physics)
	}
}

func (f *Field) draw() {
	s := f.surface
	s.Begin()

	f.points = f.points[:0]
	for _, e := range f.order {
		pos, _, glow, pulse := f.mapper.Get(e)
		radius, opacity := systems.Pulsed(*glow, *pulse, f.render)

		if radius > 0 {
			s.Glow(pos.X, pos.Y, radius*f.render.GlowScale, glow.Color, opacity)
			s.Disc(pos.X, pos.Y, radius, glow.Color, opacity*f.render.CoreAlpha)
		}
		f.points = append(f.points, *pos)
	}

	rc := f.cfg.Render
	f.links = systems.FindLinks(f.links[:0], f.points, rc.LinkDistance, rc.LinkOpacity)
	for _, l := range f.links {
		a, b := f.points[l.A], f.points[l.B]
		s.Line(a.X, a.Y, b.X, b.Y, rc.LinkWidth, f.linkColor, rc.LinkBaseAlpha*l.Opacity)
	}

	s.End()
}
