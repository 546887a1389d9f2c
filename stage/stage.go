// Package stage owns the particle field on behalf of its host: it starts and
// stops fields, rebuilds them when the host becomes visible again, forwards
// input and dims the field when the frame rate drops.
package stage

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/glowfield/clock"
	"github.com/pthm-cable/glowfield/config"
	"github.com/pthm-cable/glowfield/field"
	"github.com/pthm-cable/glowfield/telemetry"
)

// Stage holds the container, scheduler and the active field.
type Stage struct {
	container field.Container
	sched     *clock.Scheduler
	cfg       *config.Config
	logger    *slog.Logger
	rng       *rand.Rand
	collector *telemetry.Collector

	monitor      *telemetry.FrameMonitor
	monitorFrame clock.FrameID
	monitorSeen  int
	dimmed       bool

	field    *field.Field
	visible  bool
	unloaded bool
	restart  *clock.Timer
	restarts int
}

// Option configures a Stage.
type Option func(*Stage)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stage) {
		s.logger = l
	}
}

// WithSeed makes every field the stage builds draw from one seeded source.
func WithSeed(seed int64) Option {
	return func(s *Stage) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCollector routes field activity and restarts to c.
func WithCollector(c *telemetry.Collector) Option {
	return func(s *Stage) {
		s.collector = c
	}
}

// WithMonitor installs a frame monitor that runs on every scheduler pass.
func WithMonitor(m *telemetry.FrameMonitor) Option {
	return func(s *Stage) {
		s.monitor = m
	}
}

// New creates a stage. The host starts out visible with no field; call Start.
func New(container field.Container, sched *clock.Scheduler, cfg *config.Config, opts ...Option) *Stage {
	s := &Stage{
		container: container,
		sched:     sched,
		cfg:       cfg,
		visible:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.monitor != nil && cfg.Perf.Enabled {
		s.monitorFrame = sched.RequestFrame(s.monitorTick)
	}
	return s
}

// Start builds a field if none is active.
func (s *Stage) Start() error {
	if s.unloaded {
		return nil
	}
	if s.field != nil && s.field.State() == field.Active {
		return nil
	}

	opts := []field.Option{
		field.WithRand(s.rng),
		field.WithLogger(s.logger),
	}
	if s.collector != nil {
		opts = append(opts, field.WithObserver(s.collector))
	}

	f, err := field.New(s.container, s.sched, s.cfg, opts...)
	if err != nil {
		s.logger.Warn("field_start_failed", "error", err)
		return err
	}
	s.field = f

	if s.dimmed {
		f.Surface().SetOpacity(s.cfg.Perf.DimOpacity)
	}
	return nil
}

// Stop tears down the active field. Safe to call repeatedly.
func (s *Stage) Stop() {
	if s.field == nil {
		return
	}
	s.field.Teardown()
	s.field = nil
}

// Restart replaces the active field with a fresh one.
func (s *Stage) Restart() error {
	s.Stop()
	if err := s.Start(); err != nil {
		return err
	}
	s.restarts++
	if s.collector != nil {
		s.collector.RecordRestart()
	}
	s.logger.Info("field_restarted", "restarts", s.restarts)
	return nil
}

// SetVisible reacts to the host being hidden or shown. Hiding tears the
// field down; showing rebuilds it after the restart delay.
func (s *Stage) SetVisible(visible bool) {
	if s.unloaded || visible == s.visible {
		return
	}
	s.visible = visible

	if !visible {
		s.cancelRestart()
		s.Stop()
		s.logger.Debug("stage_hidden")
		return
	}

	s.cancelRestart()
	s.restart = s.sched.AfterFunc(s.cfg.Derived.RestartDelay, func() {
		s.restart = nil
		if !s.visible || s.unloaded {
			return
		}
		s.Restart()
	})
	s.logger.Debug("stage_shown", "restart_delay", s.cfg.Derived.RestartDelay)
}

func (s *Stage) cancelRestart() {
	if s.restart != nil {
		s.restart.Stop()
		s.restart = nil
	}
}

// Unload stops everything the stage scheduled. The stage is unusable
// afterwards.
func (s *Stage) Unload() {
	if s.unloaded {
		return
	}
	s.cancelRestart()
	s.Stop()
	s.sched.CancelFrame(s.monitorFrame)
	s.monitorFrame = 0
	s.unloaded = true
	s.logger.Info("stage_unloaded", "restarts", s.restarts)
}

func (s *Stage) monitorTick() {
	if s.unloaded {
		return
	}
	low := s.monitor.Frame()

	if n := s.monitor.Samples(); n != s.monitorSeen {
		s.monitorSeen = n
		if s.collector != nil {
			s.collector.RecordFPS(s.monitor.FPS())
		}
	}
	if low {
		s.dim()
	}
	s.monitorFrame = s.sched.RequestFrame(s.monitorTick)
}

func (s *Stage) dim() {
	opacity := s.cfg.Perf.DimOpacity
	if !s.dimmed {
		s.logger.Warn("low_fps", "fps", s.monitor.FPS(), "threshold", s.cfg.Perf.LowFPS, "opacity", opacity)
	}
	s.dimmed = true
	if s.field != nil && s.field.Surface() != nil {
		s.field.Surface().SetOpacity(opacity)
	}
}

// PointerMove forwards a container-relative pointer position.
func (s *Stage) PointerMove(x, y float64) {
	if s.field != nil {
		s.field.PointerMove(x, y)
	}
}

// PointerLeave forwards the pointer leaving the container.
func (s *Stage) PointerLeave() {
	if s.field != nil {
		s.field.PointerLeave()
	}
}

// Click forwards a container-relative click.
func (s *Stage) Click(x, y float64) {
	if s.field != nil {
		s.field.Click(x, y)
	}
}

// Resize forwards a container resize.
func (s *Stage) Resize() {
	if s.field != nil {
		s.field.Resize()
	}
}

// Field returns the active field, or nil.
func (s *Stage) Field() *field.Field {
	return s.field
}

// Visible reports the last visibility passed to SetVisible.
func (s *Stage) Visible() bool {
	return s.visible
}

// Dimmed reports whether a low frame rate has dimmed the field.
func (s *Stage) Dimmed() bool {
	return s.dimmed
}

// RestartPending reports whether a rebuild is scheduled.
func (s *Stage) RestartPending() bool {
	return s.restart != nil
}

// Restarts returns how many times the field was rebuilt.
func (s *Stage) Restarts() int {
	return s.restarts
}

// Config returns the configuration fields are built with.
func (s *Stage) Config() *config.Config {
	return s.cfg
}
