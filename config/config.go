// Package config provides configuration loading and access for the particle field.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all particle field configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Render    RenderConfig    `yaml:"render"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Burst     BurstConfig     `yaml:"burst"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Palette   []ColorConfig   `yaml:"palette"`
	Perf      PerfConfig      `yaml:"perf"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Theme     ThemeConfig     `yaml:"theme"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the desktop preview.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FieldConfig holds particle population and physics parameters.
type FieldConfig struct {
	BaselineCount  int     `yaml:"baseline_count"`   // Steady-state particle count
	BurstHeadroom  int     `yaml:"burst_headroom"`   // Extra particles allowed above baseline
	WrapMargin     float64 `yaml:"wrap_margin"`      // Overshoot before a particle wraps
	MaxVelocity    float64 `yaml:"max_velocity"`     // Per-axis velocity clamp
	InitialSpeed   float64 `yaml:"initial_speed"`    // Baseline velocity spread per axis
	RadiusMin      float64 `yaml:"radius_min"`       // Baseline radius lower bound
	RadiusMax      float64 `yaml:"radius_max"`       // Baseline radius upper bound (exclusive)
	OpacityMin     float64 `yaml:"opacity_min"`      // Baseline opacity lower bound
	OpacityMax     float64 `yaml:"opacity_max"`      // Baseline opacity upper bound (exclusive)
	PulseSpeedMin  float64 `yaml:"pulse_speed_min"`  // Pulse phase increment lower bound
	PulseSpeedMax  float64 `yaml:"pulse_speed_max"`  // Pulse phase increment upper bound (exclusive)
	CenterFraction float64 `yaml:"center_fraction"`  // Pull starts beyond this fraction of surface width
	CenterPull     float64 `yaml:"center_pull"`      // Velocity added per tick toward center
}

// RenderConfig holds drawing parameters.
type RenderConfig struct {
	GlowScale     float64     `yaml:"glow_scale"`      // Outer glow radius as multiple of pulsed radius
	CoreAlpha     float64     `yaml:"core_alpha"`      // Core disc opacity as fraction of pulsed opacity
	PulseRadius   float64     `yaml:"pulse_radius"`    // Radius oscillation amplitude
	PulseOpacity  float64     `yaml:"pulse_opacity"`   // Opacity oscillation amplitude
	LinkDistance  float64     `yaml:"link_distance"`   // Pairs closer than this are linked
	LinkOpacity   float64     `yaml:"link_opacity"`    // Link opacity at zero distance
	LinkWidth     float64     `yaml:"link_width"`      // Link stroke width
	LinkColor     ColorConfig `yaml:"link_color"`      // Link stroke color
	LinkBaseAlpha float64     `yaml:"link_base_alpha"` // Stroke alpha before link opacity is applied
}

// PointerConfig holds pointer interaction parameters.
type PointerConfig struct {
	Radius          float64     `yaml:"radius"`           // Attraction radius
	Attraction      float64     `yaml:"attraction"`       // Force scale at the pointer
	Highlight       ColorConfig `yaml:"highlight"`        // Color applied to nearby particles
	RevertHighlight bool        `yaml:"revert_highlight"` // Restore own color once out of range
}

// BurstConfig holds click-burst parameters.
type BurstConfig struct {
	Count      int     `yaml:"count"`       // Particles per click
	Speed      float64 `yaml:"speed"`       // Initial speed of burst particles
	Radius     float64 `yaml:"radius"`      // Fixed radius of burst particles
	Opacity    float64 `yaml:"opacity"`     // Fixed opacity of burst particles
	PruneDelay float64 `yaml:"prune_delay"` // Seconds before the field is pruned back to baseline
}

// LifecycleConfig holds visibility coupling parameters.
type LifecycleConfig struct {
	RestartDelay float64 `yaml:"restart_delay"` // Seconds between becoming visible and rebuilding
}

// ColorConfig is an RGB triple; alpha is applied at render time.
type ColorConfig struct {
	Name string `yaml:"name,omitempty"`
	R    uint8  `yaml:"r"`
	G    uint8  `yaml:"g"`
	B    uint8  `yaml:"b"`
}

// PerfConfig holds frame-rate monitoring parameters.
type PerfConfig struct {
	Enabled     bool    `yaml:"enabled"`
	LowFPS      float64 `yaml:"low_fps"`      // Below this the surface is dimmed
	DimOpacity  float64 `yaml:"dim_opacity"`  // Surface opacity once dimmed
	SampleEvery float64 `yaml:"sample_every"` // Seconds per FPS sample
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
}

// ThemeConfig holds the theme preference defaults.
type ThemeConfig struct {
	Default string      `yaml:"default"`
	File    string      `yaml:"file"`
	Light   ColorConfig `yaml:"light"`
	Dark    ColorConfig `yaml:"dark"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MaxCount     int           // BaselineCount + BurstHeadroom
	PruneDelay   time.Duration // Burst.PruneDelay as a duration
	RestartDelay time.Duration // Lifecycle.RestartDelay as a duration
	BurstStep    float64       // Angle between burst particles
	SampleEvery  time.Duration // Perf.SampleEvery as a duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Field.BaselineCount < 0:
		return fmt.Errorf("field.baseline_count must be >= 0, got %d", c.Field.BaselineCount)
	case c.Field.BurstHeadroom < 0:
		return fmt.Errorf("field.burst_headroom must be >= 0, got %d", c.Field.BurstHeadroom)
	case c.Field.RadiusMax < c.Field.RadiusMin:
		return fmt.Errorf("field.radius_max (%v) below radius_min (%v)", c.Field.RadiusMax, c.Field.RadiusMin)
	case c.Field.OpacityMax < c.Field.OpacityMin:
		return fmt.Errorf("field.opacity_max (%v) below opacity_min (%v)", c.Field.OpacityMax, c.Field.OpacityMin)
	case c.Render.LinkDistance <= 0:
		return fmt.Errorf("render.link_distance must be > 0, got %v", c.Render.LinkDistance)
	case c.Pointer.Radius <= 0:
		return fmt.Errorf("pointer.radius must be > 0, got %v", c.Pointer.Radius)
	case len(c.Palette) == 0:
		return fmt.Errorf("palette must contain at least one color")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.MaxCount = c.Field.BaselineCount + c.Field.BurstHeadroom
	c.Derived.PruneDelay = seconds(c.Burst.PruneDelay)
	c.Derived.RestartDelay = seconds(c.Lifecycle.RestartDelay)
	c.Derived.SampleEvery = seconds(c.Perf.SampleEvery)
	if c.Derived.SampleEvery <= 0 {
		c.Derived.SampleEvery = time.Second
	}
	if c.Burst.Count > 0 {
		c.Derived.BurstStep = 2 * math.Pi / float64(c.Burst.Count)
	}

	if c.Theme.Default == "" {
		c.Theme.Default = "light"
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
