package field

import (
	"log/slog"
	"math/rand"
)

// Observer receives field activity. Used by telemetry.
type Observer interface {
	ObserveFrame(particles, links int)
	ObserveBurst(spawned int)
	ObservePrune(removed int)
}

// Option configures a Field.
type Option func(*Field)

// WithRand sets the random source used for every randomized particle field.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) {
		f.rng = rng
	}
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		f.logger = l
	}
}

// WithObserver attaches an activity observer.
func WithObserver(o Observer) Option {
	return func(f *Field) {
		f.observer = o
	}
}
