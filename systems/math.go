package systems

import (
	"math"
	"math/rand"
)

// ClampAxis limits a single velocity component to [-limit, limit], keeping its sign.
func ClampAxis(v, limit float64) float64 {
	if math.Abs(v) > limit {
		if v > 0 {
			return limit
		}
		return -limit
	}
	return v
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// distance returns the vector from (x0, y0) to (x1, y1) and its length.
func distance(x0, y0, x1, y1 float64) (dx, dy, d float64) {
	dx = x1 - x0
	dy = y1 - y0
	return dx, dy, math.Sqrt(dx*dx + dy*dy)
}
