package systems

import "github.com/pthm-cable/glowfield/components"

// Link connects two particles by index.
type Link struct {
	A, B    int
	Opacity float64
}

// LinkOpacity fades linearly from maxOpacity at distance 0 to 0 at maxDist.
func LinkOpacity(d, maxDist, maxOpacity float64) float64 {
	if d >= maxDist || maxDist <= 0 {
		return 0
	}
	return (1 - d/maxDist) * maxOpacity
}

// FindLinks appends a Link for every unordered pair closer than maxDist.
// O(n²) in the number of points; fine for the few dozen particles a field holds.
func FindLinks(dst []Link, points []components.Position, maxDist, maxOpacity float64) []Link {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			_, _, d := distance(points[i].X, points[i].Y, points[j].X, points[j].Y)
			if d < maxDist {
				dst = append(dst, Link{A: i, B: j, Opacity: LinkOpacity(d, maxDist, maxOpacity)})
			}
		}
	}
	return dst
}
