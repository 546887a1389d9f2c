package field

import (
	"errors"
	"reflect"

	"github.com/pthm-cable/glowfield/components"
)

// ErrNoContainer is returned by New when there is no host container to
// attach to.
var ErrNoContainer = errors.New("field: no container")

// absent reports whether c holds no host, including a nil pointer wrapped
// in the interface.
func absent(c Container) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Container is the host region the field draws into. A nil container, typed
// or untyped, is treated as absent.
type Container interface {
	// Bounds returns the current size of the region.
	Bounds() (w, h float64)
	// Attach creates a transparent drawing surface of exactly w×h that sits
	// above the container's background and ignores input.
	Attach(w, h int) (Surface, error)
	// Detach removes a surface created by Attach.
	Detach(s Surface)
}

// Surface is a transparent drawing target. All coordinates are
// container-relative; alpha values are in [0, 1].
type Surface interface {
	// Begin starts a frame and clears the surface to fully transparent.
	Begin()
	// Glow fills a disc whose color fades from c at alpha in the middle to
	// fully transparent at radius.
	Glow(x, y, radius float64, c components.Color, alpha float64)
	// Disc fills a solid disc.
	Disc(x, y, radius float64, c components.Color, alpha float64)
	// Line strokes a segment.
	Line(x0, y0, x1, y1, width float64, c components.Color, alpha float64)
	// End finishes the frame.
	End()
	// Resize changes the backing size. Contents may be discarded.
	Resize(w, h int)
	// SetOpacity sets the opacity the whole surface is composited with.
	SetOpacity(alpha float64)
}
