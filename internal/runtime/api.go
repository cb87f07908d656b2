package runtime

import (
	"math/rand"

	"github.com/playform/playform/internal/core"
)

// API is the capability bundle passed to a definition's entry point.
// It exposes the surface dimensions, drawing primitives, randomness,
// the live pressed-key view and a monotonic clock. Definitions touch
// the surface only through this API.
type API struct {
	surface *core.Surface
	keys    core.KeyView
	clock   *core.Clock
	rng     *rand.Rand
}

// Width returns the surface width in cells.
func (a *API) Width() int {
	return a.surface.Width()
}

// Height returns the surface height in cells.
func (a *API) Height() int {
	return a.surface.Height()
}

// Rand returns a uniform random value in [lo, hi).
func (a *API) Rand(lo, hi float64) float64 {
	return a.rng.Float64()*(hi-lo) + lo
}

// Keys returns the live pressed-key view. The set is mutated by the
// host between frames; read it fresh each frame.
func (a *API) Keys() core.KeyView {
	return a.keys
}

// Now returns monotonic seconds since the runtime was created.
func (a *API) Now() float64 {
	return a.clock.Now()
}

// Clear fills the surface with blank cells.
func (a *API) Clear() {
	a.surface.Clear()
}

// Rect fills a rectangle. Coordinates are in cells; fractional values
// are truncated. Zero-size rects draw nothing.
func (a *API) Rect(x, y, w, h float64, c core.Color) {
	a.surface.FillRect(core.NewRect(int(x), int(y), int(w), int(h)), '█', c)
}

// Circle fills a circle centered at (x, y).
func (a *API) Circle(x, y, r float64, c core.Color) {
	a.surface.FillCircle(int(x), int(y), int(r), '█', c)
}

// Text draws a string at (x, y).
func (a *API) Text(s string, x, y float64, c core.Color) {
	a.surface.DrawText(int(x), int(y), s, c)
}
