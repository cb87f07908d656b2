// Package bouncer is the fallback template: a ball bouncing off the
// surface edges, steerable with the arrow keys or WASD.
package bouncer

import (
	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

// Game implements the bouncing ball demo.
type Game struct{}

// New creates a bouncer definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("bouncer", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "bouncer" }

// Title returns the display name.
func (g *Game) Title() string { return "Bouncer" }

// Init starts the bounce loop.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	w := float64(api.Width())
	h := float64(api.Height())

	x, y := w/4, h/2
	vx, vy := 16.0, 8.0
	const r = 1.0

	cancel := start(func(dt float64) {
		api.Clear()

		x += vx * dt
		y += vy * dt
		if x < r || x > w-r {
			vx = -vx
			x = core.ClampF(x, r, w-r)
		}
		if y < r || y > h-r {
			vy = -vy
			y = core.ClampF(y, r, h-r)
		}

		keys := api.Keys()
		if keys.Any("up", "w") {
			vy -= 1
		}
		if keys.Any("down", "s") {
			vy += 1
		}
		if keys.Any("left", "a") {
			vx -= 1
		}
		if keys.Any("right", "d") {
			vx += 1
		}

		api.Circle(x, y, r, core.ColorBrightMagenta)
		api.Text("Bouncer - steer with arrow keys", 1, 0, core.ColorGray)
	})

	return runtime.StopFunc(cancel), nil
}
