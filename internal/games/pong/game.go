// Package pong is the two-player pong template: W/S drives the left
// paddle, arrow keys the right one.
package pong

import (
	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

const (
	paddleH     = 5.0
	paddleSpeed = 22.0
)

// Game implements the pong template.
type Game struct{}

// New creates a pong definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("pong", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "pong" }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// Init starts the pong loop.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	w := float64(api.Width())
	h := float64(api.Height())

	p1 := h/2 - paddleH/2
	p2 := h/2 - paddleH/2

	var bx, by, bvx, bvy float64
	serve := func() {
		bx, by = w/2, h/2
		bvx, bvy = 18, 7
		if api.Rand(0, 1) < 0.5 {
			bvx = -bvx
		}
		if api.Rand(0, 1) < 0.5 {
			bvy = -bvy
		}
	}
	serve()

	cancel := start(func(dt float64) {
		keys := api.Keys()
		if keys.Pressed("w") {
			p1 -= paddleSpeed * dt
		}
		if keys.Pressed("s") {
			p1 += paddleSpeed * dt
		}
		if keys.Pressed("up") {
			p2 -= paddleSpeed * dt
		}
		if keys.Pressed("down") {
			p2 += paddleSpeed * dt
		}
		p1 = core.ClampF(p1, 1, h-paddleH)
		p2 = core.ClampF(p2, 1, h-paddleH)

		bx += bvx * dt
		by += bvy * dt
		if by < 1 || by > h-1 {
			bvy = -bvy
			by = core.ClampF(by, 1, h-1)
		}

		// Paddle collisions speed the ball up slightly.
		if bx < 3 && by > p1 && by < p1+paddleH && bvx < 0 {
			bvx = -bvx + 1
		}
		if bx > w-4 && by > p2 && by < p2+paddleH && bvx > 0 {
			bvx = -(bvx + 1)
		}

		if bx < 0 || bx > w {
			serve()
		}

		api.Clear()
		api.Rect(1, p1, 1, paddleH, core.ColorBrightMagenta)
		api.Rect(w-2, p2, 1, paddleH, core.ColorBrightCyan)
		api.Circle(bx, by, 0, core.ColorBrightWhite)
		for y := 1.0; y < h; y += 2 {
			api.Text("|", w/2, y, core.ColorGray)
		}
		api.Text("Pong - W/S vs arrows", 1, 0, core.ColorGray)
	})

	return runtime.StopFunc(cancel), nil
}
