// Package breakout is the brick-clearing template: keep the ball in
// play with the paddle, clear every brick to win.
package breakout

import (
	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

const (
	rows        = 4
	cols        = 10
	paddleW     = 10.0
	paddleSpeed = 30.0
)

type brick struct {
	x, y, w float64
	hit     bool
}

// Game implements the breakout template.
type Game struct {
	api       *runtime.API
	w, h      float64
	paddleX   float64
	bx, by    float64
	bvx, bvy  float64
	bricks    []brick
	remaining int
}

// New creates a breakout definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("breakout", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Init lays out the bricks and starts the loop.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	g.api = api
	g.w = float64(api.Width())
	g.h = float64(api.Height())
	g.paddleX = g.w/2 - paddleW/2
	g.resetBall()

	bw := (g.w - 8) / cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.bricks = append(g.bricks, brick{
				x: 4 + float64(c)*bw,
				y: float64(2 + r),
				w: bw - 1,
			})
		}
	}
	g.remaining = len(g.bricks)

	cancel := start(g.update)
	return runtime.StopFunc(cancel), nil
}

func (g *Game) resetBall() {
	g.bx, g.by = g.w/2, g.h-6
	g.bvx, g.bvy = 14, -10
}

func (g *Game) update(dt float64) {
	keys := g.api.Keys()
	if keys.Any("left", "a") {
		g.paddleX -= paddleSpeed * dt
	}
	if keys.Any("right", "d") {
		g.paddleX += paddleSpeed * dt
	}
	g.paddleX = core.ClampF(g.paddleX, 1, g.w-paddleW-1)

	g.bx += g.bvx * dt
	g.by += g.bvy * dt
	if g.bx < 1 || g.bx > g.w-1 {
		g.bvx = -g.bvx
		g.bx = core.ClampF(g.bx, 1, g.w-1)
	}
	if g.by < 1 {
		g.bvy = -g.bvy
		g.by = 1
	}
	if g.by > g.h {
		g.resetBall()
	}

	// Paddle bounce, with spin from the hit offset.
	paddleY := g.h - 2
	if g.by >= paddleY-1 && g.bx >= g.paddleX && g.bx <= g.paddleX+paddleW && g.bvy > 0 {
		g.bvy = -g.bvy
		off := (g.bx - (g.paddleX + paddleW/2)) / (paddleW / 2)
		g.bvx += off * 6
	}

	for i := range g.bricks {
		b := &g.bricks[i]
		if !b.hit && g.bx >= b.x && g.bx < b.x+b.w && g.by >= b.y && g.by < b.y+1 {
			b.hit = true
			g.remaining--
			g.bvy = -g.bvy
		}
	}

	g.render(paddleY)
}

func (g *Game) render(paddleY float64) {
	g.api.Clear()
	g.api.Rect(g.paddleX, paddleY, paddleW, 1, core.ColorBrightWhite)
	g.api.Circle(g.bx, g.by, 0, core.ColorBrightMagenta)
	for _, b := range g.bricks {
		if !b.hit {
			g.api.Rect(b.x, b.y, b.w, 1, core.ColorOrange)
		}
	}
	msg := "Breakout - clear all bricks"
	if g.remaining == 0 {
		msg = "You win!"
	}
	g.api.Text(msg, 1, 0, core.ColorGray)
}
