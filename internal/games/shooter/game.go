// Package shooter is the asteroids-style template: rotate, thrust and
// shoot drifting rocks that wrap around the surface edges.
package shooter

import (
	"math"

	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

type bullet struct {
	x, y   float64
	vx, vy float64
	age    float64
}

type rock struct {
	x, y   float64
	vx, vy float64
	r      float64
}

// Game implements the shooter template.
type Game struct {
	api     *runtime.API
	w, h    float64
	shipX   float64
	shipY   float64
	angle   float64
	bullets []bullet
	rocks   []rock
}

// New creates a shooter definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("shooter", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "shooter" }

// Title returns the display name.
func (g *Game) Title() string { return "Shooter" }

// Init seeds the rock field and starts the loop.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	g.api = api
	g.w = float64(api.Width())
	g.h = float64(api.Height())
	g.shipX, g.shipY = g.w/2, g.h/2

	for i := 0; i < 8; i++ {
		g.rocks = append(g.rocks, g.newRock())
	}

	cancel := start(g.update)
	return runtime.StopFunc(cancel), nil
}

func (g *Game) newRock() rock {
	return rock{
		x:  g.api.Rand(0, g.w),
		y:  g.api.Rand(0, g.h),
		vx: g.api.Rand(-6, 6),
		vy: g.api.Rand(-4, 4),
		r:  g.api.Rand(1, 3),
	}
}

func (g *Game) update(dt float64) {
	keys := g.api.Keys()
	if keys.Any("a", "left") {
		g.angle -= 2 * dt
	}
	if keys.Any("d", "right") {
		g.angle += 2 * dt
	}
	if keys.Any("w", "up") {
		g.shipX += math.Cos(g.angle) * 14 * dt
		g.shipY += math.Sin(g.angle) * 10 * dt
	}
	if keys.Pressed(" ") {
		g.bullets = append(g.bullets, bullet{
			x: g.shipX, y: g.shipY,
			vx: math.Cos(g.angle) * 28,
			vy: math.Sin(g.angle) * 20,
		})
	}
	g.shipX = wrap(g.shipX, g.w)
	g.shipY = wrap(g.shipY, g.h)

	kept := g.bullets[:0]
	for i := range g.bullets {
		b := &g.bullets[i]
		b.x += b.vx * dt
		b.y += b.vy * dt
		b.age += dt
		if b.age < 2.5 {
			kept = append(kept, *b)
		}
	}
	g.bullets = kept

	for i := range g.rocks {
		r := &g.rocks[i]
		r.x = wrap(r.x+r.vx*dt, g.w)
		r.y = wrap(r.y+r.vy*dt, g.h)
	}

	// Bullet hits shrink rocks until they break apart.
	for bi := range g.bullets {
		for ri := range g.rocks {
			b := &g.bullets[bi]
			r := &g.rocks[ri]
			dx, dy := b.x-r.x, b.y-r.y
			if dx*dx+dy*dy < r.r*r.r+1 {
				r.r -= 1
				b.age = 10
			}
		}
	}
	live := g.rocks[:0]
	for _, r := range g.rocks {
		if r.r > 0.5 {
			live = append(live, r)
		}
	}
	g.rocks = live
	for len(g.rocks) < 6 {
		g.rocks = append(g.rocks, g.newRock())
	}

	g.render()
}

func wrap(v, max float64) float64 {
	if v < 0 {
		return max
	}
	if v > max {
		return 0
	}
	return v
}

func (g *Game) render() {
	g.api.Clear()
	g.api.Circle(g.shipX, g.shipY, 0, core.ColorBrightWhite)
	// Direction marker one cell ahead of the ship.
	g.api.Circle(g.shipX+math.Cos(g.angle)*2, g.shipY+math.Sin(g.angle)*1.5, 0, core.ColorGray)
	for _, b := range g.bullets {
		g.api.Circle(b.x, b.y, 0, core.ColorBrightCyan)
	}
	for _, r := range g.rocks {
		g.api.Circle(r.x, r.y, r.r, core.ColorGray)
	}
	g.api.Text("Shooter - WASD + space", 1, 0, core.ColorGray)
}
