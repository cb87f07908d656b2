// Package flappy is the flap-through-the-gaps template.
package flappy

import (
	"fmt"

	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

const (
	gravity   = 40.0
	flapSpeed = -14.0
	pipeSpeed = 16.0
	pipeGap   = 7.0
	birdX     = 10.0
	spawnGap  = 1.8 // seconds between pipes
)

type pipe struct {
	x           float64
	top, bottom float64
}

// Game implements the flappy template.
type Game struct {
	api    *runtime.API
	w, h   float64
	birdY  float64
	vel    float64
	pipes  []pipe
	since  float64
	score  float64
}

// New creates a flappy definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("flappy", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "flappy" }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy" }

// Init starts the flappy loop.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	g.api = api
	g.w = float64(api.Width())
	g.h = float64(api.Height())
	g.birdY = g.h / 2
	g.spawn()

	cancel := start(g.update)
	return runtime.StopFunc(cancel), nil
}

func (g *Game) spawn() {
	center := g.api.Rand(3+pipeGap/2, g.h-3-pipeGap/2)
	g.pipes = append(g.pipes, pipe{
		x:      g.w,
		top:    center - pipeGap/2,
		bottom: center + pipeGap/2,
	})
}

func (g *Game) crash() {
	g.score = 0
	g.birdY = g.h / 2
	g.vel = 0
	g.pipes = nil
	g.since = 0
	g.spawn()
}

func (g *Game) update(dt float64) {
	g.since += dt
	if g.since > spawnGap {
		g.since = 0
		g.spawn()
	}

	g.vel += gravity * dt
	g.birdY += g.vel * dt
	if g.api.Keys().Any(" ", "up", "w") {
		g.vel = flapSpeed
	}
	if g.birdY < 0 || g.birdY > g.h {
		g.crash()
	}

	kept := g.pipes[:0]
	for i := range g.pipes {
		g.pipes[i].x -= pipeSpeed * dt
		if g.pipes[i].x > -4 {
			kept = append(kept, g.pipes[i])
		}
	}
	g.pipes = kept

	for _, p := range g.pipes {
		hitX := p.x-birdX > -2 && p.x-birdX < 2
		if hitX && (g.birdY < p.top || g.birdY > p.bottom) {
			g.crash()
			break
		}
	}

	g.score += dt
	g.render()
}

func (g *Game) render() {
	g.api.Clear()
	g.api.Circle(birdX, g.birdY, 0, core.ColorBrightCyan)
	for _, p := range g.pipes {
		g.api.Rect(p.x-1, 1, 3, p.top-1, core.ColorGreen)
		g.api.Rect(p.x-1, p.bottom, 3, g.h-p.bottom, core.ColorGreen)
	}
	g.api.Text(fmt.Sprintf("Flappy - space to flap | Score: %d", int(g.score)), 1, 0, core.ColorGray)
}
