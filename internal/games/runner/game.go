// Package runner is the endless runner template: jump over oncoming
// obstacles, survive as long as possible.
package runner

import (
	"fmt"

	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

const (
	gravity   = 60.0
	jumpSpeed = -24.0
	scrollSpd = 24.0
	playerX   = 12.0
	spawnGap  = 1.2
)

// Game implements the runner template.
type Game struct{}

// New creates a runner definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("runner", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "runner" }

// Title returns the display name.
func (g *Game) Title() string { return "Runner" }

// Init starts the runner loop.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	w := float64(api.Width())
	h := float64(api.Height())
	ground := h - 3

	y := ground
	vy := 0.0
	var obstacles []float64
	since := 0.0
	score := 0.0

	cancel := start(func(dt float64) {
		since += dt
		if since > spawnGap {
			since = 0
			obstacles = append(obstacles, w)
		}

		vy += gravity * dt
		y += vy * dt
		if y > ground {
			y = ground
			vy = 0
		}
		if api.Keys().Any(" ", "up", "w") && y == ground {
			vy = jumpSpeed
		}

		kept := obstacles[:0]
		for i := range obstacles {
			obstacles[i] -= scrollSpd * dt
			if obstacles[i] > -3 {
				kept = append(kept, obstacles[i])
			}
		}
		obstacles = kept

		for _, ox := range obstacles {
			if ox-playerX > -2 && ox-playerX < 2 && y > ground-2 {
				score = 0
				obstacles = obstacles[:0]
				break
			}
		}
		score += dt

		api.Clear()
		api.Rect(0, ground+1, w, 1, core.ColorGreen)
		api.Circle(playerX, y-1, 1, core.ColorBrightMagenta)
		for _, ox := range obstacles {
			api.Rect(ox, ground-1, 2, 2, core.ColorBrightRed)
		}
		api.Text(fmt.Sprintf("Runner - jump with space | Score: %d", int(score)), 1, 0, core.ColorGray)
	})

	return runtime.StopFunc(cancel), nil
}
