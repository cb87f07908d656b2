// Package snake is the classic snake template: eat pellets, grow,
// avoid your own tail. The playfield wraps at the edges.
package snake

import (
	"fmt"

	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

// Point is a playfield cell coordinate.
type Point struct {
	X, Y int
}

// Game implements the snake template.
type Game struct {
	api     *runtime.API
	w, h    int
	body    []Point // head at index 0
	dir     Point
	food    Point
	elapsed float64
	score   int
}

// New creates a snake definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("snake", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// moveInterval is seconds between snake moves (8 moves per second).
const moveInterval = 1.0 / 8

// Init starts the snake loop.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	g.api = api
	g.w = api.Width()
	g.h = api.Height()
	g.reset()

	cancel := start(g.update)
	return runtime.StopFunc(cancel), nil
}

func (g *Game) reset() {
	g.body = []Point{{X: g.w / 4, Y: g.h / 2}}
	g.dir = Point{X: 1, Y: 0}
	g.score = 0
	g.placeFood()
}

func (g *Game) placeFood() {
	g.food = Point{
		X: int(g.api.Rand(0, float64(g.w))),
		Y: int(g.api.Rand(1, float64(g.h))),
	}
}

func (g *Game) update(dt float64) {
	g.readInput()

	g.elapsed += dt
	if g.elapsed >= moveInterval {
		g.elapsed = 0
		g.step()
	}

	g.render()
}

// readInput buffers the latest direction every frame so turns feel
// responsive even though moves happen on a slower cadence.
func (g *Game) readInput() {
	keys := g.api.Keys()
	switch {
	case keys.Any("up", "w"):
		g.setDir(0, -1)
	case keys.Any("down", "s"):
		g.setDir(0, 1)
	case keys.Any("left", "a"):
		g.setDir(-1, 0)
	case keys.Any("right", "d"):
		g.setDir(1, 0)
	}
}

// setDir ignores direct reversals, which would be instant self-collision.
func (g *Game) setDir(x, y int) {
	if len(g.body) > 1 && g.dir.X == -x && g.dir.Y == -y {
		return
	}
	g.dir = Point{X: x, Y: y}
}

func (g *Game) step() {
	head := Point{
		X: (g.body[0].X + g.dir.X + g.w) % g.w,
		Y: (g.body[0].Y+g.dir.Y-1+g.h-1)%(g.h-1) + 1, // row 0 is the HUD
	}

	for _, p := range g.body {
		if p == head {
			g.reset()
			return
		}
	}

	g.body = append([]Point{head}, g.body...)
	if head == g.food {
		g.score++
		g.placeFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}
}

func (g *Game) render() {
	g.api.Clear()
	for _, p := range g.body {
		g.api.Rect(float64(p.X), float64(p.Y), 1, 1, core.ColorBrightMagenta)
	}
	g.api.Rect(float64(g.food.X), float64(g.food.Y), 1, 1, core.ColorBrightGreen)
	g.api.Text(fmt.Sprintf("Snake - arrows/WASD | Score: %d", g.score), 1, 0, core.ColorGray)
}
