// Package blank is the empty studio canvas shown before any game has
// been generated.
package blank

import (
	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

// Game renders a static hint and runs no frame loop.
type Game struct{}

// New creates a blank canvas definition.
func New() *Game { return &Game{} }

func init() {
	registry.Register("blank", func() runtime.Definition { return New() })
}

// Name returns the definition identifier.
func (g *Game) Name() string { return "blank" }

// Title returns the display name.
func (g *Game) Title() string { return "Blank Canvas" }

// Init draws the hint once; there is nothing to tear down.
func (g *Game) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	api.Clear()
	api.Text("Describe a game in the prompt, then generate.", 2, 2, core.ColorGray)
	return nil, nil
}
