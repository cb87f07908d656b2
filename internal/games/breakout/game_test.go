package breakout

import (
	"testing"
	"time"

	"github.com/playform/playform/internal/core"
	"github.com/playform/playform/internal/runtime"
)

func startGame(t *testing.T, keys *core.KeySet) (*Game, *runtime.ManualPacer) {
	t.Helper()
	pacer := runtime.NewManualPacer()
	rt := runtime.New(pacer, keys, 3)
	surface := core.NewSurface(60, 24)

	g := New()
	rt.Load(g, surface)
	if rt.LastError() != nil {
		t.Fatalf("Load() failed: %v", rt.LastError())
	}
	t.Cleanup(rt.Stop)
	return g, pacer
}

// advance runs n frames at a fixed 50ms cadence.
func advance(pacer *runtime.ManualPacer, n int) {
	base := time.Unix(0, 0)
	for i := 0; i <= n; i++ {
		pacer.Step(base.Add(time.Duration(i) * 50 * time.Millisecond))
	}
}

func TestBreakoutLaysOutBricks(t *testing.T) {
	g, _ := startGame(t, core.NewKeySet())

	if len(g.bricks) != rows*cols {
		t.Errorf("bricks = %d, expected %d", len(g.bricks), rows*cols)
	}
	if g.remaining != rows*cols {
		t.Errorf("remaining = %d, expected %d", g.remaining, rows*cols)
	}
}

func TestBreakoutPaddleMovesAndClamps(t *testing.T) {
	keys := core.NewKeySet()
	g, pacer := startGame(t, keys)

	startX := g.paddleX
	keys.Press("right")
	advance(pacer, 5)
	if g.paddleX <= startX {
		t.Errorf("paddleX = %v, expected movement right of %v", g.paddleX, startX)
	}

	advance(pacer, 400)
	if g.paddleX > g.w-paddleW-1 {
		t.Errorf("paddleX = %v ran past the right wall", g.paddleX)
	}
}

func TestBreakoutBallResetsWhenLost(t *testing.T) {
	g, pacer := startGame(t, core.NewKeySet())

	g.by = g.h + 1
	advance(pacer, 1)

	if g.by > g.h-4 {
		t.Errorf("ball Y = %v after losing it, expected a reset near the paddle", g.by)
	}
	if g.bvy >= 0 {
		t.Errorf("reset ball should move upward, bvy = %v", g.bvy)
	}
}

func TestBreakoutBrickHitDecrementsRemaining(t *testing.T) {
	g, pacer := startGame(t, core.NewKeySet())

	// Put the ball inside the first brick, moving up
	b := g.bricks[0]
	g.bx, g.by = b.x+0.5, b.y+0.5
	g.bvx, g.bvy = 0, -1

	before := g.remaining
	advance(pacer, 1)

	if g.remaining != before-1 {
		t.Errorf("remaining = %d, expected %d", g.remaining, before-1)
	}
	if !g.bricks[0].hit {
		t.Error("brick not marked hit")
	}

	// A hit brick does not count twice
	g.bx, g.by = b.x+0.5, b.y+0.5
	advance(pacer, 1)
	if g.remaining != before-1 {
		t.Errorf("remaining = %d after re-entering a dead brick", g.remaining)
	}
}
