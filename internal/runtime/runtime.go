// Package runtime executes game definitions against a drawing surface
// under a cooperative per-frame schedule. It owns the lifecycle of at
// most one running game at a time and guarantees clean teardown when a
// new definition is loaded.
package runtime

import (
	"fmt"
	"math/rand"

	"github.com/playform/playform/internal/core"
)

// StopFunc tears down a running game. Safe to call more than once.
type StopFunc func()

// Definition is an opaque unit of executable game logic. Init receives
// the runtime API and a loop starter; it may return a stop callback
// for teardown beyond cancelling its frame loop.
type Definition interface {
	// Name is the unique registry identifier (e.g. "snake").
	Name() string

	// Title is a human-readable display name.
	Title() string

	// Init wires the game to the surface and starts its frame loop via
	// start. Returning an error (or panicking) marks the definition as
	// broken; the runtime contains the failure.
	Init(api *API, start LoopStarter) (StopFunc, error)
}

// DefinitionError reports that a definition failed to initialize or
// failed during a frame. It never escapes Load: a broken user-authored
// game must not take down the host.
type DefinitionError struct {
	Name  string
	Phase string // "init" or "frame"
	cause error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("runtime: definition %q failed during %s: %v", e.Name, e.Phase, e.cause)
}

func (e *DefinitionError) Unwrap() error {
	return e.cause
}

// State describes the runtime lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// errorMessage is rendered onto the surface when a definition fails.
const errorMessage = "Error in game code."

// Runtime drives exactly one definition at a time. Load is re-entrant:
// loading while a game is running stops the previous game first.
// Not safe for concurrent use; the host drives it from a single loop.
type Runtime struct {
	pacer Pacer
	keys  core.KeyView
	clock *core.Clock
	rng   *rand.Rand

	state   State
	surface *core.Surface
	stop    StopFunc
	run     *run
	current Definition
	lastErr error
}

// New creates a runtime. Frames are scheduled through pacer; keys is
// the live pressed-key set shared with the host's input handling.
// Seed 0 derives the RNG seed from the clock.
func New(pacer Pacer, keys core.KeyView, seed int64) *Runtime {
	clock := core.NewClock()
	if seed == 0 {
		seed = int64(clock.Now()*1e9) + 1
	}
	return &Runtime{
		pacer: pacer,
		keys:  keys,
		clock: clock,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Load binds def to surface and starts it. Any previously running game
// is stopped first, so at most one game is ever active. Failures in
// the definition's entry point are contained: the surface shows a
// fixed error message and the runtime ends up idle with no frames
// scheduled. Load itself never fails.
func (r *Runtime) Load(def Definition, surface *core.Surface) {
	r.Stop()

	r.surface = surface
	r.run = newRun(r.pacer, surface)

	api := &API{
		surface: surface,
		keys:    r.keys,
		clock:   r.clock,
		rng:     r.rng,
	}

	stop, err := safeInit(def, api, r.run.starter())
	if err != nil {
		r.run.cancelAll()
		r.run = nil
		surface.Clear()
		surface.DrawText(1, 1, errorMessage, core.ColorBrightRed)
		r.stop = func() {}
		r.state = StateIdle
		r.lastErr = err
		return
	}

	r.stop = stop
	r.current = def
	r.state = StateRunning
	r.lastErr = nil
}

// safeInit invokes the definition entry point, converting both error
// returns and panics into a DefinitionError.
func safeInit(def Definition, api *API, start LoopStarter) (stop StopFunc, err error) {
	defer func() {
		if p := recover(); p != nil {
			stop = nil
			err = &DefinitionError{Name: def.Name(), Phase: "init", cause: fmt.Errorf("panic: %v", p)}
		}
	}()

	stop, err = def.Init(api, start)
	if err != nil {
		return nil, &DefinitionError{Name: def.Name(), Phase: "init", cause: err}
	}
	if stop == nil {
		stop = func() {}
	}
	return stop, nil
}

// Stop tears down the running game, if any. The game's own stop
// callback runs first (failures swallowed), then every frame loop it
// started is cancelled. Idempotent.
func (r *Runtime) Stop() {
	if r.stop != nil {
		stop := r.stop
		r.stop = nil
		func() {
			defer func() {
				// Broken stop callbacks must not prevent teardown.
				_ = recover()
			}()
			stop()
		}()
	}

	if r.run != nil {
		r.run.cancelAll()
		r.run = nil
	}

	if r.state == StateRunning {
		r.state = StateStopped
	}
}

// Current returns the definition recorded by the last successful Load.
// Save and publish read this; they never re-derive it.
func (r *Runtime) Current() Definition {
	return r.current
}

// State returns the current lifecycle state.
func (r *Runtime) State() State {
	return r.state
}

// LastError returns the contained failure from the most recent Load,
// or nil. Exposed for the host to surface a hint; never propagated.
func (r *Runtime) LastError() error {
	return r.lastErr
}
