package runtime

import (
	"time"

	"github.com/playform/playform/internal/core"
)

// CancelFunc halts a scheduled frame loop. Idempotent.
type CancelFunc func()

// LoopStarter begins a repeating per-frame invocation schedule for the
// given update function. update receives the elapsed seconds since the
// previous frame (zero on the first frame). The returned CancelFunc
// halts all future frames for that loop.
type LoopStarter func(update func(dt float64)) CancelFunc

// Pacer is the host-supplied frame pacing signal. RequestFrame asks
// for exactly one callback with an approximately-fixed-rate timestamp;
// the loop re-arms itself after each frame, so frame N+1 is only
// scheduled once frame N has fired. The returned CancelFunc revokes a
// pending request.
type Pacer interface {
	RequestFrame(cb func(t time.Time)) CancelFunc
}

// run tracks every loop started by one loaded definition so the
// runtime can guarantee teardown even when the definition's own stop
// callback forgets to cancel.
type run struct {
	pacer   Pacer
	surface *core.Surface
	loops   []*loop
}

func newRun(pacer Pacer, surface *core.Surface) *run {
	return &run{pacer: pacer, surface: surface}
}

// starter returns the LoopStarter handed to the definition.
func (rn *run) starter() LoopStarter {
	return func(update func(dt float64)) CancelFunc {
		l := &loop{
			pacer:   rn.pacer,
			surface: rn.surface,
			update:  update,
		}
		rn.loops = append(rn.loops, l)
		l.arm()
		return l.cancel
	}
}

// cancelAll halts every loop of this run.
func (rn *run) cancelAll() {
	for _, l := range rn.loops {
		l.cancel()
	}
	rn.loops = nil
}

// loop is one repeating frame schedule. A single frame callback is in
// flight at a time: the next frame is requested only after the current
// update returns.
type loop struct {
	pacer       Pacer
	surface     *core.Surface
	update      func(dt float64)
	cancelFrame CancelFunc
	last        time.Time
	started     bool
	cancelled   bool
}

func (l *loop) arm() {
	l.cancelFrame = l.pacer.RequestFrame(l.frame)
}

func (l *loop) frame(t time.Time) {
	if l.cancelled {
		return
	}

	var dt float64
	if l.started {
		dt = t.Sub(l.last).Seconds()
		if dt < 0 {
			dt = 0
		}
	}
	l.last = t
	l.started = true

	if !l.safeUpdate(dt) {
		// The update panicked: halt the loop and show the fixed error
		// message instead of crashing the host.
		l.cancel()
		if l.surface != nil {
			l.surface.Clear()
			l.surface.DrawText(1, 1, errorMessage, core.ColorBrightRed)
		}
		return
	}

	if !l.cancelled {
		l.arm()
	}
}

// safeUpdate runs one frame update, reporting false if it panicked.
func (l *loop) safeUpdate(dt float64) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	l.update(dt)
	return true
}

func (l *loop) cancel() {
	if l.cancelled {
		return
	}
	l.cancelled = true
	if l.cancelFrame != nil {
		l.cancelFrame()
		l.cancelFrame = nil
	}
}

// ManualPacer drives frames by explicit Step calls. The platform uses
// it for headless runs (thumbnail capture); tests use it to control
// frame timing exactly.
type ManualPacer struct {
	pending []*manualReq
}

type manualReq struct {
	cb        func(t time.Time)
	cancelled bool
}

// NewManualPacer creates an empty manual pacer.
func NewManualPacer() *ManualPacer {
	return &ManualPacer{}
}

// RequestFrame implements Pacer.
func (p *ManualPacer) RequestFrame(cb func(t time.Time)) CancelFunc {
	req := &manualReq{cb: cb}
	p.pending = append(p.pending, req)
	return func() { req.cancelled = true }
}

// Step fires every pending frame callback with the given timestamp.
// Callbacks requested during Step wait for the next Step.
func (p *ManualPacer) Step(t time.Time) {
	reqs := p.pending
	p.pending = nil
	for _, req := range reqs {
		if !req.cancelled {
			req.cb(t)
		}
	}
}

// Pending reports how many frame requests are waiting.
func (p *ManualPacer) Pending() int {
	n := 0
	for _, req := range p.pending {
		if !req.cancelled {
			n++
		}
	}
	return n
}
