package snake

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Options configures a controller and the sessions it constructs.
type Options struct {
	Board    Board
	Start    core.Cell     // Fixed start cell for the length-1 snake
	Reward   int           // Score increment per food
	Interval time.Duration // Fixed tick period
	Seed     int64         // RNG seed; 0 means derive from current time
}

// Controller owns the live session, buffers direction intents between
// ticks and drives the phase state machine:
//
//	NotStarted → Running ↔ Paused → GameOver → (reset) → NotStarted
//
// All methods must be called from one goroutine; the platform tick loop is
// the single writer, observers read snapshots only.
type Controller struct {
	opts    Options
	rng     *rand.Rand
	session Session
}

// NewController creates a controller with a fresh NotStarted session.
func NewController(opts Options) *Controller {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
	}
	c.Reset()
	return c
}

// Start transitions NotStarted → Running and admits tick scheduling.
// It has no effect in any other phase: a finished run must be Reset first.
func (c *Controller) Start() {
	if c.session.Phase != PhaseNotStarted {
		return
	}
	c.session.Phase = PhaseRunning
}

// Steer buffers a direction intent for the next tick. Inputs arriving
// between two ticks are coalesced: only the most recent one takes effect.
// Ignored entirely unless the phase is Running; reversal validation
// happens inside Step, not here.
func (c *Controller) Steer(d Direction) {
	if c.session.Phase != PhaseRunning {
		return
	}
	if d == DirNone {
		return
	}
	c.session.Pending = d
}

// TogglePause flips Running ↔ Paused and has no effect otherwise.
// Pausing halts simulation advancement but not the scheduler: a tick that
// still fires becomes a no-op inside Step.
func (c *Controller) TogglePause() {
	switch c.session.Phase {
	case PhaseRunning:
		c.session.Phase = PhasePaused
	case PhasePaused:
		c.session.Phase = PhaseRunning
	}
}

// Tick advances the simulation by one step. On collision the phase
// transitions to GameOver and Ticking turns false so the scheduler stops;
// any callback that fires afterwards is a no-op.
func (c *Controller) Tick() {
	next, err := Step(c.session)

	var collision *CollisionError
	if errors.As(err, &collision) {
		c.session.Phase = PhaseGameOver
		return
	}

	c.session = next
}

// Reset discards the current session and constructs a fresh one: snake of
// length 1 at the start cell, no direction, score 0, phase NotStarted.
// An explicit Start is required afterwards.
func (c *Controller) Reset() {
	c.session = NewSession(c.opts.Board, c.opts.Start, c.opts.Reward, c.rng)
}

// Apply dispatches an abstract input intent to the matching operation.
// Unknown or out-of-phase intents are no-ops, never errors.
func (c *Controller) Apply(in core.Intent) {
	switch in {
	case core.IntentUp, core.IntentDown, core.IntentLeft, core.IntentRight:
		c.Steer(DirectionFor(in))
	case core.IntentPause:
		c.TogglePause()
	case core.IntentStart:
		c.Start()
	case core.IntentReset:
		if c.session.Phase == PhaseGameOver {
			c.Reset()
		}
	}
}

// Ticking reports whether the fixed-period scheduler should keep firing.
// True while Running or Paused; game over and the pre-start screen do not
// need ticks.
func (c *Controller) Ticking() bool {
	return c.session.Phase == PhaseRunning || c.session.Phase == PhasePaused
}

// Interval returns the fixed tick period.
func (c *Controller) Interval() time.Duration {
	return c.opts.Interval
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.session.Phase
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.session.Score
}

// Snapshot returns a read-only view of the current session.
func (c *Controller) Snapshot() Snapshot {
	return c.session.Snapshot()
}
