package gizmos

import (
	"time"
)

// Clock is the time source the registry consults for spawn stamps and expiry.
// Now must be monotonic for the lifetime of a session.
type Clock interface {
	Now() time.Duration
	// FixedStep reports the fixed-timestep length and whether the caller is
	// currently inside a fixed update.
	FixedStep() (time.Duration, bool)
}

// Time is the per-frame time resource. Elapsed is simulation time since the
// session started; it is what gizmo lifetimes are measured against.
type Time struct {
	Time        time.Time
	Dt          time.Duration
	Elapsed     time.Duration
	FixedDt     time.Duration
	InFixedStep bool
}

func (t *Time) Now() time.Duration { return t.Elapsed }

func (t *Time) FixedStep() (time.Duration, bool) {
	return t.FixedDt, t.InFixedStep
}

// DefaultFixedStep matches a 50 Hz physics tick.
const DefaultFixedStep = 20 * time.Millisecond

type TimeModule struct {
	FixedStep time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	step := mod.FixedStep
	if step <= 0 {
		step = DefaultFixedStep
	}
	cmd.AddResources(&Time{
		Time:    time.Now(),
		FixedDt: step,
	})
}

// advance moves simulation time forward by dt.
func (t *Time) advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	t.Dt = dt
	t.Time = t.Time.Add(dt)
	t.Elapsed += dt
}

// ManualClock is a Clock driven by hand, for hosts without an App and for tests.
type ManualClock struct {
	Elapsed time.Duration
	Step    time.Duration
	InFixed bool
}

func (c *ManualClock) Now() time.Duration { return c.Elapsed }

func (c *ManualClock) FixedStep() (time.Duration, bool) {
	return c.Step, c.InFixed
}

func (c *ManualClock) Advance(dt time.Duration) {
	c.Elapsed += dt
}
