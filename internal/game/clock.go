package game

import "time"

// Clock supplies wall-clock time to the session. Slide and
// invulnerability windows are real-time durations, not tick counts, so
// the session never calls time.Now directly; it asks its Clock. Tests
// and headless drivers substitute a ManualClock to make those windows
// deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real-time clock used by default.
func SystemClock() Clock { return systemClock{} }

// ManualClock is a Clock that only moves when told to. Headless runs
// advance it by one tick interval per simulated tick so that wall-clock
// windows scale with simulated time instead of host speed.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a ManualClock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Set jumps the clock to t. Moving backwards is allowed; the session
// treats deadlines strictly, so a rewound clock simply re-arms them.
func (c *ManualClock) Set(t time.Time) { c.now = t }
