package actor

import "time"

// Frame pacing defaults.
const (
	DefaultMinFrame = 16 * time.Millisecond
	DefaultMaxDelta = 0.05
)

// ClockConfig controls frame pacing.
type ClockConfig struct {
	// MinFrame is the shortest frame the clock allows; Tick waits out the
	// remainder. Zero disables waiting, for drivers that pace themselves.
	MinFrame time.Duration
	// MaxDelta caps the delta time in seconds so a stall (debugger,
	// suspended terminal) can't make objects tunnel.
	MaxDelta float64
}

// DefaultClockConfig returns a 16ms minimum frame and 0.05s maximum delta.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{MinFrame: DefaultMinFrame, MaxDelta: DefaultMaxDelta}
}

// Clock measures elapsed time between frames.
type Clock struct {
	cfg   ClockConfig
	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time
}

// NewClock creates a clock started at the current time. A non-positive
// MaxDelta falls back to the default.
func NewClock(cfg ClockConfig) *Clock {
	return newClock(cfg, time.Now, time.Sleep)
}

func newClock(cfg ClockConfig, now func() time.Time, sleep func(time.Duration)) *Clock {
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = DefaultMaxDelta
	}
	if cfg.MinFrame < 0 {
		cfg.MinFrame = 0
	}
	return &Clock{cfg: cfg, now: now, sleep: sleep, last: now()}
}

// Config returns the clock's effective configuration.
func (c *Clock) Config() ClockConfig {
	return c.cfg
}

// Reset restarts measurement from now, dropping any accumulated time.
func (c *Clock) Reset() {
	c.last = c.now()
}

// Tick waits until at least MinFrame has passed since the previous tick,
// then returns the elapsed seconds clamped to [0, MaxDelta].
func (c *Clock) Tick() float64 {
	if c.cfg.MinFrame > 0 {
		if wait := c.cfg.MinFrame - c.now().Sub(c.last); wait > 0 {
			c.sleep(wait)
		}
	}

	now := c.now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt, c.cfg.MaxDelta)
}

// ClampDelta limits dt to [0, max]. Negative deltas come from clocks
// stepping backwards and are treated as zero.
func ClampDelta(dt, max float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}
