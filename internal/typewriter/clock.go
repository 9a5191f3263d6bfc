package typewriter

import "time"

// Timer is the part of *time.Timer a reveal needs.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock creates timers. Tests substitute a fake to avoid sleeping.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

// RealClock is backed by the time package.
type RealClock struct{}

// NewTimer starts a real timer.
func (RealClock) NewTimer(d time.Duration) Timer {
	return realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r realTimer) C() <-chan time.Time { return r.t.C }
func (r realTimer) Stop() bool          { return r.t.Stop() }
