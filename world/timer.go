package world

import "time"

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed simulation time. JustFinished reports whether the last
// Tick crossed the duration.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	finished     bool
	timesElapsed int
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

func (t *Timer) Tick(dt time.Duration) {
	t.timesElapsed = 0
	if t.Mode == TimerOnce && t.finished {
		return
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return
	}

	if t.Mode == TimerOnce {
		t.Elapsed = t.Duration
		t.finished = true
		t.timesElapsed = 1
		return
	}

	if t.Duration <= 0 {
		t.Elapsed = 0
		t.timesElapsed = 1
		return
	}
	t.timesElapsed = int(t.Elapsed / t.Duration)
	t.Elapsed %= t.Duration
}

func (t *Timer) JustFinished() bool {
	return t.timesElapsed > 0
}

// TimesFinished is the number of periods crossed by the last Tick.
func (t *Timer) TimesFinished() int {
	return t.timesElapsed
}

func (t *Timer) Finished() bool {
	return t.finished || t.timesElapsed > 0
}
