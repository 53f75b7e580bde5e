// Package timer implements the pomodoro countdown as a tick-driven state
// machine. The engine owns no clock and no goroutine: the caller delivers
// one Tick per elapsed second, which keeps the whole lifecycle, including
// natural expiry, deterministic under test.
package timer

import (
	"fmt"
	"time"
)

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

type Mode int

const (
	Focus Mode = iota
	Break
)

func (m Mode) String() string {
	if m == Break {
		return "break"
	}
	return "focus"
}

// Recorder receives exactly one call per naturally completed focus interval.
type Recorder interface {
	RecordSession(label string, durationMinutes int, now time.Time) error
}

// Engine is a single-instance countdown. It is not safe for concurrent use;
// the system has one logical thread of control.
type Engine struct {
	state     State
	mode      Mode
	label     string
	remaining int // seconds
	total     int // seconds

	recorder Recorder

	// In-memory counters for the current process; history lives in the store.
	SessionCount int
	TotalMinutes int
}

func New(recorder Recorder) *Engine {
	e := &Engine{recorder: recorder}
	e.Configure(25, Focus)
	return e
}

func (e *Engine) State() State      { return e.state }
func (e *Engine) Mode() Mode        { return e.mode }
func (e *Engine) Remaining() int    { return e.remaining }
func (e *Engine) Total() int        { return e.total }
func (e *Engine) Label() string     { return e.label }
func (e *Engine) SetLabel(l string) { e.label = l }

// Configure sets a new interval and returns the engine to Idle. A running
// countdown is implicitly stopped first; its partial time is discarded.
func (e *Engine) Configure(minutes int, mode Mode) error {
	if minutes <= 0 {
		return fmt.Errorf("duration must be > 0 minutes")
	}
	e.state = Idle
	e.mode = mode
	e.total = minutes * 60
	e.remaining = e.total
	return nil
}

// Start begins or resumes the countdown. Starting an expired interval
// restarts it from the configured total.
func (e *Engine) Start() {
	if e.state == Running {
		return
	}
	if e.remaining <= 0 {
		e.remaining = e.total
	}
	e.state = Running
}

func (e *Engine) Pause() {
	if e.state == Running {
		e.state = Paused
	}
}

// Reset returns to Idle with the configured total restored.
func (e *Engine) Reset() {
	e.state = Idle
	e.remaining = e.total
}

// Tick advances the countdown by one second. On natural expiry the engine
// goes Idle and, for focus intervals, commits one session through the
// recorder. Break expiry records nothing.
func (e *Engine) Tick(now time.Time) error {
	if e.state != Running {
		return nil
	}
	e.remaining--
	if e.remaining > 0 {
		return nil
	}
	e.remaining = 0
	e.state = Idle
	if e.mode != Focus {
		return nil
	}
	minutes := e.total / 60
	e.SessionCount++
	e.TotalMinutes += minutes
	if e.recorder == nil {
		return nil
	}
	if err := e.recorder.RecordSession(e.label, minutes, now); err != nil {
		return fmt.Errorf("record completed session: %w", err)
	}
	return nil
}
