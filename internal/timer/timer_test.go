package timer_test

import (
	"testing"
	"time"

	"github.com/studyos/studyos/internal/timer"
)

type recordedSession struct {
	label   string
	minutes int
	at      time.Time
}

type fakeRecorder struct {
	sessions []recordedSession
}

func (r *fakeRecorder) RecordSession(label string, durationMinutes int, now time.Time) error {
	r.sessions = append(r.sessions, recordedSession{label: label, minutes: durationMinutes, at: now})
	return nil
}

func tick(t *testing.T, e *timer.Engine, n int) {
	t.Helper()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		at = at.Add(time.Second)
		if err := e.Tick(at); err != nil {
			t.Fatalf("tick %d: %v", i+1, err)
		}
	}
}

func TestFocusIntervalCommitsSessionOnNaturalExpiry(t *testing.T) {
	t.Parallel()
	rec := &fakeRecorder{}
	e := timer.New(rec)

	if err := e.Configure(25, timer.Focus); err != nil {
		t.Fatalf("configure: %v", err)
	}
	e.SetLabel("graph practice")
	e.Start()
	tick(t, e, 25*60)

	if e.State() != timer.Idle {
		t.Fatalf("expected Idle after expiry, got %v", e.State())
	}
	if len(rec.sessions) != 1 {
		t.Fatalf("expected exactly 1 recorded session, got %d", len(rec.sessions))
	}
	got := rec.sessions[0]
	if got.minutes != 25 || got.label != "graph practice" {
		t.Fatalf("unexpected session %+v", got)
	}
	if e.SessionCount != 1 || e.TotalMinutes != 25 {
		t.Fatalf("counters not updated: count=%d minutes=%d", e.SessionCount, e.TotalMinutes)
	}

	// Further ticks after expiry are no-ops.
	tick(t, e, 10)
	if len(rec.sessions) != 1 {
		t.Fatalf("idle ticks recorded a session: %d", len(rec.sessions))
	}
}

func TestPausedIntervalIsNeverRecorded(t *testing.T) {
	t.Parallel()
	rec := &fakeRecorder{}
	e := timer.New(rec)

	if err := e.Configure(25, timer.Focus); err != nil {
		t.Fatalf("configure: %v", err)
	}
	e.Start()
	tick(t, e, 10)
	e.Pause()

	if e.State() != timer.Paused {
		t.Fatalf("expected Paused, got %v", e.State())
	}
	if e.Remaining() != 25*60-10 {
		t.Fatalf("pause lost remaining time: %d", e.Remaining())
	}
	// Ticks while paused must not advance the countdown.
	tick(t, e, 5000)
	if e.Remaining() != 25*60-10 {
		t.Fatalf("ticks advanced a paused timer: %d", e.Remaining())
	}
	if len(rec.sessions) != 0 {
		t.Fatalf("abandoned interval was recorded: %d sessions", len(rec.sessions))
	}
}

func TestBreakExpiryRecordsNothing(t *testing.T) {
	t.Parallel()
	rec := &fakeRecorder{}
	e := timer.New(rec)

	if err := e.Configure(5, timer.Break); err != nil {
		t.Fatalf("configure: %v", err)
	}
	e.Start()
	tick(t, e, 5*60)

	if e.State() != timer.Idle {
		t.Fatalf("expected Idle after break, got %v", e.State())
	}
	if len(rec.sessions) != 0 {
		t.Fatalf("break interval recorded a session")
	}
}

func TestConfigureWhileRunningDiscardsPartialTime(t *testing.T) {
	t.Parallel()
	rec := &fakeRecorder{}
	e := timer.New(rec)

	if err := e.Configure(25, timer.Focus); err != nil {
		t.Fatalf("configure: %v", err)
	}
	e.Start()
	tick(t, e, 100)
	if err := e.Configure(5, timer.Break); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}

	if e.State() != timer.Idle {
		t.Fatalf("expected Idle after reconfigure, got %v", e.State())
	}
	if e.Remaining() != 5*60 || e.Total() != 5*60 {
		t.Fatalf("reconfigure did not reset interval: remaining=%d total=%d", e.Remaining(), e.Total())
	}
	if len(rec.sessions) != 0 {
		t.Fatalf("reconfigure recorded a session")
	}
}

func TestResetReturnsToConfiguredTotal(t *testing.T) {
	t.Parallel()
	e := timer.New(nil)

	if err := e.Configure(10, timer.Focus); err != nil {
		t.Fatalf("configure: %v", err)
	}
	e.Start()
	tick(t, e, 42)
	e.Reset()

	if e.State() != timer.Idle {
		t.Fatalf("expected Idle after reset, got %v", e.State())
	}
	if e.Remaining() != 10*60 {
		t.Fatalf("reset did not restore total: %d", e.Remaining())
	}
}

func TestConfigureRejectsNonPositiveDuration(t *testing.T) {
	t.Parallel()
	e := timer.New(nil)
	if err := e.Configure(0, timer.Focus); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if err := e.Configure(-5, timer.Break); err == nil {
		t.Fatal("expected error for negative duration")
	}
}
