package service_test

import (
	"testing"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/timer"
)

func TestRecordFocusSessionDefaultsLabel(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	session, err := service.RecordFocusSession(st, "  ", 25, testNow)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if session.Label != "Focus Session" {
		t.Fatalf("expected default label, got %q", session.Label)
	}
	if session.Date != day(0) {
		t.Fatalf("expected today's date, got %s", session.Date)
	}

	if _, err := service.RecordFocusSession(st, "x", 0, testNow); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestRecentSessionsNewestFirstCapped(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	labels := []string{"one", "two", "three"}
	for _, l := range labels {
		if _, err := service.RecordFocusSession(st, l, 25, testNow); err != nil {
			t.Fatalf("record %s: %v", l, err)
		}
	}

	recent, err := service.RecentSessions(st, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].Label != "three" || recent[1].Label != "two" {
		t.Fatalf("wrong history: %+v", recent)
	}

	count, minutes, err := service.SessionStats(st)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 3 || minutes != 75 {
		t.Fatalf("stats: count=%d minutes=%d", count, minutes)
	}
}

// Drives the engine against the real store: one full focus interval commits
// exactly one durable session.
func TestEngineCommitsThroughStoreRecorder(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	e := timer.New(service.SessionRecorder{Store: st})
	if err := e.Configure(25, timer.Focus); err != nil {
		t.Fatalf("configure: %v", err)
	}
	e.SetLabel("spec reading")
	e.Start()
	for i := 0; i < 25*60; i++ {
		if err := e.Tick(testNow); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}

	sessions, err := service.RecentSessions(st, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 committed session, got %d", len(sessions))
	}
	if sessions[0].DurationMinutes != 25 || sessions[0].Label != "spec reading" {
		t.Fatalf("unexpected session: %+v", sessions[0])
	}
}
