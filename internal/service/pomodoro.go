package service

import (
	"strings"
	"time"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/store"
)

const defaultSessionLabel = "Focus Session"

// RecordFocusSession persists one completed focus interval. The timer engine
// calls this only on natural expiry; abandoned intervals never reach it.
func RecordFocusSession(st *store.Store, label string, durationMinutes int, now time.Time) (model.PomodoroSession, error) {
	var session model.PomodoroSession
	if err := validatePositiveInt("duration", durationMinutes); err != nil {
		return session, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = defaultSessionLabel
	}
	session = model.PomodoroSession{
		ID:              newID(),
		Label:           label,
		DurationMinutes: durationMinutes,
		Date:            DateOf(now),
		Timestamp:       now.Format(time.RFC3339),
	}
	return store.Save(st, model.CollectionPomodoro, session)
}

// RecentSessions returns newest-first history, capped to limit.
func RecentSessions(st *store.Store, limit int) ([]model.PomodoroSession, error) {
	sessions, err := store.Get[model.PomodoroSession](st, model.CollectionPomodoro)
	if err != nil {
		return nil, err
	}
	out := make([]model.PomodoroSession, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		out = append(out, sessions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// SessionStats is the all-time session count and focus minutes.
func SessionStats(st *store.Store) (count, totalMinutes int, err error) {
	sessions, err := store.Get[model.PomodoroSession](st, model.CollectionPomodoro)
	if err != nil {
		return 0, 0, err
	}
	for _, s := range sessions {
		totalMinutes += s.DurationMinutes
	}
	return len(sessions), totalMinutes, nil
}

// SessionRecorder adapts the store to the timer engine's Recorder port.
type SessionRecorder struct {
	Store *store.Store
}

func (r SessionRecorder) RecordSession(label string, durationMinutes int, now time.Time) error {
	_, err := RecordFocusSession(r.Store, label, durationMinutes, now)
	return err
}
