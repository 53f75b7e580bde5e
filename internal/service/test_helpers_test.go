package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/studyos/studyos/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "studyos.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// testNow is a fixed "now" so date-window logic stays deterministic.
var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func day(offset int) string {
	return testNow.AddDate(0, 0, offset).Format("2006-01-02")
}
