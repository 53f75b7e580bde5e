package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg.FocusMinutes != def.FocusMinutes || cfg.DeadlineLimit != def.DeadlineLimit {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileBackFillsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "focus_minutes: 50\nweak_topic_threshold: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FocusMinutes != 50 {
		t.Fatalf("expected focus_minutes 50, got %d", cfg.FocusMinutes)
	}
	if cfg.WeakTopicThreshold != 3 {
		t.Fatalf("expected weak_topic_threshold 3, got %d", cfg.WeakTopicThreshold)
	}
	if cfg.BreakMinutes != 5 {
		t.Fatalf("expected default break_minutes, got %d", cfg.BreakMinutes)
	}
	if len(cfg.CanonicalTopics) == 0 {
		t.Fatal("expected default canonical topics")
	}
}

func TestLoadBadYAMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("focus_minutes: [not an int\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.FocusMinutes != Default().FocusMinutes {
		t.Fatalf("expected defaults on parse error, got %+v", cfg)
	}
}
