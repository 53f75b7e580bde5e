package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Every field is optional in the file;
// zero values are back-filled with the defaults below so callers always get
// a usable Config.
type Config struct {
	// FocusMinutes and BreakMinutes are the pomodoro presets.
	FocusMinutes int `yaml:"focus_minutes"`
	BreakMinutes int `yaml:"break_minutes"`

	// DashboardHeatmapDays and AnalyticsHeatmapDays are the window sizes, in
	// calendar days ending today, of the two practice heatmaps.
	DashboardHeatmapDays int `yaml:"dashboard_heatmap_days"`
	AnalyticsHeatmapDays int `yaml:"analytics_heatmap_days"`

	// CanonicalTopics is the topic list weak-topic detection reports against.
	CanonicalTopics []string `yaml:"canonical_topics"`

	// WeakTopicThreshold is the entry count below which a topic counts as
	// weak (exclusive upper bound; topics with zero entries are "not started").
	WeakTopicThreshold int `yaml:"weak_topic_threshold"`

	// DeadlineLimit bounds the upcoming-deadlines list on the dashboard.
	DeadlineLimit int `yaml:"deadline_limit"`
}

func Default() Config {
	return Config{
		FocusMinutes:         25,
		BreakMinutes:         5,
		DashboardHeatmapDays: 30,
		AnalyticsHeatmapDays: 120,
		CanonicalTopics: []string{
			"Array", "String", "Linked List", "Tree", "Graph", "DP",
			"Backtracking", "Greedy", "Binary Search", "Stack", "Queue", "Heap",
		},
		WeakTopicThreshold: 5,
		DeadlineLimit:      5,
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// a present file only overrides the fields it sets.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file %s: %w", path, err)
	}

	def := Default()
	if cfg.FocusMinutes <= 0 {
		cfg.FocusMinutes = def.FocusMinutes
	}
	if cfg.BreakMinutes <= 0 {
		cfg.BreakMinutes = def.BreakMinutes
	}
	if cfg.DashboardHeatmapDays <= 0 {
		cfg.DashboardHeatmapDays = def.DashboardHeatmapDays
	}
	if cfg.AnalyticsHeatmapDays <= 0 {
		cfg.AnalyticsHeatmapDays = def.AnalyticsHeatmapDays
	}
	if len(cfg.CanonicalTopics) == 0 {
		cfg.CanonicalTopics = def.CanonicalTopics
	}
	if cfg.WeakTopicThreshold <= 0 {
		cfg.WeakTopicThreshold = def.WeakTopicThreshold
	}
	if cfg.DeadlineLimit <= 0 {
		cfg.DeadlineLimit = def.DeadlineLimit
	}
	return cfg, nil
}
