package studyos

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
)

const (
	maxNotStartedTopics = 4
	maxWeakTopics       = 6
	dailyCountDays      = 14
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show practice statistics and weak topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return withStore(func(st *store.Store) error {
			entries, err := store.Get[model.PracticeEntry](st, model.CollectionPractice)
			if err != nil {
				return err
			}
			now := time.Now()
			out := cmd.OutOrStdout()

			report := service.Breakdown(entries)
			fmt.Fprintf(out, "Practice log: %d entries, %d active days, %d day streak\n",
				report.Total, report.ActiveDays, service.Streak(entries, now))
			fmt.Fprintf(out, "Time: %d minutes total, %d per entry\n", report.TotalMinutes, report.AvgMinutes)
			fmt.Fprintf(out, "Difficulty: %d easy / %d medium / %d hard\n\n",
				report.Difficulties.Easy, report.Difficulties.Medium, report.Difficulties.Hard)

			if len(report.Topics) > 0 {
				fmt.Fprintln(out, "By topic")
				for _, tc := range report.Topics {
					fmt.Fprintf(out, "  %-20s %d\n", tc.Topic, tc.Count)
				}
			}

			weak := service.WeakTopics(entries, cfg.CanonicalTopics, cfg.WeakTopicThreshold, maxNotStartedTopics, maxWeakTopics)
			if len(weak) > 0 {
				fmt.Fprintln(out, "\nNeeds attention")
				for _, w := range weak {
					if w.NotStarted {
						fmt.Fprintf(out, "  %-20s not started\n", w.Topic)
					} else {
						fmt.Fprintf(out, "  %-20s %d solved\n", w.Topic, w.Count)
					}
				}
			}

			heatmap := service.Heatmap(entries, cfg.AnalyticsHeatmapDays, now)
			var row strings.Builder
			for _, day := range heatmap {
				row.WriteString(heatmapChar(day.Level))
			}
			fmt.Fprintf(out, "\nLast %d days\n  %s\n", len(heatmap), row.String())

			fmt.Fprintln(out, "\nRecent pace")
			for _, dc := range service.DailyCounts(entries, dailyCountDays, now) {
				fmt.Fprintf(out, "  %s %s %s\n", dc.Date, dc.Label, strings.Repeat("#", dc.Count))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}
