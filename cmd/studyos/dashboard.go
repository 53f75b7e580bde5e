package studyos

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's summary across every tracker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return withStore(func(st *store.Store) error {
			summary, err := service.BuildDashboard(st, time.Now(), cfg.DashboardHeatmapDays, cfg.DeadlineLimit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dashboard for %s\n\n", summary.Date)
			fmt.Fprintf(out, "Practice: %d today, %d total, %d day streak\n",
				summary.TodayPractice, summary.TotalPractice, summary.Streak)
			fmt.Fprintf(out, "Focus: %d sessions, %d minutes today\n",
				summary.SessionsToday, summary.FocusMinutesToday)

			if len(summary.TasksToday) > 0 {
				fmt.Fprintf(out, "\nTasks (%d/%d done)\n", summary.TasksDoneToday, len(summary.TasksToday))
				for _, t := range summary.TasksToday {
					fmt.Fprintf(out, "  %s %s [%s/%s]\n", checkboxFor(t.Done), t.Name, t.Category, t.Priority)
				}
			}

			if len(summary.Deadlines) > 0 {
				fmt.Fprintln(out, "\nUpcoming deadlines")
				for _, d := range summary.Deadlines {
					fmt.Fprintf(out, "  %-10s %s\t%s\t%d days (%s)\n", d.Type, d.Date, d.Name, d.DaysLeft, d.Urgency)
				}
			}

			if len(summary.Heatmap) > 0 {
				var row strings.Builder
				for _, day := range summary.Heatmap {
					row.WriteString(heatmapChar(day.Level))
				}
				fmt.Fprintf(out, "\nLast %d days\n  %s\n", len(summary.Heatmap), row.String())
			}

			if len(summary.Subjects) > 0 {
				fmt.Fprintln(out, "\nSubjects")
				for _, s := range summary.Subjects {
					exam := ""
					if s.Subject.ExamDate != "" {
						exam = "\texam " + s.Subject.ExamDate
					}
					fmt.Fprintf(out, "  %s\t%d/%d units\t%d%%%s\n",
						s.Subject.Name, s.Done, len(s.Subject.Units), s.Progress, exam)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
