package studyos

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
	"github.com/studyos/studyos/internal/timer"
	"github.com/studyos/studyos/internal/tui"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Run the interactive focus timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPomodoroTimer()
	},
}

var pomodoroStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the interactive focus timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPomodoroTimer()
	},
}

func runPomodoroTimer() error {
	cfg := loadConfig()
	return withStore(func(st *store.Store) error {
		engine := timer.New(service.SessionRecorder{Store: st})
		if err := engine.Configure(cfg.FocusMinutes, timer.Focus); err != nil {
			return err
		}
		model := tui.NewModel(engine, cfg.FocusMinutes, cfg.BreakMinutes)
		final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("run timer: %w", err)
		}
		if m, ok := final.(tui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	})
}

var pomodoroHistoryLimit int

var pomodoroHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent focus sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			sessions, err := service.RecentSessions(st, pomodoroHistoryLimit)
			if err != nil {
				return err
			}
			count, total, err := service.SessionStats(st)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Date\tLabel\tMinutes")
			for _, s := range sessions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", s.Date, s.Label, s.DurationMinutes)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d sessions, %d focus minutes\n", count, total)
			return nil
		})
	},
}

var (
	pomodoroLogLabel   string
	pomodoroLogMinutes int
)

var pomodoroLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a focus session done away from the timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			session, err := service.RecordFocusSession(st, pomodoroLogLabel, pomodoroLogMinutes, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged: %s (%dm)\n", session.Label, session.DurationMinutes)
			return nil
		})
	},
}

func init() {
	pomodoroHistoryCmd.Flags().IntVar(&pomodoroHistoryLimit, "limit", 20, "Maximum sessions to show")
	pomodoroLogCmd.Flags().StringVar(&pomodoroLogLabel, "label", "", "Session label")
	pomodoroLogCmd.Flags().IntVar(&pomodoroLogMinutes, "minutes", 25, "Session length in minutes")

	pomodoroCmd.AddCommand(pomodoroStartCmd)
	pomodoroCmd.AddCommand(pomodoroHistoryCmd)
	pomodoroCmd.AddCommand(pomodoroLogCmd)
	rootCmd.AddCommand(pomodoroCmd)
}
