package studyos

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals and track their progress",
}

var (
	goalTitle    string
	goalType     string
	goalTarget   int
	goalDeadline string
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			goal, err := service.CreateGoal(st, service.CreateGoalInput{
				Title:    goalTitle,
				Type:     goalType,
				Target:   goalTarget,
				Deadline: goalDeadline,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal created: %s (%s)\n", goal.Title, goal.ID)
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with computed progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			progress, err := service.EvaluateGoals(st, time.Now())
			if err != nil {
				return err
			}
			if len(progress) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTitle\tType\tProgress\tStatus")
			for _, p := range progress {
				status := "in progress"
				if p.Complete {
					status = "complete"
				} else if p.DaysLeft != nil {
					status = fmt.Sprintf("%d days left", *p.DaysLeft)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d/%d (%d%%)\t%s\n",
					p.Goal.ID, p.Goal.Title, p.Goal.Type, p.Current, p.Goal.Target, p.Percent, status)
			}
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteGoal(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed goal %s\n", args[0])
			return nil
		})
	},
}

var goalIncrementCmd = &cobra.Command{
	Use:   "increment <id>",
	Short: "Bump a custom goal's counter by one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.IncrementGoal(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Incremented goal %s\n", args[0])
			return nil
		})
	},
}

func init() {
	goalAddCmd.Flags().StringVar(&goalTitle, "title", "", "Goal title")
	goalAddCmd.Flags().StringVar(&goalType, "type", "", "Goal type: dsa, study, pomodoro or custom")
	goalAddCmd.Flags().IntVar(&goalTarget, "target", 0, "Target value to reach")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "Deadline YYYY-MM-DD")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	goalCmd.AddCommand(goalIncrementCmd)
	rootCmd.AddCommand(goalCmd)
}
