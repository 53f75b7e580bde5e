package studyos

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage daily tasks",
}

var (
	taskName     string
	taskCategory string
	taskPriority string
	taskDate     string
)

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			task, err := service.CreateTask(st, service.CreateTaskInput{
				Name:     taskName,
				Category: taskCategory,
				Priority: taskPriority,
				Date:     taskDate,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task added: %s (%s)\n", task.Name, task.ID)
			return nil
		})
	},
}

var taskListDate string

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			tasks, err := service.ListTasks(st, taskListDate)
			if err != nil {
				return err
			}
			for _, t := range tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s · %s\n", checkboxFor(t.Done), t.ID, t.Name, t.Category, t.Priority)
			}
			return nil
		})
	},
}

var taskUndone bool

var taskToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a task done (or undone with --undone)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.ToggleTask(st, args[0], !taskUndone); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", args[0])
			return nil
		})
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteTask(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		})
	},
}

func init() {
	taskAddCmd.Flags().StringVar(&taskName, "name", "", "Task name")
	taskAddCmd.Flags().StringVar(&taskCategory, "category", "", "Category, e.g. DSA or College")
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", "Medium", "Priority")
	taskAddCmd.Flags().StringVar(&taskDate, "date", "", "YYYY-MM-DD (default today)")

	taskListCmd.Flags().StringVar(&taskListDate, "date", "", "Only tasks for this YYYY-MM-DD")
	taskToggleCmd.Flags().BoolVar(&taskUndone, "undone", false, "Mark as not done instead")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskToggleCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}
