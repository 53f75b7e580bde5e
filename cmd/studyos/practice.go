package studyos

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Manage the coding practice log",
}

var (
	practicePlatform   string
	practiceName       string
	practiceTopic      string
	practiceDifficulty string
	practiceTime       int
	practiceDate       string
	practiceStatus     string
	practiceNotes      string
)

var practiceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a solved problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			entry, err := service.CreatePracticeEntry(st, service.CreatePracticeInput{
				Platform:    practicePlatform,
				Name:        practiceName,
				Topic:       practiceTopic,
				Difficulty:  practiceDifficulty,
				TimeMinutes: practiceTime,
				Date:        practiceDate,
				Status:      practiceStatus,
				Notes:       practiceNotes,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged: %s (%s)\n", entry.Name, entry.ID)
			return nil
		})
	},
}

var (
	practiceFilterTopic      string
	practiceFilterDifficulty string
	practiceFilterDate       string
)

var practiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged problems, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			entries, err := service.ListPracticeEntries(st, service.ListPracticeFilter{
				Topic:      practiceFilterTopic,
				Difficulty: practiceFilterDifficulty,
				Date:       practiceFilterDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tPLATFORM\tNAME\tTOPIC\tDIFF\tTIME\tSTATUS")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%s\t%dm\t%s\n",
					e.ID, e.Date, e.Platform, e.Name, e.Topic, e.Difficulty, e.TimeMinutes, e.Status)
			}
			return nil
		})
	},
}

var practiceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a logged problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeletePracticeEntry(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed practice entry %s\n", args[0])
			return nil
		})
	},
}

var practiceTopicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List distinct topics in the log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			topics, err := service.PracticeTopics(st)
			if err != nil {
				return err
			}
			for _, topic := range topics {
				fmt.Fprintln(cmd.OutOrStdout(), topic)
			}
			return nil
		})
	},
}

func init() {
	practiceAddCmd.Flags().StringVar(&practicePlatform, "platform", "LeetCode", "Platform the problem is from")
	practiceAddCmd.Flags().StringVar(&practiceName, "name", "", "Problem name")
	practiceAddCmd.Flags().StringVar(&practiceTopic, "topic", "", "Topic, e.g. Graph")
	practiceAddCmd.Flags().StringVar(&practiceDifficulty, "difficulty", "", "Easy, Medium or Hard")
	practiceAddCmd.Flags().IntVar(&practiceTime, "time", 0, "Minutes spent")
	practiceAddCmd.Flags().StringVar(&practiceDate, "date", "", "YYYY-MM-DD (default today)")
	practiceAddCmd.Flags().StringVar(&practiceStatus, "status", "", "Solved, Revisit or Attempted (default Solved)")
	practiceAddCmd.Flags().StringVar(&practiceNotes, "notes", "", "Free-form notes")

	practiceListCmd.Flags().StringVar(&practiceFilterTopic, "topic", "", "Filter by topic")
	practiceListCmd.Flags().StringVar(&practiceFilterDifficulty, "difficulty", "", "Filter by difficulty")
	practiceListCmd.Flags().StringVar(&practiceFilterDate, "date", "", "Filter by YYYY-MM-DD")

	practiceCmd.AddCommand(practiceAddCmd)
	practiceCmd.AddCommand(practiceListCmd)
	practiceCmd.AddCommand(practiceDeleteCmd)
	practiceCmd.AddCommand(practiceTopicsCmd)
	rootCmd.AddCommand(practiceCmd)
}
