package studyos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage syllabus subjects",
}

var (
	subjectName     string
	subjectExamDate string
	subjectColor    string
)

var subjectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			subject, err := service.CreateSubject(st, service.CreateSubjectInput{
				Name:     subjectName,
				ExamDate: subjectExamDate,
				Color:    subjectColor,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added subject: %s (%s)\n", subject.Name, subject.ID)
			return nil
		})
	},
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects with unit progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			subjects, err := service.ListSubjects(st)
			if err != nil {
				return err
			}
			for _, s := range subjects {
				line := fmt.Sprintf("%s\t%s\t%d%%", s.ID, s.Name, service.SubjectProgress(s))
				if s.ExamDate != "" {
					line += "\texam " + s.ExamDate
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				for _, u := range s.Units {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\t%s\trevisions: %d\n", u.ID, u.Name, u.Status, u.RevisionCount)
				}
			}
			return nil
		})
	},
}

var subjectDeleteYes bool

var subjectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a subject and all its units",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, subjectDeleteYes, "Remove this subject and all its units?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
		return withStore(func(st *store.Store) error {
			if err := service.DeleteSubject(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed subject %s\n", args[0])
			return nil
		})
	},
}

var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Manage units inside a subject",
}

var (
	unitSubjectID string
	unitName      string
	unitTopics    string
)

var unitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a unit to a subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			unit, err := service.AddUnit(st, service.AddUnitInput{
				SubjectID: unitSubjectID,
				Name:      unitName,
				Topics:    unitTopics,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unit added: %s (%s)\n", unit.Name, unit.ID)
			return nil
		})
	},
}

var unitStatusValue string

var unitStatusCmd = &cobra.Command{
	Use:   "status <unit-id>",
	Short: "Set a unit's status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.UpdateUnitStatus(st, unitSubjectID, args[0], unitStatusValue); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unit %s is now %s\n", args[0], unitStatusValue)
			return nil
		})
	},
}

var unitReviseCmd = &cobra.Command{
	Use:   "revise <unit-id>",
	Short: "Mark one more revision of a unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.MarkRevision(st, unitSubjectID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Revision marked for unit %s\n", args[0])
			return nil
		})
	},
}

func init() {
	subjectAddCmd.Flags().StringVar(&subjectName, "name", "", "Subject name")
	subjectAddCmd.Flags().StringVar(&subjectExamDate, "exam", "", "Exam date YYYY-MM-DD")
	subjectAddCmd.Flags().StringVar(&subjectColor, "color", "", "Accent color, e.g. #7c6aff")
	subjectDeleteCmd.Flags().BoolVarP(&subjectDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	unitCmd.PersistentFlags().StringVar(&unitSubjectID, "subject", "", "Owning subject id")
	unitAddCmd.Flags().StringVar(&unitName, "name", "", "Unit name")
	unitAddCmd.Flags().StringVar(&unitTopics, "topics", "", "Topics covered, free text")
	unitStatusCmd.Flags().StringVar(&unitStatusValue, "set", "", "Not Started, In Progress or Completed")

	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectListCmd)
	subjectCmd.AddCommand(subjectDeleteCmd)
	unitCmd.AddCommand(unitAddCmd)
	unitCmd.AddCommand(unitStatusCmd)
	unitCmd.AddCommand(unitReviseCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(unitCmd)
}
