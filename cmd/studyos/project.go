package studyos

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/service"
	"github.com/studyos/studyos/internal/store"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects and their milestones",
}

var (
	projectName  string
	projectDesc  string
	projectStart string
	projectEnd   string
)

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			project, err := service.CreateProject(st, service.CreateProjectInput{
				Name:        projectName,
				Description: projectDesc,
				StartDate:   projectStart,
				EndDate:     projectEnd,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project created: %s (%s)\n", project.Name, project.ID)
			return nil
		})
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with milestone progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			projects, err := service.ListProjects(st)
			if err != nil {
				return err
			}
			for _, p := range projects {
				end := p.EndDate
				if end == "" {
					end = "Open"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d%%\t%s → %s\t%d/%d milestones\n",
					p.ID, p.Name, p.ProgressPct, p.StartDate, end, service.MilestonesDone(p), len(p.Milestones))
				for _, m := range p.Milestones {
					line := fmt.Sprintf("  %s %s\t%s", checkboxFor(m.Done), m.ID, m.Name)
					if m.Deadline != "" {
						line += "\tdue " + m.Deadline
					}
					if m.Blockers != "" {
						line += "\tblockers: " + m.Blockers
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		})
	},
}

var projectDeleteYes bool

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a project and all its milestones",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, projectDeleteYes, "Remove this project and all its milestones?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
		return withStore(func(st *store.Store) error {
			if err := service.DeleteProject(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", args[0])
			return nil
		})
	},
}

var projectProgressCmd = &cobra.Command{
	Use:   "progress <id> <percent>",
	Short: "Set a project's completion percentage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pct, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid percent %q", args[1])
		}
		return withStore(func(st *store.Store) error {
			if err := service.SetProjectProgress(st, args[0], pct); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated progress for project %s\n", args[0])
			return nil
		})
	},
}

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage milestones inside a project",
}

var (
	milestoneProjectID string
	milestoneName      string
	milestoneDeadline  string
	milestoneBlockers  string
)

var milestoneAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a milestone to a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			milestone, err := service.AddMilestone(st, service.AddMilestoneInput{
				ProjectID: milestoneProjectID,
				Name:      milestoneName,
				Deadline:  milestoneDeadline,
				Blockers:  milestoneBlockers,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Milestone added: %s (%s)\n", milestone.Name, milestone.ID)
			return nil
		})
	},
}

var milestoneUndone bool

var milestoneToggleCmd = &cobra.Command{
	Use:   "toggle <milestone-id>",
	Short: "Mark a milestone done (or undone with --undone)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.ToggleMilestone(st, milestoneProjectID, args[0], !milestoneUndone); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated milestone %s\n", args[0])
			return nil
		})
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectName, "name", "", "Project name")
	projectAddCmd.Flags().StringVar(&projectDesc, "desc", "", "Description")
	projectAddCmd.Flags().StringVar(&projectStart, "start", "", "Start date YYYY-MM-DD")
	projectAddCmd.Flags().StringVar(&projectEnd, "end", "", "End date YYYY-MM-DD")
	projectDeleteCmd.Flags().BoolVarP(&projectDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	milestoneCmd.PersistentFlags().StringVar(&milestoneProjectID, "project", "", "Owning project id")
	milestoneAddCmd.Flags().StringVar(&milestoneName, "name", "", "Milestone name")
	milestoneAddCmd.Flags().StringVar(&milestoneDeadline, "deadline", "", "Deadline YYYY-MM-DD")
	milestoneAddCmd.Flags().StringVar(&milestoneBlockers, "blockers", "", "Known blockers, free text")
	milestoneToggleCmd.Flags().BoolVar(&milestoneUndone, "undone", false, "Mark as not done instead")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectProgressCmd)
	milestoneCmd.AddCommand(milestoneAddCmd)
	milestoneCmd.AddCommand(milestoneToggleCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(milestoneCmd)
}
