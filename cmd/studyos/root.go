package studyos

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "studyos",
	Short: "studyos tracks your study life from the terminal",
	Long:  "studyos is a local-first study dashboard: coding practice log, syllabus tracker, projects and milestones, pomodoro timer, and goals.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the data file")
}
