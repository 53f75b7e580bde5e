package studyos

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studyos/studyos/internal/app"
	"github.com/studyos/studyos/internal/config"
	"github.com/studyos/studyos/internal/store"
)

func resolveStorePath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	return app.DefaultStorePath()
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	st.OnCorrupt = func(collection string, err error) {
		fmt.Fprintf(os.Stderr, "warning: collection %q is corrupt, starting from empty: %v\n", collection, err)
	}
	return run(st)
}

func loadConfig() config.Config {
	path, err := app.DefaultConfigPath()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		return config.Default()
	}
	return cfg
}

// confirm gates destructive operations. Anything but y/yes aborts.
func confirm(cmd *cobra.Command, assumeYes bool, prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func heatmapChar(level int) string {
	switch level {
	case 0:
		return "·"
	case 1:
		return "░"
	case 2:
		return "▒"
	case 3:
		return "▓"
	default:
		return "█"
	}
}

func checkboxFor(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
