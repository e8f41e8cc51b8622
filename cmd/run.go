package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varunsridharan/quizdeck/internal/app"
	"github.com/varunsridharan/quizdeck/internal/store"
)

const defaultDataPath = "data.json"

// resolveDataPath returns the quiz pack path using --data flag (highest
// priority), then QUIZDECK_DATA env var, then data.json in the working
// directory.
func resolveDataPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	if p := os.Getenv("QUIZDECK_DATA"); p != "" {
		return p
	}
	return defaultDataPath
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		DataPath: resolveDataPath(cmd),
		Progress: st.ProgressRepo(),
		Prefs:    st.PrefRepo(),
		Results:  st.ResultRepo(),
	})
}
