package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varunsridharan/quizdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved progress and the mode preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if err := s.ProgressRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		if err := s.PrefRepo().SetMode(ctx, ""); err != nil {
			return fmt.Errorf("clear mode preference: %w", err)
		}

		fmt.Println("Saved progress and mode preference cleared.")
		return nil
	},
}
