package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varunsridharan/quizdeck/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a quiz pack file against the pack schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDataPath(cmd)
		if len(args) == 1 {
			path = args[0]
		}

		pack, err := quiz.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Printf("%s: OK (%q, %d questions)\n", path, pack.Title, pack.Len())
		return nil
	},
}
