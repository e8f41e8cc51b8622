package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/varunsridharan/quizdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		showCategories, _ := cmd.Flags().GetBool("categories")

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
		results, err := s.ResultRepo().List(ctx, limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No results recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-28s  %-8s  %-7s  %s\n",
			"Finished", "Quiz", "Mode", "Score", "Percent")
		fmt.Println(strings.Repeat("─", 76))

		for _, r := range results {
			title := r.QuizTitle
			if len(title) > 28 {
				title = title[:28]
			}
			fmt.Printf("%-19s  %-28s  %-8s  %3d/%-3d  %3d%%\n",
				r.FinishedAt.Local().Format("2006-01-02 15:04:05"),
				title,
				r.Mode,
				r.Score,
				r.Total,
				r.Percent,
			)

			if showCategories {
				names := make([]string, 0, len(r.Categories))
				for name := range r.Categories {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					stat := r.Categories[name]
					fmt.Printf("    %-24s %d/%d\n", name, stat.Correct, stat.Total)
				}
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show (0 for all)")
	historyCmd.Flags().BoolP("categories", "c", false, "Show per-category breakdown for each result")
}
