package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varunsridharan/quizdeck/internal/llm"
	"github.com/varunsridharan/quizdeck/internal/packgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a quiz pack with an LLM",
	Long: `Generate a quiz pack on the given topic using an LLM provider.

Set one of ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY. Use
QUIZDECK_LLM_PROVIDER to pick a provider explicitly when several keys
are set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		out, _ := cmd.Flags().GetString("out")
		author, _ := cmd.Flags().GetString("author")
		categories, _ := cmd.Flags().GetStringSlice("categories")

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Generating %d questions on %q with %s...\n",
			count, args[0], provider.ModelID())

		gen := packgen.New(provider, packgen.DefaultConfig())
		pack, err := gen.Generate(ctx, packgen.Input{
			Topic:      args[0],
			Count:      count,
			Categories: categories,
			Author:     author,
		})
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(pack, "", "  ")
		if err != nil {
			return fmt.Errorf("encode pack: %w", err)
		}
		data = append(data, '\n')

		if out == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}

		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Printf("Wrote %q (%d questions) to %s\n", pack.Title, pack.Len(), out)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 10, "Number of questions to generate")
	generateCmd.Flags().StringP("out", "o", "data.json", "Output file (- for stdout)")
	generateCmd.Flags().String("author", "", "Author recorded in the pack")
	generateCmd.Flags().StringSlice("categories", nil, "Restrict category labels to this list")
}
