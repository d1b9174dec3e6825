package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/traktport/traktport/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <import-file.json>",
	Short: "Check a converted file against the import schema",
	Long: `Check a converted file against the import schema.

Each entry must carry exactly one identifier field (imdb_id, tmdb_id,
tvdb_id, or trakt_id), a type of movie/show/episode, and only the optional
watch, watchlist, and rating fields the import endpoint accepts.

Examples:
  traktport validate movies_import.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := effectiveConfig()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("File not found: %s", args[0])
		}
		if err := schema.Validate(data); err != nil {
			return err
		}

		type validateSummary struct {
			Input string `json:"input"`
			Valid bool   `json:"valid"`
		}
		printResult(cfg, validateSummary{Input: args[0], Valid: true}, func() {
			fmt.Printf("%s is a valid import file\n", args[0])
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
