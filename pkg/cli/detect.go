package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/traktport/traktport/pkg/convert"
)

var detectCmd = &cobra.Command{
	Use:   "detect <input.json>",
	Short: "Detect the export shape of a file without converting it",
	Long: `Detect the export shape of a file without converting it.

Detection is structural: the parsed document's container type and
characteristic keys decide the shape, not the filename. The filename stem
is consulted only for empty arrays, which carry no structure to inspect.

Examples:
  # Print the detected shape
  traktport detect history-1.json

  # Machine-readable result
  traktport detect watched-movies.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := effectiveConfig()

		items, err := convert.LoadFile(args[0])
		if err != nil {
			return userError(err)
		}

		format := convert.DetectFormat(items, filepath.Base(args[0]))
		if format == convert.FormatUnknown {
			return errors.New("No valid items found")
		}

		type detectSummary struct {
			Input  string `json:"input"`
			Format string `json:"format"`
			Items  int    `json:"items"`
		}
		summary := detectSummary{Input: args[0], Format: format.String(), Items: len(items)}
		printResult(cfg, summary, func() {
			fmt.Printf("Detected format: %s (%d items)\n", summary.Format, summary.Items)
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
