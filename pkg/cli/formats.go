package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traktport/traktport/pkg/convert"
)

// formatDescriptions gives the one-line help per export shape.
var formatDescriptions = map[convert.Format]string{
	convert.FormatHistory:       "Per-watch history entries (movies, shows, episodes) with timestamps",
	convert.FormatWatchedMovies: "Aggregated watched movies with last-watched timestamps",
	convert.FormatWatchedShows:  "Aggregated watched shows with per-season play counts",
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported export formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := effectiveConfig()

		type formatInfo struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			OutputName  string `json:"outputName"`
		}
		infos := make([]formatInfo, 0, len(convert.AllFormats()))
		for _, f := range convert.AllFormats() {
			infos = append(infos, formatInfo{
				Name:        f.String(),
				Description: formatDescriptions[f],
				OutputName:  convert.DefaultOutputName(f),
			})
		}
		printResult(cfg, infos, func() {
			for _, info := range infos {
				fmt.Printf("  %-16s %s (default output: %s)\n", info.Name, info.Description, info.OutputName)
			}
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
