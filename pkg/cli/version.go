package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := effectiveConfig()

		type versionInfo struct {
			Version   string `json:"version"`
			Commit    string `json:"commit"`
			BuildDate string `json:"buildDate"`
		}
		info := versionInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}
		printResult(cfg, info, func() {
			fmt.Printf("traktport %s (commit %s, built %s)\n", info.Version, info.Commit, info.BuildDate)
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
