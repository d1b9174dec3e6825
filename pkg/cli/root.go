// Package cli implements the traktport command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/traktport/traktport/pkg/cliconfig"
	"github.com/traktport/traktport/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool
	verbose    bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command. Invoking traktport with a file
// argument converts it directly, so the documented usage
// `traktport <input.json> [output.json]` works without naming a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "traktport [input.json] [output.json]",
	Short: "traktport converts Trakt export files to the import format",
	Long: `traktport converts Trakt export files (history, watched-movies,
watched-shows) into the JSON array accepted by Trakt's import feature.

The export shape is detected from the file's structure. Records are
normalized one-to-one; entries without any usable external identifier
(imdb, tmdb, tvdb, trakt) are skipped.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true, // errors are handled in Execute()
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (RunE -> runConvert -> effectiveConfig -> rootCmd).
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		output := ""
		if len(args) > 1 {
			output = args[1]
		}
		return runConvert(convertParams{input: args[0], output: output})
	}
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// effectiveConfig merges the config-file layer with the persistent flags.
// Flags win only when set on the command line.
func effectiveConfig() *cliconfig.Config {
	cfg := cliconfig.Load()
	if rootCmd.PersistentFlags().Changed("json") {
		cfg.JSON = jsonOutput
	}
	if rootCmd.PersistentFlags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	return cfg
}

// newLogger builds the run logger from the effective config.
func newLogger(cfg *cliconfig.Config) *slog.Logger {
	if cfg.Verbose {
		return logging.NewWithLevel(logging.LevelDebug)
	}
	return logging.Nop()
}
