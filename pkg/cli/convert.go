package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/traktport/traktport/pkg/convert"
	"github.com/traktport/traktport/pkg/schema"
)

var (
	convertFormat string
	convertCheck  bool
	convertPretty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.json> [output.json]",
	Short: "Convert a Trakt export file to the import format",
	Long: `Convert a Trakt export file to the import format.

The export shape (history, watched-movies, watched-shows) is detected from
the file's structure, never from its name. When the output path is omitted
a descriptive name is derived from the detected shape:
history_import.json, movies_import.json, or shows_import.json.

Identifier preference per record: imdb > tmdb > tvdb > trakt. Records
without any usable identifier are skipped; a file yielding zero records
fails rather than writing an empty import file.

Examples:
  # Convert with auto-detection
  traktport convert history-1.json

  # Convert to an explicit output path
  traktport convert watched-movies.json movies.json

  # Force the shape of an empty export
  traktport convert empty.json -f watched-shows

  # Validate the result against the import schema while converting
  traktport convert history-1.json --check`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := ""
		if len(args) > 1 {
			output = args[1]
		}
		return runConvert(convertParams{
			input:     args[0],
			output:    output,
			format:    convertFormat,
			check:     convertCheck,
			prettySet: cmd.Flags().Changed("pretty"),
			pretty:    convertPretty,
		})
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Force export format: history, watched-movies, watched-shows (auto-detected if omitted)")
	convertCmd.Flags().BoolVar(&convertCheck, "check", false, "Validate the output against the import schema before writing")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", true, "Indent the output JSON")
	rootCmd.AddCommand(convertCmd)
}

// convertParams carries one conversion invocation.
type convertParams struct {
	input  string
	output string
	format string
	check  bool

	// pretty applies only when prettySet marks the flag as given on the
	// command line; otherwise the config value wins.
	prettySet bool
	pretty    bool
}

// convertSummary is the machine-readable result of a conversion run.
type convertSummary struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Format    string `json:"format"`
	Converted int    `json:"converted"`
	Skipped   int    `json:"skipped"`
}

// runConvert executes the full pipeline: load, detect, normalize, write.
func runConvert(p convertParams) error {
	cfg := effectiveConfig()
	logger := newLogger(cfg)

	var format convert.Format
	if p.format != "" {
		format = convert.ParseFormat(p.format)
		if format == convert.FormatUnknown {
			return fmt.Errorf("unknown format: %s (supported: history, watched-movies, watched-shows)", p.format)
		}
	}

	items, err := convert.LoadFile(p.input)
	if err != nil {
		return userError(err)
	}

	result, err := convert.Convert(items, &convert.Options{
		Format:   format,
		Filename: filepath.Base(p.input),
		Logger:   logger,
	})
	if err != nil {
		return userError(err)
	}

	output := p.output
	if output == "" {
		output = filepath.Join(cfg.OutputDir, convert.DefaultOutputName(result.Format))
	}

	pretty := cfg.Pretty
	if p.prettySet {
		pretty = p.pretty
	}

	if p.check {
		data, err := convert.Marshal(result.Entries, pretty)
		if err != nil {
			return fmt.Errorf("failed to serialize output: %w", err)
		}
		if err := schema.Validate(data); err != nil {
			return err
		}
	}
	if err := convert.WriteFile(output, result.Entries, pretty); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	summary := convertSummary{
		Input:     p.input,
		Output:    output,
		Format:    result.Format.String(),
		Converted: len(result.Entries),
		Skipped:   result.Skipped,
	}
	printResult(cfg, summary, func() {
		fmt.Printf("Detected format: %s\n", summary.Format)
		if summary.Skipped > 0 {
			fmt.Printf("Skipped %d items (no valid IDs found)\n", summary.Skipped)
		}
		fmt.Printf("Converted %d items\n", summary.Converted)
		fmt.Printf("Output saved as: %s\n", summary.Output)
	})
	return nil
}
