// Package cliconfig provides configuration types and loading for the
// traktport CLI.
package cliconfig

// Config represents the complete configuration for the traktport CLI.
// Values can come from multiple sources with the following precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (TRAKTPORT_*)
//  3. Local config file (.traktportrc.yaml in current directory)
//  4. Global config file (~/.config/traktport/config.yaml)
//  5. Default values (lowest priority)
type Config struct {
	// OutputDir is prepended to derived default output filenames.
	OutputDir string `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`

	// Pretty controls indented JSON output.
	Pretty bool `yaml:"pretty" json:"pretty"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// JSON makes command summaries machine-readable.
	JSON bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from (for debugging).
	Sources map[string]string `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
)
