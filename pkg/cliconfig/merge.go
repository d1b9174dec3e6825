package cliconfig

import "os"

// merge overlays values present in a config file onto the effective
// config, recording the source. Pointer fields distinguish "absent" from
// an explicit false.
func merge(dst *Config, src *fileConfig, source string) {
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
		dst.Sources["outputDir"] = source
	}
	if src.Pretty != nil {
		dst.Pretty = *src.Pretty
		dst.Sources["pretty"] = source
	}
	if src.Verbose != nil {
		dst.Verbose = *src.Verbose
		dst.Sources["verbose"] = source
	}
	if src.JSON != nil {
		dst.JSON = *src.JSON
		dst.Sources["json"] = source
	}
}

// applyEnv overlays TRAKTPORT_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TRAKTPORT_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
		cfg.Sources["outputDir"] = SourceEnv
	}
	if v := os.Getenv("TRAKTPORT_PRETTY"); v != "" {
		cfg.Pretty = v == "1" || v == "true"
		cfg.Sources["pretty"] = SourceEnv
	}
	if v := os.Getenv("TRAKTPORT_VERBOSE"); v != "" {
		cfg.Verbose = v == "1" || v == "true"
		cfg.Sources["verbose"] = SourceEnv
	}
}
