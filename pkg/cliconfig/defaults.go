package cliconfig

// Defaults returns the built-in configuration values.
func Defaults() *Config {
	return &Config{
		Pretty: true,
		Sources: map[string]string{
			"outputDir": SourceDefault,
			"pretty":    SourceDefault,
			"verbose":   SourceDefault,
			"json":      SourceDefault,
		},
	}
}
