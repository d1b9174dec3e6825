package cliconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir is the directory under the user config dir holding the
// global config file.
const GlobalConfigDir = "traktport"

// LocalConfigFileNames are the names searched for local config (in order).
var LocalConfigFileNames = []string{".traktportrc.yaml", ".traktportrc.yml"}

// GlobalConfigFileNames are the names searched for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches the current directory for a local config file.
// Returns empty string if none exists.
func FindLocalConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range GlobalConfigFileNames {
		path := filepath.Join(configDir, GlobalConfigDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// fileConfig is the on-disk form of Config. Pointer fields distinguish a
// key that is absent from one explicitly set to false.
type fileConfig struct {
	OutputDir string `yaml:"outputDir"`
	Pretty    *bool  `yaml:"pretty"`
	Verbose   *bool  `yaml:"verbose"`
	JSON      *bool  `yaml:"json"`
}

// loadConfigFile loads a fileConfig from a YAML file.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load builds the effective configuration from defaults, global and local
// config files, and environment variables. File errors are ignored: a
// broken rc file must not stop a conversion run.
func Load() *Config {
	cfg := Defaults()

	if path := FindGlobalConfig(); path != "" {
		if fileCfg, err := loadConfigFile(path); err == nil {
			merge(cfg, fileCfg, SourceGlobal)
		}
	}
	if path := FindLocalConfig(); path != "" {
		if fileCfg, err := loadConfigFile(path); err == nil {
			merge(cfg, fileCfg, SourceLocal)
		}
	}
	applyEnv(cfg)
	return cfg
}
