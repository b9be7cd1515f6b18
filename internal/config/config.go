// Package config loads settings for the wbwtc command-line tool from an
// optional YAML file, with command-line flags taking
// precedence over the file and built-in defaults taking precedence over
// neither. Nothing in the core wbwt codec reads this package: it exists
// purely to configure the CLI wrapper around Compress/Decompress, which
// is a separate concern from the codec itself (see DESIGN.md for the
// library grounding).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable defaults for the CLI tools. Zero values mean
// "use the built-in default" so that an absent or partial config file
// never clobbers a flag the user didn't set in it.
type Config struct {
	// MaxInputChars bounds Compress's input length; 0 means
	// DefaultMaxInputChars.
	MaxInputChars int `yaml:"maxInputChars"`

	// Format names the payload format the embedding layer chose (always
	// "wbwt" today). Kept as a config field, not a CLI flag, so a future
	// sibling payload format can be selected here without a flag-parsing
	// change; no codec in this module reads anything but "wbwt" yet.
	Format string `yaml:"format"`

	// LogLevel is a zerolog level name: "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel"`
}

// DefaultMaxInputChars is the reference embedding size bound.
const DefaultMaxInputChars = 20000

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		MaxInputChars: DefaultMaxInputChars,
		Format:        "wbwt",
		LogLevel:      "info",
	}
}

// Load reads and parses a YAML config file, overlaying it onto Default().
// A missing path is not an error: it returns Default() unchanged, since the
// config file itself is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return Config{}, err
	}
	cfg.applyOverrides(fileCfg)
	return cfg, nil
}

func (c *Config) applyOverrides(o Config) {
	if o.MaxInputChars != 0 {
		c.MaxInputChars = o.MaxInputChars
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}
