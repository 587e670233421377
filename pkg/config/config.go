// Package config provides configuration management for the jio CLI.
// Settings come from defaults, an optional jio.yaml file discovered near
// the target, and command-line flags, in increasing priority.
package config

import "github.com/frontkit/js-imports-order/pkg/utils"

// Config holds all CLI configuration options.
type Config struct {
	Extensions []string `koanf:"extensions"` // source extensions to lint
	Exclude    []string `koanf:"exclude"`    // extra directory names to skip
	Fix        bool     `koanf:"fix"`        // rewrite files in place
	Color      bool     `koanf:"color"`      // colored diagnostic output
	Watch      bool     `koanf:"watch"`      // re-run on file changes
	Verbose    bool     `koanf:"verbose"`    // debug logging
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Extensions: utils.DefaultExtensions,
		Color:      true,
	}
}
