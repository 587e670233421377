package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	errs "github.com/frontkit/js-imports-order/pkg/errors"
	"github.com/frontkit/js-imports-order/pkg/utils"
)

// configNames are the recognized config file names, in lookup order.
var configNames = []string{"jio.yaml", "jio.yml", ".jio.yaml"}

// maxUpwardSearchLevels limits how far up the directory tree to search for
// config files.
const maxUpwardSearchLevels = 10

// Load builds the effective configuration: defaults, then the config file
// (explicit path, or discovered upward from startPath), then any changed
// flags. flags may be nil.
func Load(explicit, startPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	err := k.Load(confmap.Provider(map[string]interface{}{
		"extensions": defaults.Extensions,
		"exclude":    defaults.Exclude,
		"fix":        defaults.Fix,
		"color":      defaults.Color,
		"watch":      defaults.Watch,
		"verbose":    defaults.Verbose,
	}, "."), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToLoadConfig, err)
	}

	if cfgFile := findConfigFile(explicit, startPath); cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%s %s: %w", errs.ErrMsgFailedToParseConfig, cfgFile, err)
		}
	}

	if flags != nil {
		// Changed flags win; unchanged flag defaults keep whatever the
		// file or defaults already set.
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToLoadConfig, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", errs.ErrMsgFailedToParseConfig, err)
	}
	return &cfg, nil
}

// findConfigFile finds the config file to use. An explicit path always
// wins; otherwise the directory of startPath and its ancestors are
// searched, stopping at the enclosing package.json project root.
func findConfigFile(explicit, startPath string) string {
	if explicit != "" {
		return explicit
	}

	dir := startPath
	if abs, err := filepath.Abs(startPath); err == nil {
		dir = abs
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	projectRoot := utils.FindProjectRoot(dir)

	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}

		if dir == projectRoot {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}
