// Package config loads filewise settings from defaults, config files
// and the environment, in that order of precedence.
//
// Config files are looked up as .filewise.toml or .filewise.yaml in
// the working directory, then in the XDG config directory. Environment
// variables use the FILEWISE_ prefix (FILEWISE_OUTPUT, FILEWISE_EXCLUDE_DIRS, ...).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/arthur-debert/filewise/pkg/utils"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Config file names, tried in order
const (
	FileNameTOML = ".filewise.toml"
	FileNameYAML = ".filewise.yaml"
)

// Config holds the user-tunable defaults applied by the CLI
type Config struct {
	// ExcludeDirs are substrings that drop matching candidate paths
	// from every search.
	ExcludeDirs []string `toml:"exclude_dirs"`

	// SkipExtensions are omitted from `filewise items` extension listings.
	SkipExtensions []string `toml:"skip_extensions"`

	// IgnoreCase makes glob and whole-word matching case-insensitive.
	IgnoreCase bool `toml:"ignore_case"`

	// Output selects the default render format: text, json, yaml or xml.
	Output string `toml:"output"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Output: "text",
	}
}

// DefaultTOML renders the built-in configuration as a TOML document,
// used by the gen-config command.
func DefaultTOML() (string, error) {
	out, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}
	return string(out), nil
}

// Load reads configuration with defaults < config file < environment
// precedence. A missing config file is not an error.
func Load() (Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"exclude_dirs":    def.ExcludeDirs,
		"skip_extensions": def.SkipExtensions,
		"ignore_case":     def.IgnoreCase,
		"output":          def.Output,
	}, "."), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path, parser := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file %s", path)
		}
	}

	if err := k.Load(env.Provider("FILEWISE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FILEWISE_"))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// Pattern and exclusion lists may arrive as a single string, a
	// comma-separated string (environment) or a nested list (config
	// file). Normalize once, here at the boundary.
	cfg := Config{
		ExcludeDirs:    utils.SplitList(utils.Flatten(k.Get("exclude_dirs"))),
		SkipExtensions: utils.SplitList(utils.Flatten(k.Get("skip_extensions"))),
		IgnoreCase:     k.Bool("ignore_case"),
		Output:         k.String("output"),
	}
	return cfg, nil
}

// findConfigFile returns the first config file present and its parser
func findConfigFile() (string, koanf.Parser) {
	dirs := []string{"."}
	dirs = append(dirs, filepath.Join(xdg.ConfigHome, "filewise"))

	for _, dir := range dirs {
		for _, name := range []string{FileNameTOML, FileNameYAML} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				if strings.HasSuffix(name, ".yaml") {
					return path, yaml.Parser()
				}
				return path, toml.Parser()
			}
		}
	}
	return "", nil
}
