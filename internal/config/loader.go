package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Load reads the configuration.
// Search order: customPath -> ~/.mad-life/config.yaml -> ./configs/life.yaml -> embedded default.
// Files only need to name the keys they change; everything else keeps its
// default value.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), errors.Wrapf(err, "[Load] failed to read file: %s", customPath)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return parse(data, userPath)
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "life.yaml")); err == nil {
		return parse(data, "configs/life.yaml")
	}

	cfg, err := parse(defaultYAML, "embedded defaults")
	if err != nil {
		return DefaultConfig(), nil // fall back to hardcoded defaults
	}
	return cfg, nil
}

func parse(data []byte, source string) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[Load] failed to parse %s", source)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mad-life", filename)
}
