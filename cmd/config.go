package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/they4kman/spoilersweep/game"
	"gopkg.in/yaml.v2"
)

const configFilename = "spoilersweep.yaml"

// LoadGameConfig loads the board configuration. Keys missing from the file
// keep their defaults.
// Search order: customPath -> ~/.spoilersweep/spoilersweep.yaml -> ./spoilersweep.yaml -> defaults
func LoadGameConfig(customPath string) (game.GameConfig, error) {
	cfg := game.NewGameConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), configFilename} {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		loaded := game.NewGameConfig()
		if err := yaml.UnmarshalStrict(data, &loaded); err != nil {
			log.WithError(err).WithField("path", path).Warn("ignoring unparseable config")
			continue
		}
		return loaded, nil
	}

	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spoilersweep", configFilename)
}
