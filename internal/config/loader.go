package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.{yaml,toml} -> ./configs/pong.{yaml,toml} -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.{yaml,toml} -> ./configs/asteroids.{yaml,toml} -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids", customPath, defaultAsteroidsYAML, DefaultAsteroidsConfig)
}

// LoadZombies loads Zombie Arena configuration.
// Search order: customPath -> ~/.arcade/configs/zombies.{yaml,toml} -> ./configs/zombies.{yaml,toml} -> embedded default
func LoadZombies(customPath string) (ZombiesConfig, error) {
	return load("zombies", customPath, defaultZombiesYAML, DefaultZombiesConfig)
}

// load decodes the first config found for id over the hardcoded defaults,
// so partial files only override what they mention.
func load[T any](id, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var candidates []string
	for _, ext := range []string{".yaml", ".toml"} {
		// Try user config directory
		if userCfgPath := userConfigPath(id + ext); userCfgPath != "" {
			candidates = append(candidates, userCfgPath)
		}
	}
	for _, ext := range []string{".yaml", ".toml"} {
		// Try local configs directory
		candidates = append(candidates, filepath.Join("configs", id+ext))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := decode(path, data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := decode("default.yaml", embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks TOML for .toml files and YAML for everything else.
func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(v)
		return err
	}
	return yaml.Unmarshal(data, v)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
