package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownGame is returned when no configuration is compiled in for a game.
var ErrUnknownGame = errors.New("config: unknown game")

// ErrEmbeddedDefaults is returned alongside the hard-coded fallback when the
// embedded YAML for a game does not parse or validate.
var ErrEmbeddedDefaults = errors.New("config: embedded defaults unusable")

// Load returns the compiled-in configuration for a game.
// The embedded YAML is preferred. If it is unusable, the hard-coded defaults
// are returned together with an error wrapping ErrEmbeddedDefaults, so the
// config is always playable. Nothing is read from disk.
func Load(gameID string) (GameConfig, error) {
	return load(gameID, GetDefaultYAML(gameID))
}

func load(gameID string, data []byte) (GameConfig, error) {
	fallback, ok := hardcoded(gameID)
	if !ok {
		return GameConfig{}, fmt.Errorf("%w %q", ErrUnknownGame, gameID)
	}

	cfg, err := Parse(data)
	if err != nil {
		return fallback, fmt.Errorf("%w for %q: %w", ErrEmbeddedDefaults, gameID, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML game configuration.
func Parse(data []byte) (GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
