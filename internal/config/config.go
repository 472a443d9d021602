// Package config handles Brainwave configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syoummer/brainwave/internal/realtime"
)

// DefaultSearchPaths returns the config file search order.
// An explicit path (from -config flag) is checked first.
// Then: ./config.yaml, ~/.config/brainwave/config.yaml,
// /etc/brainwave/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"config.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "brainwave", "config.yaml"))
	}

	paths = append(paths, "/etc/brainwave/config.yaml")
	return paths
}

// FindConfig locates a config file. If explicit is non-empty, it must exist.
// Otherwise, searches DefaultSearchPaths and returns the first that exists.
// Returns the path found, or an error if nothing was found.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found (searched: %v)", DefaultSearchPaths())
}

// Config holds all Brainwave configuration.
type Config struct {
	Realtime RealtimeConfig `yaml:"realtime"`
	LogLevel string         `yaml:"log_level"`
}

// RealtimeConfig overrides the environment-derived realtime session
// settings. Unset fields keep the environment/default value, so a config
// file only needs the fields it actually changes.
type RealtimeConfig struct {
	Model         string   `yaml:"model"`
	Modalities    []string `yaml:"modalities"`
	SessionTTLSec int      `yaml:"session_ttl_sec"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{}
}

// EffectiveSession resolves the realtime session configuration: the
// OPENAI_REALTIME_* environment variables (with their defaults) form the
// base, and any fields set in the config file override them. A malformed
// TTL in the environment is still fatal here.
func (c *Config) EffectiveSession() (realtime.SessionConfig, error) {
	session, err := realtime.SessionFromEnv()
	if err != nil {
		return realtime.SessionConfig{}, err
	}

	if c.Realtime.Model != "" {
		session.Model = c.Realtime.Model
	}
	if c.Realtime.Modalities != nil {
		session.Modalities = c.Realtime.Modalities
	}
	if c.Realtime.SessionTTLSec != 0 {
		session.TTLSeconds = c.Realtime.SessionTTLSec
	}

	return session, nil
}
