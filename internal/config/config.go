package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultDirName is the per-user application directory under the home dir.
const DefaultDirName = ".skilltest"

type Config struct {
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Bank struct {
		Path     string `yaml:"path"`
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"bank"`
	Log struct {
		Path string `yaml:"path"`
	} `yaml:"log"`
}

// Load reads YAML config from path. A missing file is not an error:
// the zero Config resolves to per-user defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// StorePath resolves the record store location, defaulting to
// ~/.skilltest/records.yaml.
func (c Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	return defaultPath("records.yaml")
}

// LogPath resolves the log file location, defaulting to
// ~/.skilltest/skilltest.log.
func (c Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	return defaultPath("skilltest.log")
}

func defaultPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, name), nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
