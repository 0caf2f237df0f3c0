// Package config loads the invsearch settings from an optional YAML file with
// INVSEARCH_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// SaveFile is the default save file used by save and update.
	SaveFile string `yaml:"saveFile"`
	// Extension is the only extension accepted for input files.
	Extension string `yaml:"extension"`
	// MaxWordLength truncates longer input words, in bytes.
	MaxWordLength int `yaml:"maxWordLength"`
	// CacheSize is the number of search results kept in memory.
	CacheSize int `yaml:"cacheSize"`
	// TopWords is the default count listed by the top command.
	TopWords int `yaml:"topWords"`
	// NearDuplicateDistance is the simhash distance under which two input
	// files are reported as near duplicates.
	NearDuplicateDistance uint8  `yaml:"nearDuplicateDistance"`
	Prompt                string `yaml:"prompt"`
}

func Default() *Config {
	return &Config{
		SaveFile:              "Saved_DataBase.txt",
		Extension:             ".txt",
		MaxWordLength:         100,
		CacheSize:             256,
		TopWords:              10,
		NearDuplicateDistance: 3,
		Prompt:                "invsearch> ",
	}
}

// Load reads path when it is not empty, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.SaveFile == "":
		return fmt.Errorf("%w: empty saveFile", ErrInvalidConfig)
	case !strings.HasPrefix(c.Extension, "."):
		return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, c.Extension)
	case c.MaxWordLength <= 0:
		return fmt.Errorf("%w: maxWordLength must be positive", ErrInvalidConfig)
	case c.CacheSize <= 0:
		return fmt.Errorf("%w: cacheSize must be positive", ErrInvalidConfig)
	case c.TopWords <= 0:
		return fmt.Errorf("%w: topWords must be positive", ErrInvalidConfig)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INVSEARCH_SAVE_FILE"); v != "" {
		cfg.SaveFile = v
	}
	if v := os.Getenv("INVSEARCH_EXTENSION"); v != "" {
		cfg.Extension = v
	}
	if v := os.Getenv("INVSEARCH_MAX_WORD_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxWordLength = n
		}
	}
	if v := os.Getenv("INVSEARCH_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CacheSize = n
		}
	}
	if v := os.Getenv("INVSEARCH_TOP_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopWords = n
		}
	}
	if v := os.Getenv("INVSEARCH_NEAR_DUPLICATE_DISTANCE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			cfg.NearDuplicateDistance = uint8(n)
		}
	}
}
