package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultAddr         = ":8080"
	DefaultFetchTimeout = 3 * time.Second
	DefaultConcurrency  = 10
	DefaultMaxURLs      = 10
	DefaultRateLimitRPS = 0 // disabled
)

// Config holds runtime configuration for the program. Zero values fall
// back to the defaults above during Run.
type Config struct {
	// Addr is the HTTP listen address for the serve command.
	Addr string `yaml:"addr"`

	// FetchTimeoutSeconds bounds a single article fetch.
	FetchTimeoutSeconds float64 `yaml:"fetch_timeout_seconds"`

	// Concurrency caps simultaneously running pipelines per batch.
	Concurrency int `yaml:"concurrency"`

	// MaxURLs caps the number of URLs accepted per HTTP request.
	MaxURLs int `yaml:"max_urls"`

	// RateLimitRPS paces fetches per source host. Zero disables pacing.
	RateLimitRPS float64 `yaml:"rate_limit_rps"`

	// LexiconPaths are files with charged words, one per line.
	LexiconPaths []string `yaml:"lexicon_paths"`

	// DictionaryPaths are extra form-to-lemma TSV files merged into the
	// built-in morphological dictionary.
	DictionaryPaths []string `yaml:"dictionary_paths"`
}

// FetchTimeout returns the configured fetch budget as a duration.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return DefaultFetchTimeout
	}
	return time.Duration(c.FetchTimeoutSeconds * float64(time.Second))
}

// LoadConfig reads configuration from the YAML file at path, then applies
// environment variable overrides. A missing file is not an error; the
// returned Config carries defaults and any overrides.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JAUNDICE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("JAUNDICE_FETCH_TIMEOUT_SECONDS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FetchTimeoutSeconds = f
		}
	}
	if v := os.Getenv("JAUNDICE_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("JAUNDICE_MAX_URLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxURLs = n
		}
	}
	if v := os.Getenv("JAUNDICE_RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = DefaultFetchTimeout.Seconds()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.MaxURLs <= 0 {
		cfg.MaxURLs = DefaultMaxURLs
	}
	if len(cfg.LexiconPaths) == 0 {
		cfg.LexiconPaths = []string{
			"charged_dict/negative_words.txt",
			"charged_dict/positive_words.txt",
		}
	}
}

// configPath returns the config file location, honoring JAUNDICE_CONFIG.
func configPath() string {
	if path := os.Getenv("JAUNDICE_CONFIG"); path != "" {
		return path
	}
	return "jaundice.yml"
}
