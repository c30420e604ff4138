package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings read from a cospan.yaml file.
type Config struct {
	// LogLevel is one of debug, info, warn, error. Default info.
	LogLevel string `yaml:"log_level"`

	// MatchLimit caps how many matches the match command enumerates.
	// Zero means no cap.
	MatchLimit int `yaml:"match_limit"`

	// WatchDebounceMs coalesces bursts of file events in watch mode.
	WatchDebounceMs int `yaml:"watch_debounce_ms"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:        "info",
		WatchDebounceMs: 200,
	}
}

// debounce returns the watch debounce as a duration.
func (c Config) debounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}

// loadConfig reads path when it exists; a missing default config file is
// not an error, an explicitly requested one is.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.WatchDebounceMs <= 0 {
		cfg.WatchDebounceMs = 200
	}
	return cfg, nil
}
