// Package config loads the YAML configuration of the watcher commands.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/roushou/polyte/pkg/logger"
)

// LogConfig mirrors logger.Config with YAML tags.
type LogConfig struct {
	Level      string `yaml:"level"`
	OutputFile string `yaml:"output_file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Logger converts to the logger package's config.
func (l LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:      l.Level,
		OutputFile: l.OutputFile,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

// Watcher configures a streaming watcher: which tokens to follow, how deep to
// render the book, and how to reach the websocket endpoint.
type Watcher struct {
	Tokens          []string  `yaml:"tokens"`
	Depth           int       `yaml:"depth"`
	URL             string    `yaml:"url"`
	PingIntervalRaw string    `yaml:"ping_interval"` // Go duration syntax, e.g. "5s"
	Log             LogConfig `yaml:"log"`

	PingInterval time.Duration `yaml:"-"`
}

// LoadWatcher reads and validates a watcher config file.
func LoadWatcher(path string) (*Watcher, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Watcher{Depth: 5, Log: LogConfig{Level: "info"}}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if len(cfg.Tokens) == 0 {
		return nil, errors.New("config lists no tokens")
	}
	if cfg.Depth <= 0 {
		return nil, errors.Errorf("invalid depth %d", cfg.Depth)
	}
	if cfg.PingIntervalRaw != "" {
		d, err := time.ParseDuration(cfg.PingIntervalRaw)
		if err != nil {
			return nil, errors.Wrap(err, "parse ping_interval")
		}
		cfg.PingInterval = d
	}
	return &cfg, nil
}
