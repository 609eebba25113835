package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/hoopreel/internal/highlights"
)

const (
	appName = "hoopreel"

	// APIKeyEnv is the environment variable holding the YouTube API key.
	// It takes precedence over youtube.api_key from config files.
	APIKeyEnv = "YOUTUBE_API_KEY"

	maxResultsLimit    = 50 // YouTube search.list upper bound
	defaultHistorySize = 20
)

// Config is the merged application configuration.
type Config struct {
	YouTube YouTubeConfig `koanf:"youtube"`
	Log     LogConfig     `koanf:"log"`
	History HistoryConfig `koanf:"history"`
}

// YouTubeConfig holds the search client settings.
type YouTubeConfig struct {
	APIKey       string `koanf:"api_key"`
	MaxResults   int    `koanf:"max_results"`   // 1-50, default: 5
	DefaultOrder string `koanf:"default_order"` // relevance, date, viewCount, rating, title
	Endpoint     string `koanf:"endpoint"`      // base URL override
	Qualifier    string `koanf:"qualifier"`     // appended to every query (default: "basketball highlights")
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/hoopreel/hoopreel.log
}

// HistoryConfig holds search history settings.
type HistoryConfig struct {
	Enabled *bool  `koanf:"enabled"` // default: true
	Size    int    `koanf:"size"`    // queries kept (default: 20)
	Path    string `koanf:"path"`    // default: $XDG_DATA_HOME/hoopreel/history.db
}

// Load reads the config files and applies the environment override.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files in order (last wins). Missing files
// are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		cfg.YouTube.APIKey = key
	}

	cfg.YouTube.Endpoint = strings.TrimSpace(cfg.YouTube.Endpoint)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.History.Path = expandPath(cfg.History.Path)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/hoopreel/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasAPIKey returns true if a YouTube API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.YouTube.APIKey != ""
}

// MaxResults returns the search result cap with defaults applied.
func (c *Config) MaxResults() int {
	n := c.YouTube.MaxResults
	if n <= 0 {
		return highlights.DefaultMaxResults
	}
	return min(n, maxResultsLimit)
}

// DefaultOrder returns the configured initial sort order, falling back to
// relevance for empty or unknown values.
func (c *Config) DefaultOrder() highlights.Order {
	o, err := highlights.ParseOrder(c.YouTube.DefaultOrder)
	if err != nil {
		return highlights.OrderRelevance
	}
	return o
}

// HistoryEnabled reports whether search history should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// HistorySize returns the number of queries to keep.
func (c *Config) HistorySize() int {
	if c.History.Size <= 0 {
		return defaultHistorySize
	}
	return c.History.Size
}

// HistoryPath returns the history database path, creating its directory.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	return xdg.DataFile(filepath.Join(appName, "history.db"))
}

// LogPath returns the log file path, creating its directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
