package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hoopreel/internal/highlights"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFiles_Defaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.False(t, cfg.HasAPIKey())
	assert.Equal(t, highlights.DefaultMaxResults, cfg.MaxResults())
	assert.Equal(t, highlights.OrderRelevance, cfg.DefaultOrder())
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t, 20, cfg.HistorySize())
}

func TestLoadFiles_ReadsTOML(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
[youtube]
api_key = "file-key"
max_results = 12
default_order = "viewCount"
endpoint = " http://localhost:8080/ "
qualifier = "nba highlights"

[log]
level = "debug"
file = "/tmp/hoopreel.log"

[history]
enabled = false
size = 5
`)

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.YouTube.APIKey)
	assert.Equal(t, 12, cfg.MaxResults())
	assert.Equal(t, highlights.OrderViewCount, cfg.DefaultOrder())
	assert.Equal(t, "http://localhost:8080/", cfg.YouTube.Endpoint)
	assert.Equal(t, "nba highlights", cfg.YouTube.Qualifier)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/hoopreel.log", cfg.Log.File)
	assert.False(t, cfg.HistoryEnabled())
	assert.Equal(t, 5, cfg.HistorySize())
}

func TestLoadFiles_LaterFileWins(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	dir := t.TempDir()
	user := writeConfig(t, dir, "user.toml", `
[youtube]
api_key = "user-key"
max_results = 10
`)
	local := writeConfig(t, dir, "local.toml", `
[youtube]
max_results = 3
`)

	cfg, err := LoadFiles(user, local)
	require.NoError(t, err)

	assert.Equal(t, "user-key", cfg.YouTube.APIKey)
	assert.Equal(t, 3, cfg.MaxResults())
}

func TestLoadFiles_EnvOverridesFile(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")
	path := writeConfig(t, t.TempDir(), "config.toml", `
[youtube]
api_key = "file-key"
`)

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.True(t, cfg.HasAPIKey())
	assert.Equal(t, "env-key", cfg.YouTube.APIKey)
}

func TestLoadFiles_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "[youtube\napi_key = ")

	_, err := LoadFiles(path)
	assert.Error(t, err)
}

func TestConfig_FallbacksForBadValues(t *testing.T) {
	cfg := &Config{
		YouTube: YouTubeConfig{MaxResults: 500, DefaultOrder: "newest"},
		History: HistoryConfig{Size: -1},
	}

	assert.Equal(t, 50, cfg.MaxResults())
	assert.Equal(t, highlights.OrderRelevance, cfg.DefaultOrder())
	assert.Equal(t, 20, cfg.HistorySize())
}

func TestConfig_ExplicitPaths(t *testing.T) {
	cfg := &Config{
		Log:     LogConfig{File: "/var/log/hoopreel.log"},
		History: HistoryConfig{Path: "/var/lib/hoopreel/history.db"},
	}

	logPath, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/hoopreel.log", logPath)

	histPath, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/hoopreel/history.db", histPath)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "logs/x.log"), expandPath("~/logs/x.log"))
	assert.Equal(t, "/abs/x.log", expandPath("/abs/x.log"))
	assert.Empty(t, expandPath(""))
}
