package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "https://demo.trading212.com/api/v0", config.Clients.Trading212.BaseURL)
	assert.Equal(t, "https://www.alphavantage.co", config.Clients.AlphaVantage.BaseURL)
	assert.Equal(t, "https://hacker-news.firebaseio.com/v0", config.Clients.HackerNews.BaseURL)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, 30*time.Second, config.Clients.Trading212.GetTimeout())
	assert.Equal(t, 10*time.Second, config.Clients.AlphaVantage.GetTimeout())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig("/nonexistent/voxfolio.toml")

	require.NoError(t, err)
	assert.Equal(t, "development", config.Environment)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voxfolio.toml")
	content := `
environment = "production"

[logging]
level = "debug"

[clients.trading212]
base_url = "https://live.trading212.com/api/v0"
timeout = "45s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "https://live.trading212.com/api/v0", config.Clients.Trading212.BaseURL)
	assert.Equal(t, 45*time.Second, config.Clients.Trading212.GetTimeout())
	// Untouched sections keep defaults
	assert.Equal(t, "https://www.alphavantage.co", config.Clients.AlphaVantage.BaseURL)
}

func TestLoadConfig_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	require.NoError(t, os.WriteFile(first, []byte(`environment = "staging"`), 0644))
	require.NoError(t, os.WriteFile(second, []byte(`environment = "production"`), 0644))

	config, err := LoadConfig(first, second)

	require.NoError(t, err)
	assert.Equal(t, "production", config.Environment)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`environment = [broken`), 0644))

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("VOX_ENV", "production")
	t.Setenv("VOX_LOG_LEVEL", "warn")
	t.Setenv("TRADING212_API_KEY", "env-key")
	t.Setenv("TRADING212_API_SECRET", "env-secret")
	t.Setenv("ALPHA_VANTAGE_KEY", "av-key")

	config, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "env-key", config.Clients.Trading212.APIKey)
	assert.Equal(t, "env-secret", config.Clients.Trading212.APISecret)
	assert.Equal(t, "av-key", config.Clients.AlphaVantage.APIKey)
}

func TestValidateBrokerage(t *testing.T) {
	config := NewDefaultConfig()
	require.Error(t, config.ValidateBrokerage())

	config.Clients.Trading212.APIKey = "key"
	require.Error(t, config.ValidateBrokerage())

	config.Clients.Trading212.APISecret = "secret"
	require.NoError(t, config.ValidateBrokerage())
}

func TestGetTimeout_MalformedFallsBack(t *testing.T) {
	c := Trading212Config{Timeout: "soon"}
	assert.Equal(t, 30*time.Second, c.GetTimeout())

	av := AlphaVantageConfig{Timeout: ""}
	assert.Equal(t, 10*time.Second, av.GetTimeout())
}

func TestIsProduction(t *testing.T) {
	cases := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"PROD", true},
		{" prod ", true},
		{"development", false},
		{"", false},
	}

	for _, tc := range cases {
		config := &Config{Environment: tc.env}
		assert.Equal(t, tc.want, config.IsProduction(), "env %q", tc.env)
	}
}
