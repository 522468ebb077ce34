package ihealth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

func TestLoadConfigMissingCredentials(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindConfiguration))
	assert.Contains(t, err.Error(), EnvClientID)
}

func TestLoadConfigPartialCredentials(t *testing.T) {
	t.Setenv(EnvClientID, "id-only")
	t.Setenv(EnvClientSecret, "")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindConfiguration))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(EnvClientID, "id")
	t.Setenv(EnvClientSecret, "secret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "id", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTokenURL, cfg.TokenURL)
}

func TestLoadConfigYAMLOverride(t *testing.T) {
	t.Setenv(EnvClientID, "id")
	t.Setenv(EnvClientSecret, "secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_url: https://staging.example.com/api\ntoken_url: https://identity.example.com/token\n",
	), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api", cfg.BaseURL)
	assert.Equal(t, "https://identity.example.com/token", cfg.TokenURL)
	assert.Equal(t, "id", cfg.ClientID, "credentials still come from the environment")
}

func TestLoadConfigBadYAML(t *testing.T) {
	t.Setenv(EnvClientID, "id")
	t.Setenv(EnvClientSecret, "secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [oops"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindConfiguration))
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(EnvClientID, "id")
	t.Setenv(EnvClientSecret, "secret")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindConfiguration))
}
