// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "agent-intake/internal/common/errors"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "app:\n  name: agent-intake\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, "/v1/agents/applications/", cfg.API.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout())
	assert.Equal(t, 1500*time.Millisecond, cfg.API.MockDelay())
	assert.Equal(t, ".", cfg.Receipt.OutputDir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile_InvalidEndpoint(t *testing.T) {
	path := writeConfigFile(t, "api:\n  endpoint: \"v1/agents/applications/\"\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)

	se, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConfigurationError, se.Code)
	assert.Contains(t, se.Details, "api.endpoint")
}

func TestLoadFromFile_NegativeTimeout(t *testing.T) {
	path := writeConfigFile(t, "api:\n  timeout: -1\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)

	se, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConfigurationError, se.Code)
}
