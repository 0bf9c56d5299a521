package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStructuredConfig_DefaultsApplied(t *testing.T) {
	cfg, err := GetStructuredConfig("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
	assert.NotEmpty(t, cfg.Cache.Path)
	assert.NotEmpty(t, cfg.Profiles.Path)
}

func TestGetStructuredConfig_EnvWinsOverDefaults(t *testing.T) {
	t.Setenv("RSTOOLS_SERVER_REPORT_SERVER_URI", "http://reports.local/ReportServer")
	t.Setenv("RSTOOLS_SERVER_REQUEST_TIMEOUT", "5s")

	cfg, err := GetStructuredConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://reports.local/ReportServer", cfg.Server.ReportServerURI)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestGetStructuredConfig_EnvWinsOverJSON(t *testing.T) {
	jsonPath := writeJSONConfig(t, map[string]any{
		"server": map[string]any{
			"report_server_uri": "http://from-json/ReportServer",
			"username":          "json-user",
		},
	})

	t.Setenv("RSTOOLS_SERVER_REPORT_SERVER_URI", "http://from-env/ReportServer")

	cfg, err := GetStructuredConfig(jsonPath)
	require.NoError(t, err)

	// env is a higher-priority source, json fills the rest
	assert.Equal(t, "http://from-env/ReportServer", cfg.Server.ReportServerURI)
	assert.Equal(t, "json-user", cfg.Server.Username)
}

func TestGetStructuredConfig_JSONFileLoaded(t *testing.T) {
	jsonPath := writeJSONConfig(t, map[string]any{
		"cache": map[string]any{
			"path":    "/tmp/rstools-test/catalog.db",
			"folders": []string{"/Finance", "/Sales"},
			"ttl":     "2h",
		},
	})

	cfg, err := GetStructuredConfig(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/rstools-test/catalog.db", cfg.Cache.Path)
	assert.Equal(t, []string{"/Finance", "/Sales"}, cfg.Cache.Folders)
	assert.Equal(t, 2*time.Hour, cfg.Cache.TTL)
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	_, err := GetStructuredConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestGetStructuredConfig_InvalidTimeoutFails(t *testing.T) {
	t.Setenv("RSTOOLS_SERVER_REQUEST_TIMEOUT", "-1s")

	_, err := GetStructuredConfig("")
	require.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func writeJSONConfig(t *testing.T, content map[string]any) string {
	t.Helper()

	payload, err := json.Marshal(content)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, payload, 0o600))
	return path
}
