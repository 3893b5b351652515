package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "txscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "dataDir: /var/lib/txscope\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/txscope", cfg.DataDir)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "127.0.0.1:9090", cfg.Metrics.Addr)
}

func TestLoadHonorsExplicitValues(t *testing.T) {
	path := writeConfig(t, "dataDir: /data\nlogging:\n  level: debug\n  json: true\nmetrics:\n  addr: 0.0.0.0:9999\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.True(t, cfg.Logging.JSON)
	require.Equal(t, "0.0.0.0:9999", cfg.Metrics.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLogConfigTranslation(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "warn"
	cfg.Logging.JSON = true

	lc := cfg.LogConfig()
	require.Equal(t, "warn", string(lc.Level))
	require.True(t, lc.JSONOutput)
}
