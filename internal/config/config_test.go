package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	t.Setenv("PORTFOLIO_SOURCE_SPREADSHEET_ID", "sheet-id")
	t.Setenv("PORTFOLIO_SOURCE_API_KEY", "api-key")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "google", cfg.Source.Mode)
	assert.Equal(t, "admission_no", cfg.Source.KeyColumn)
	assert.Equal(t, 5, cfg.Source.RecentTests)
}

func TestLoadFromFile(t *testing.T) {
	content := `
server:
  port: 9090
source:
  mode: workbook
  workbook_path: snapshot.xlsx
  recent_tests: 3
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "workbook", cfg.Source.Mode)
	assert.Equal(t, "snapshot.xlsx", cfg.Source.WorkbookPath)
	assert.Equal(t, 3, cfg.Source.RecentTests)
	// Fields the file does not set still get defaults.
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
}

func TestEnvOverridesFile(t *testing.T) {
	content := `
server:
  port: 9090
source:
  mode: workbook
  workbook_path: snapshot.xlsx
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("PORTFOLIO_SERVER_PORT", "7070")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestValidateRejectsGoogleModeWithoutCredentials(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	t.Setenv("PORTFOLIO_SOURCE_MODE", "workbook")
	t.Setenv("PORTFOLIO_SOURCE_WORKBOOK_PATH", "snapshot.xlsx")
	t.Setenv("PORTFOLIO_LOGGING_LEVEL", "verbose")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
