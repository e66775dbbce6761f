package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatus_Processing(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskPending, true},
		{TaskInProgress, true},
		{TaskSuccess, false},
		{TaskFailed, false},
		{TaskCanceled, false},
		{TaskStatus("UNKNOWN"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.Processing(), "status %s", tt.status)
	}
}

func TestQualifier_File(t *testing.T) {
	assert.True(t, QualifierFile.File())
	assert.True(t, QualifierUnitTestFile.File())
	assert.False(t, QualifierProject.File())
	assert.False(t, QualifierModule.File())
	assert.False(t, QualifierDirectory.File())
}

func TestSeverity_Rank(t *testing.T) {
	assert.Less(t, SeverityBlocker.Rank(), SeverityCritical.Rank())
	assert.Less(t, SeverityCritical.Rank(), SeverityMajor.Rank())
	assert.Less(t, SeverityMajor.Rank(), SeverityMinor.Rank())
	assert.Less(t, SeverityMinor.Rank(), SeverityInfo.Rank())
	assert.Greater(t, Severity("WEIRD").Rank(), SeverityInfo.Rank())
}

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".", cfg.Project.BaseDir)
	assert.Equal(t, ".scannerwork", cfg.Project.WorkDir)
	assert.Equal(t, 50, cfg.Query.MaxRetry)
	assert.Equal(t, 1000, cfg.Query.WaitMs)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate(), "missing server.url must fail")

	cfg.Server.URL = "https://sonar.example.com"
	require.NoError(t, cfg.Validate())

	cfg.Query.MaxRetry = 0
	assert.Error(t, cfg.Validate())
	cfg.Query.MaxRetry = 5
	cfg.Query.WaitMs = -1
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gatecheck.yaml")
	content := `
server:
  url: https://sonar.example.com
  login: token123
project:
  branch: main
query:
  max_retry: 10
  wait_ms: 200
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://sonar.example.com", cfg.Server.URL)
	assert.Equal(t, "token123", cfg.Server.Login)
	assert.Equal(t, "main", cfg.Project.Branch)
	assert.Equal(t, 10, cfg.Query.MaxRetry)
	assert.Equal(t, 200, cfg.Query.WaitMs)
	// defaults still applied for unset fields
	assert.Equal(t, ".scannerwork", cfg.Project.WorkDir)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gatecheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
