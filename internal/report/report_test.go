package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `projectKey=com.example:demo
serverUrl=https://sonar.example.com
serverVersion=9.9.0
dashboardUrl=https://sonar.example.com/dashboard?id=com.example%3Ademo
ceTaskId=AYxTask1234
ceTaskUrl=https://sonar.example.com/api/ce/task?id=AYxTask1234
`

func writeReport(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, sampleReport)

	r, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "AYxTask1234", r.CeTaskID)
	assert.Equal(t, "com.example:demo", r.ProjectKey)
	assert.Equal(t, "https://sonar.example.com", r.ServerURL)
	assert.Equal(t, "9.9.0", r.ServerVersion)
	assert.Equal(t, "https://sonar.example.com/api/ce/task?id=AYxTask1234", r.CeTaskURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no ceTaskId", "projectKey=com.example:demo\n"},
		{"no projectKey", "ceTaskId=AYxTask1234\n"},
		{"empty ceTaskId", "ceTaskId=\nprojectKey=com.example:demo\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeReport(t, dir, tt.content)
			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}
