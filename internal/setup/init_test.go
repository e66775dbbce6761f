package setup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msageha/gatecheck/internal/model"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()

	path, err := Init(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), path)

	// the generated file parses back, modulo the missing server.url
	_, err = model.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.url")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()

	_, err := Init(dir)
	require.NoError(t, err)

	_, err = Init(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
