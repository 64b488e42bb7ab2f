package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadEnvReadsAppEnvFromFile(t *testing.T) {
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_ENV=production\n"), 0o600))
	chdir(t, dir)

	env, err := loadEnv()

	require.NoError(t, err)
	assert.Equal(t, "production", env)
}

func TestLoadEnvWithoutFile(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	chdir(t, t.TempDir())

	env, err := loadEnv()

	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "staging", env)
}
