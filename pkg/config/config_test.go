// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (t.TempDir)
// PURPOSE: Test config defaults, loading, and failure codes

package config_test

import (
	"os"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DmarshalTU/safecracker/pkg/config"
	"github.com/DmarshalTU/safecracker/pkg/errors"
)

// setupDir moves the test into a fresh working directory and points the
// XDG config lookup at an empty one.
func setupDir(t *testing.T) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	t.Cleanup(func() {
		_ = os.Chdir(old)
		xdg.Reload()
	})
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "input.txt", cfg.Input)
	assert.Equal(t, 0, cfg.Verbosity)
	assert.False(t, cfg.NoColor)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	setupDir(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FromWorkingDirectory(t *testing.T) {
	setupDir(t)

	content := "input = \"rotations.txt\"\nverbosity = 2\nno_color = true\n"
	require.NoError(t, os.WriteFile(config.FileName, []byte(content), 0o644))

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "rotations.txt", cfg.Input)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.True(t, cfg.NoColor)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	setupDir(t)

	require.NoError(t, os.WriteFile(config.FileName, []byte("verbosity = 1\n"), 0o644))

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "input.txt", cfg.Input)
	assert.Equal(t, 1, cfg.Verbosity)
}

func TestLoad_FromXDGConfigDir(t *testing.T) {
	setupDir(t)

	dir := xdg.ConfigHome + "/safecracker"
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(dir+"/"+config.FileName, []byte("input = \"vault.txt\"\n"), 0o644))

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "vault.txt", cfg.Input)
}

func TestLoad_InvalidTOML(t *testing.T) {
	setupDir(t)

	require.NoError(t, os.WriteFile(config.FileName, []byte("input = [broken\n"), 0o644))

	_, err := config.Load()

	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
}
