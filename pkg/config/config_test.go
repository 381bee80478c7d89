package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortexlabs/vortex/pkg/vortexerrors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeConfig(t, `
pools:
  - name: buffers
    size: 128
    prefill: 32
  - name: connections
    size: 16
    dispose_when_full: true
    track_leaks: true
logging:
  level: debug
  encoding: console
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	require.Len(t, settings.Pools, 2)
	assert.Equal(t, "buffers", settings.Pools[0].Name)
	assert.Equal(t, 128, settings.Pools[0].Size)
	assert.Equal(t, 32, settings.Pools[0].Prefill)
	assert.False(t, settings.Pools[0].DisposeWhenFull)

	assert.Equal(t, "connections", settings.Pools[1].Name)
	assert.True(t, settings.Pools[1].DisposeWhenFull)
	assert.True(t, settings.Pools[1].TrackLeaks)

	assert.Equal(t, "debug", settings.Logging.Level)
}

func TestLoadSettingsSubstitutesEnvVars(t *testing.T) {
	t.Setenv("POOL_SIZE", "256")
	path := writeConfig(t, `
pools:
  - name: buffers
    size: ${POOL_SIZE}
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 256, settings.Pools[0].Size)
}

func TestLoadSettingsRejectsInvalidSize(t *testing.T) {
	path := writeConfig(t, `
pools:
  - name: buffers
    size: 0
`)

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.True(t, vortexerrors.IsType(err, vortexerrors.ErrorTypeValidation))
}

func TestLoadSettingsRejectsDuplicateNames(t *testing.T) {
	path := writeConfig(t, `
pools:
  - name: buffers
    size: 8
  - name: buffers
    size: 16
`)

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.True(t, vortexerrors.IsType(err, vortexerrors.ErrorTypeValidation))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, vortexerrors.IsType(err, vortexerrors.ErrorTypeConfig))
}

func TestValidateDefaults(t *testing.T) {
	ps := NewPoolSettings("scratch")
	require.NoError(t, ps.Validate())
	assert.Equal(t, DefaultSize, ps.Size)
}

func TestValidateRejectsNegativePrefill(t *testing.T) {
	ps := NewPoolSettings("scratch")
	ps.Prefill = -1
	err := ps.Validate()
	require.Error(t, err)
	assert.True(t, vortexerrors.IsType(err, vortexerrors.ErrorTypeValidation))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	original := &Settings{Pools: []PoolSettings{NewPoolSettings("scratch")}}
	require.NoError(t, Save(path, original))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, original.Pools, loaded.Pools)
}
