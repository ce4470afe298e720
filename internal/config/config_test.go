package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/loader"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvPort, EnvGinMode, EnvStagesFile, EnvFrameMS, EnvAudio} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.True(t, cfg.AudioEnabled)
	assert.Equal(t, 2*time.Second, cfg.Loader.SettleDelay())

	stages, labels, err := cfg.Loader.Schedule()
	require.NoError(t, err)
	wantStages, wantLabels := loader.DefaultStages()
	assert.Equal(t, wantStages, stages)
	assert.Equal(t, wantLabels, labels)
	assert.Equal(t, 15500*time.Millisecond, loader.TotalDuration(stages, cfg.Loader.SettleDelay()))
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvFrameMS, "33")
	t.Setenv(EnvAudio, "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.AudioEnabled)
	assert.Equal(t, 33*time.Millisecond, cfg.FrameInterval(time.Second))
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFrameMS, "fast")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv(EnvAudio, "loud")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_MissingStagesFileFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStagesFile, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultLoader(), cfg.Loader)
}

func TestLoadStagesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stages.yaml")
	content := `stages:
  - id: boot
    label: BOOTING...
    duration_ms: 1000
  - label: DONE
    duration_ms: 500
settle_delay_ms: 250
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lc, err := LoadStagesFile(path)
	require.NoError(t, err)

	stages, labels, err := lc.Schedule()
	require.NoError(t, err)
	assert.Equal(t, []loader.Stage{
		{ID: "boot", Duration: time.Second},
		{ID: "stage-2", Duration: 500 * time.Millisecond},
	}, stages)
	assert.Equal(t, []string{"BOOTING...", "DONE"}, labels)
	assert.Equal(t, 250*time.Millisecond, lc.SettleDelay())
}

func TestLoadStagesFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("stages: [[["), 0o644))
	_, err := LoadStagesFile(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("stages:\n  - id: a\n    label: A\n    duration_ms: 0\n"), 0o644))
	_, err = LoadStagesFile(zero)
	assert.ErrorIs(t, err, loader.ErrInvalidDuration)

	clearEnv(t)
	t.Setenv(EnvStagesFile, bad)
	_, err = Load()
	assert.Error(t, err)
}
