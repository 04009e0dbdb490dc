package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 27, cfg.NameWidth)
	assert.Equal(t, "gopsutil", cfg.Provider)
	assert.False(t, cfg.MeasureElapsed)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
interval: 2s
measure_elapsed: true
name_width: 40
provider: procfs
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.True(t, cfg.MeasureElapsed)
	assert.Equal(t, 40, cfg.NameWidth)
	assert.Equal(t, "procfs", cfg.Provider)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format, "unset nested fields keep defaults")
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 10ms\nname_width: 2\nprovider: wmi\nlog:\n  level: loud\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 4)
	assert.Contains(t, err.Error(), "Interval")
	assert.Contains(t, err.Error(), "Provider")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Interval = 1500 * time.Millisecond
	cfg.MaxRows = 50

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/tmp/x.yaml", ResolvePath("/tmp/x.yaml"))

	t.Setenv(EnvConfigPath, "/etc/procwatch.yaml")
	assert.Equal(t, "/etc/procwatch.yaml", ResolvePath(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, filepath.Join(Dir(), "config.yaml"), ResolvePath(""))
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(path, Default()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 4)
	require.NoError(t, Watch(ctx, path, zerolog.Nop(), func(c *Config) { got <- c }))

	cfg := Default()
	cfg.NameWidth = 64
	require.NoError(t, Save(path, cfg))

	// a truncating write may surface an intermediate reload first
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-got:
			if c.NameWidth == 64 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), zerolog.Nop(), func(*Config) {})
	assert.Error(t, err)
}
