package gizmos_test

import (
	"os"
	"testing"
	"time"

	"github.com/gekko3d/gizmos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchTimeout = 5 * time.Second

// waitForConfig drains w until a config satisfying match arrives.
func waitForConfig(t *testing.T, w *gizmos.ConfigWatcher, match func(gizmos.Config) bool) gizmos.Config {
	t.Helper()
	deadline := time.After(watchTimeout)
	for {
		select {
		case cfg := <-w.Updates():
			if match(cfg) {
				return cfg
			}
		case <-w.Errors():
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "live.toml", "circle_sides = 5\n")
	w, err := gizmos.WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("circle_sides = 11\n"), 0o644))
	cfg := waitForConfig(t, w, func(c gizmos.Config) bool { return c.CircleSides == 11 })
	assert.Equal(t, "gizmos", cfg.LogPrefix)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "Close is idempotent")
}

func TestWatchConfig_ReportsBadContent(t *testing.T) {
	path := writeConfig(t, "live.yaml", "circle_sides: 5\n")
	w, err := gizmos.WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("circle_sides: 1\n"), 0o644))
	select {
	case err := <-w.Errors():
		assert.ErrorContains(t, err, "circle_sides")
	case <-time.After(watchTimeout):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	_, err := gizmos.WatchConfig("/nonexistent/dir/gizmos.toml")
	assert.Error(t, err)
}

func TestConfigReloadModule(t *testing.T) {
	path := writeConfig(t, "live.toml", "default_color = \"red\"\n")
	initial, err := gizmos.LoadConfig(path)
	require.NoError(t, err)

	app := gizmos.NewApp().UseModules(gizmos.ConfigReloadModule{Path: path, Initial: initial})
	live, ok := gizmos.Resource[gizmos.LiveConfig](app)
	require.True(t, ok)
	defer live.Close()
	assert.Equal(t, gizmos.Red, live.Config.Color())

	require.NoError(t, os.WriteFile(path, []byte("default_color = \"blue\"\ndebug = true\n"), 0o644))

	deadline := time.Now().Add(watchTimeout)
	for live.Config.Color() != gizmos.Blue && time.Now().Before(deadline) {
		app.Step(10 * time.Millisecond)
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, gizmos.Blue, live.Config.Color())
	assert.Positive(t, live.Generation)
	assert.True(t, live.Config.Debug)
}

func TestConfigReloadModule_WithoutPath(t *testing.T) {
	app := gizmos.NewApp().UseModules(gizmos.ConfigReloadModule{Initial: gizmos.DefaultConfig()})
	live, ok := gizmos.Resource[gizmos.LiveConfig](app)
	require.True(t, ok)
	assert.NoError(t, live.Close())

	app.Step(time.Millisecond)
	assert.Equal(t, 0, live.Generation)
}
