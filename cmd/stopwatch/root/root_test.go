package root_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/stopwatch/cmd/stopwatch/root"
	"github.com/wandb/wandb/stopwatch/internal/tui"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd, cleanup := root.NewRootCmd()
	t.Cleanup(cleanup)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func setupConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(tui.EnvConfigDir, dir)
	t.Setenv("STOPWATCH_DEBUG", "")
	t.Setenv("STOPWATCH_SENTRY_DSN", "")
	return dir
}

func TestConfigPath(t *testing.T) {
	dir := setupConfigDir(t)

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, tui.ConfigFileName), strings.TrimSpace(out))
}

func TestConfigPath_ExplicitFlag(t *testing.T) {
	setupConfigDir(t)
	explicit := filepath.Join(t.TempDir(), "prefs.json")

	out, err := execute(t, "config", "path", "--config", explicit)

	require.NoError(t, err)
	assert.Equal(t, explicit, strings.TrimSpace(out))
}

func TestConfigSetThenShow(t *testing.T) {
	setupConfigDir(t)

	_, err := execute(t, "config", "set", "lap-order", "newest_first")
	require.NoError(t, err)
	_, err = execute(t, "config", "set", "refresh-interval-ms", "40")
	require.NoError(t, err)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	var shown tui.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, tui.Config{
		RefreshIntervalMs: 40,
		LapOrder:          tui.LapOrderNewestFirst,
		AltScreen:         true,
	}, shown)

	out, err = execute(t, "config", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "lap_order: newest_first")
}

func TestConfigSet_RejectsInvalidValue(t *testing.T) {
	setupConfigDir(t)

	_, err := execute(t, "config", "set", "lap-order", "sideways")

	assert.ErrorContains(t, err, "lap order must be")
}

func TestConfigSet_RequiresTwoArgs(t *testing.T) {
	setupConfigDir(t)

	_, err := execute(t, "config", "set", "lap-order")

	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	setupConfigDir(t)

	out, err := execute(t, "version")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info["version"])
	assert.Contains(t, []string{"development", "production"}, info["environment"])
}

func TestRoot_RejectsOutOfRangeRefreshInterval(t *testing.T) {
	setupConfigDir(t)

	_, err := execute(t, "--refresh-interval", "5s")

	assert.ErrorContains(t, err, "refresh interval must be between")
}

func TestRoot_RefreshIntervalFromEnv(t *testing.T) {
	setupConfigDir(t)
	t.Setenv("STOPWATCH_REFRESH_INTERVAL", "5s")

	_, err := execute(t)

	assert.ErrorContains(t, err, "refresh interval must be between")
}

func TestRoot_RejectsArgs(t *testing.T) {
	setupConfigDir(t)

	_, err := execute(t, "extra")

	assert.Error(t, err)
}

func TestVersion_YAMLWithGlobalFlags(t *testing.T) {
	setupConfigDir(t)

	out, err := execute(t, "--no-color", "version", "--format", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "version: ")
	assert.Contains(t, out, "gitCommit: ")
}
