package paths

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDir_ReturnsNonEmpty(t *testing.T) {
	dir := ConfigDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
	require.True(t, filepath.IsAbs(dir), "ConfigDir should be absolute: %s", dir)
}

func TestConfigDir_EndsWithAppName(t *testing.T) {
	require.Equal(t, "strata", filepath.Base(ConfigDir()))
}

func TestDataDir_WithXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	custom := t.TempDir()
	t.Setenv("XDG_DATA_HOME", custom)

	dir := DataDir()
	require.True(t, strings.HasPrefix(dir, custom),
		"DataDir should use XDG_DATA_HOME: %s", dir)
	require.Equal(t, "strata", filepath.Base(dir))
}

func TestDataDir_WithoutXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	t.Setenv("XDG_DATA_HOME", "")

	dir := DataDir()
	require.Contains(t, dir, ".local/share",
		"DataDir should fall back to .local/share: %s", dir)
}

func TestDatabasePath_UnderDataDir(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_DATA_HOME", custom)

	path := DatabasePath()
	require.Equal(t, "strata.db", filepath.Base(path))
	require.True(t, strings.HasPrefix(path, DataDir()),
		"DatabasePath should be under DataDir: %s", path)
}

func TestLogPath_UnderDataDir(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_DATA_HOME", custom)

	path := LogPath()
	require.Equal(t, "strata.log", filepath.Base(path))
	require.True(t, strings.HasPrefix(path, DataDir()),
		"LogPath should be under DataDir: %s", path)
}

func TestPaths_NoDotDotComponents(t *testing.T) {
	for _, p := range []string{ConfigDir(), DataDir(), DatabasePath(), LogPath()} {
		require.NotContains(t, p, "..", "Path should not contain '..': %s", p)
	}
}
