package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

const (
	EnvConfigDir   = "STOPWATCH_CONFIG_DIR"
	ConfigFileName = "stopwatch.json"
)

// ResolveConfigPath returns the path where the preferences should be stored.
//
// An explicit path wins. Otherwise the first writable directory among
// $STOPWATCH_CONFIG_DIR, ~/.config/stopwatch and the OS user config dir is
// used, falling back to a temp dir.
func ResolveConfigPath(fs afero.Fs, explicit string) ConfigPath {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return ConfigPath(expandAndClean(explicit))
	}

	if raw := strings.TrimSpace(os.Getenv(EnvConfigDir)); raw != "" {
		if p, ok := configPathFromDir(fs, raw); ok {
			return p
		}
	}

	if home, err := homedir.Dir(); err == nil {
		dir := filepath.Join(home, ".config", "stopwatch")
		if p, ok := configPathFromDir(fs, dir); ok {
			return p
		}
	}

	if base, err := os.UserConfigDir(); err == nil {
		if p, ok := configPathFromDir(fs, filepath.Join(base, "stopwatch")); ok {
			return p
		}
	}

	if tmp, err := afero.TempDir(fs, "", "stopwatch-*"); err == nil {
		return ConfigPath(filepath.Join(tmp, ConfigFileName))
	}

	return ConfigPath(filepath.Join(os.TempDir(), ConfigFileName))
}

func configPathFromDir(fs afero.Fs, dir string) (ConfigPath, bool) {
	d := expandAndClean(dir)
	if err := ensureWritableDir(fs, d); err != nil {
		return "", false
	}
	return ConfigPath(filepath.Join(d, ConfigFileName)), true
}

func expandAndClean(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if expanded, err := homedir.Expand(p); err == nil {
		p = expanded
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.Clean(p)
}

// ensureWritableDir verifies directory writability without leaving files
// behind.
func ensureWritableDir(fs afero.Fs, dir string) error {
	if dir == "" {
		return errors.New("empty dir")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := afero.TempFile(fs, dir, ".stopwatch-writecheck-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	_ = fs.Remove(name)
	return nil
}
