package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/wandb/wandb/stopwatch/internal/observability"
)

const (
	// Refresh interval constraints, in milliseconds.
	MinRefreshIntervalMs, MaxRefreshIntervalMs = 1, 1000

	DefaultRefreshIntervalMs = 10

	LapOrderOldestFirst = "oldest_first"
	LapOrderNewestFirst = "newest_first"

	DefaultLapOrder = LapOrderOldestFirst
)

// Keys accepted by ConfigManager.Set.
const (
	KeyRefreshIntervalMs = "refresh-interval-ms"
	KeyLapOrder          = "lap-order"
	KeyAltScreen         = "alt-screen"
)

// ConfigKeys lists the keys accepted by ConfigManager.Set.
var ConfigKeys = []string{KeyRefreshIntervalMs, KeyLapOrder, KeyAltScreen}

// Config stores the UI preferences.
//
// No timer or lap state is ever part of it.
type Config struct {
	// RefreshIntervalMs is the redraw period while the stopwatch runs.
	RefreshIntervalMs int `json:"refresh_interval_ms" yaml:"refresh_interval_ms"`

	// LapOrder is either oldest_first or newest_first.
	LapOrder string `json:"lap_order" yaml:"lap_order"`

	// AltScreen runs the UI in the terminal's alternate screen buffer.
	AltScreen bool `json:"alt_screen" yaml:"alt_screen"`
}

// ConfigPath is the location of the preferences file.
type ConfigPath string

// ConfigManager manages the preferences with thread-safe access
// and automatic persistence to disk.
//
// All setter methods save changes immediately.
type ConfigManager struct {
	mu     sync.RWMutex
	fs     afero.Fs
	path   string
	config Config

	// refreshOverride replaces the stored refresh interval for this
	// session only. Zero means no override.
	refreshOverride time.Duration

	logger *observability.CoreLogger
}

func defaultConfig() Config {
	return Config{
		RefreshIntervalMs: DefaultRefreshIntervalMs,
		LapOrder:          DefaultLapOrder,
		AltScreen:         true,
	}
}

func NewConfigManager(
	fs afero.Fs,
	path ConfigPath,
	logger *observability.CoreLogger,
) *ConfigManager {
	cm := &ConfigManager{
		fs:     fs,
		path:   string(path),
		config: defaultConfig(),
		logger: logger,
	}
	if err := cm.loadOrCreateConfig(); err != nil {
		cm.logger.CaptureWarn(
			fmt.Sprintf("config: error loading or creating: %v", err),
			"path", cm.path)
	}

	return cm
}

// loadOrCreateConfig loads the configuration from disk or stores and uses
// defaults.
//
// On a parse error the defaults stay in effect and the file is left alone.
func (cm *ConfigManager) loadOrCreateConfig() error {
	data, err := afero.ReadFile(cm.fs, cm.path)

	if os.IsNotExist(err) {
		if dir := filepath.Dir(cm.path); dir != "" {
			_ = cm.fs.MkdirAll(dir, 0o755)
		}
		return cm.save()
	}
	if err != nil {
		return err
	}

	loaded := defaultConfig()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse %s: %w", cm.path, err)
	}
	cm.config = loaded

	cm.normalizeConfig()

	return nil
}

// normalizeConfig ensures all config values are within valid ranges.
func (cm *ConfigManager) normalizeConfig() {
	cm.config.RefreshIntervalMs = clamp(
		cm.config.RefreshIntervalMs,
		MinRefreshIntervalMs,
		MaxRefreshIntervalMs,
	)

	if !isValidLapOrder(cm.config.LapOrder) {
		cm.config.LapOrder = DefaultLapOrder
	}
}

func clamp(val, minimum, maximum int) int {
	if val < minimum {
		return minimum
	}
	if val > maximum {
		return maximum
	}
	return val
}

func isValidLapOrder(order string) bool {
	return order == LapOrderOldestFirst || order == LapOrderNewestFirst
}

// save writes the current configuration to disk.
//
// Must be called while holding the lock.
func (cm *ConfigManager) save() error {
	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return err
	}

	targetPath := cm.path
	tempPath := targetPath + ".tmp"

	if err := afero.WriteFile(cm.fs, tempPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp config file: %v", err)
	}
	if err := cm.fs.Rename(tempPath, targetPath); err != nil {
		return fmt.Errorf("failed to rename tmp config file: %v", err)
	}

	return nil
}

// Path returns the on-disk config path.
func (cm *ConfigManager) Path() string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.path
}

// Snapshot returns a copy of the stored config.
//
// Session overrides are not included.
func (cm *ConfigManager) Snapshot() Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// RefreshInterval returns the effective redraw period.
func (cm *ConfigManager) RefreshInterval() time.Duration {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.refreshOverride > 0 {
		return cm.refreshOverride
	}
	return time.Duration(cm.config.RefreshIntervalMs) * time.Millisecond
}

// SetRefreshIntervalMs sets and persists the redraw period.
func (cm *ConfigManager) SetRefreshIntervalMs(ms int) error {
	if ms < MinRefreshIntervalMs || ms > MaxRefreshIntervalMs {
		return fmt.Errorf(
			"refresh interval must be between %dms and %dms, got %dms",
			MinRefreshIntervalMs, MaxRefreshIntervalMs, ms)
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.config.RefreshIntervalMs = ms
	return cm.save()
}

// OverrideRefreshInterval sets the redraw period for this session without
// writing it to disk.
func (cm *ConfigManager) OverrideRefreshInterval(d time.Duration) error {
	minimum := time.Duration(MinRefreshIntervalMs) * time.Millisecond
	maximum := time.Duration(MaxRefreshIntervalMs) * time.Millisecond
	if d < minimum || d > maximum {
		return fmt.Errorf(
			"refresh interval must be between %v and %v, got %v",
			minimum, maximum, d)
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.refreshOverride = d
	return nil
}

func (cm *ConfigManager) LapOrder() string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config.LapOrder
}

func (cm *ConfigManager) SetLapOrder(order string) error {
	if !isValidLapOrder(order) {
		return fmt.Errorf(
			"lap order must be %q or %q, got %q",
			LapOrderOldestFirst, LapOrderNewestFirst, order)
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.config.LapOrder = order
	return cm.save()
}

func (cm *ConfigManager) AltScreen() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config.AltScreen
}

func (cm *ConfigManager) SetAltScreen(enabled bool) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.config.AltScreen = enabled
	return cm.save()
}

// Set parses value for the named key and persists it.
func (cm *ConfigManager) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyRefreshIntervalMs:
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: not an integer: %q", key, value)
		}
		return cm.SetRefreshIntervalMs(ms)
	case KeyLapOrder:
		return cm.SetLapOrder(value)
	case KeyAltScreen:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: not a boolean: %q", key, value)
		}
		return cm.SetAltScreen(enabled)
	default:
		return fmt.Errorf(
			"unknown key %q (valid keys: %s)",
			key, strings.Join(ConfigKeys, ", "))
	}
}
