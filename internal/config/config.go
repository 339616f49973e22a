// ABOUTME: Wellness configuration management with backend selection.
// ABOUTME: JSON file settings, WELLNESS_* environment overrides and the storage factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/logging"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

// Storage backend names.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Config stores wellness tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "badger".
	Backend string `json:"backend,omitempty" env:"WELLNESS_BACKEND"`

	// DataDir is the root directory for data storage.
	// SQLite puts wellness.db here. Badger puts its kv/ directory here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/wellness.
	DataDir string `json:"data_dir,omitempty" env:"WELLNESS_DATA_DIR"`

	// WebhookURL receives generated plans from `wellness share --webhook`.
	WebhookURL string `json:"webhook_url,omitempty" env:"WELLNESS_WEBHOOK_URL"`

	LogLevel string `json:"log_level,omitempty" env:"WELLNESS_LOG_LEVEL"`
	LogFile  string `json:"log_file,omitempty" env:"WELLNESS_LOG_FILE"`
	LogJSON  bool   `json:"log_json,omitempty" env:"WELLNESS_LOG_JSON"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// LoggerParams maps the logging settings onto logging.Setup parameters.
func (c *Config) LoggerParams() logging.LoggerSetupParams {
	return logging.LoggerSetupParams{
		LogFileName:   ExpandPath(c.LogFile),
		LogToStderr:   c.LogFile != "",
		LogLevel:      c.LogLevel,
		LogFormatJSON: c.LogJSON,
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// StoragePath returns where the given backend keeps its data under dataDir.
func StoragePath(backend, dataDir string) (string, error) {
	switch backend {
	case BackendSQLite:
		return filepath.Join(dataDir, storage.DBFileName), nil
	case BackendBadger:
		return filepath.Join(dataDir, storage.KVDirName), nil
	default:
		return "", fmt.Errorf("unknown backend: %q", backend)
	}
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir())
}

// OpenBackend opens the named backend rooted at dataDir.
func OpenBackend(backend, dataDir string) (storage.Repository, error) {
	path, err := StoragePath(backend, dataDir)
	if err != nil {
		return nil, err
	}
	if backend == BackendBadger {
		return storage.OpenKV(path)
	}
	return storage.Open(path)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "wellness", "config.json")
}

// Load reads config from disk and applies WELLNESS_* environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk. Environment overrides are not persisted
// separately; whatever the struct holds is written.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
