// ABOUTME: Tests for wellness configuration management.
// ABOUTME: Covers load, save, env overrides, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

// isolate points the config and data dirs at temp dirs and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{
		"WELLNESS_BACKEND", "WELLNESS_DATA_DIR", "WELLNESS_WEBHOOK_URL",
		"WELLNESS_LOG_LEVEL", "WELLNESS_LOG_FILE", "WELLNESS_LOG_JSON",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestGetBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"", BackendSQLite},
		{"sqlite", BackendSQLite},
		{"Badger", BackendBadger},
	}
	for _, tt := range tests {
		cfg := &Config{Backend: tt.backend}
		if got := cfg.GetBackend(); got != tt.want {
			t.Errorf("GetBackend(%q) = %q, want %q", tt.backend, got, tt.want)
		}
	}
}

func TestGetDataDir(t *testing.T) {
	home, _ := os.UserHomeDir()

	if got := (&Config{}).GetDataDir(); got != storage.DataDir() {
		t.Errorf("default GetDataDir() = %q, want %q", got, storage.DataDir())
	}
	if got := (&Config{DataDir: "/tmp/wellness-test"}).GetDataDir(); got != "/tmp/wellness-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/wellness-test")
	}
	want := filepath.Join(home, "wellness-data")
	if got := (&Config{DataDir: "~/wellness-data"}).GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/wellness", filepath.Join(home, "data/wellness")},
		{"data/wellness", "data/wellness"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected zero config (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{Backend: BackendBadger, DataDir: "/tmp/wellness", WebhookURL: "https://example.com/hook", LogLevel: "debug"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "wellness", "config.json"))
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config perms = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	if err := (&Config{Backend: BackendSQLite, LogLevel: "info"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	t.Setenv("WELLNESS_BACKEND", "badger")
	t.Setenv("WELLNESS_WEBHOOK_URL", "https://hooks.example.com/plan")
	t.Setenv("WELLNESS_LOG_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := &Config{
		Backend:    BackendBadger,
		WebhookURL: "https://hooks.example.com/plan",
		LogLevel:   "info",
		LogJSON:    true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("env overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("WELLNESS_LOG_JSON", "sometimes")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-boolean WELLNESS_LOG_JSON")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "wellness", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	dir := isolate(t)
	want := filepath.Join(dir, "wellness", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestLoggerParams(t *testing.T) {
	home, _ := os.UserHomeDir()

	p := (&Config{LogFile: "~/logs/wellness", LogLevel: "debug", LogJSON: true}).LoggerParams()
	if p.LogFileName != filepath.Join(home, "logs/wellness") || !p.LogToStderr || !p.LogFormatJSON || p.LogLevel != "debug" {
		t.Errorf("LoggerParams() = %+v", p)
	}
	if p := (&Config{}).LoggerParams(); p.LogFileName != "" || p.LogToStderr {
		t.Errorf("empty config should log to stderr only, got %+v", p)
	}
}

func TestOpenStorage(t *testing.T) {
	for _, backend := range []string{BackendSQLite, BackendBadger} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			cfg := &Config{Backend: backend, DataDir: dir}

			repo, err := cfg.OpenStorage()
			if err != nil {
				t.Fatalf("OpenStorage() failed: %v", err)
			}
			defer repo.Close()

			path, _ := StoragePath(backend, dir)
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected storage at %s: %v", path, err)
			}
		})
	}
}

func TestOpenStorageInvalidBackend(t *testing.T) {
	cfg := &Config{Backend: "markdown", DataDir: t.TempDir()}
	_, err := cfg.OpenStorage()
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("OpenStorage() error = %v, want unknown backend", err)
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("empty config JSON = %s, want {}", data)
	}
}
