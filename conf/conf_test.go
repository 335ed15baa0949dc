package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.ConfigDir != "config" {
		t.Errorf("expected default config_dir 'config', got %q", cfg.ConfigDir)
	}
	if cfg.Output.Path != "config/config.d.ts" {
		t.Errorf("expected default output path, got %q", cfg.Output.Path)
	}
	if cfg.Declaration.Module != "confgen" {
		t.Errorf("expected default declaration module 'confgen', got %q", cfg.Declaration.Module)
	}
	if !cfg.Declaration.IncludeHash {
		t.Error("expected include_hash to default to true")
	}
	if cfg.Watch.DebounceMS != 500 {
		t.Errorf("expected default debounce 500ms, got %d", cfg.Watch.DebounceMS)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			ConfigDir:   "config",
			Output:      OutputConfig{Path: "config/config.d.ts"},
			Declaration: DeclarationConfig{Module: "confgen", IncludeHash: true},
			Watch:       WatchConfig{DebounceMS: 500},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"empty config dir", func(c *Config) { c.ConfigDir = "" }, true},
		{"empty output path", func(c *Config) { c.Output.Path = "" }, true},
		{"empty module", func(c *Config) { c.Declaration.Module = "" }, true},
		{"module with quote", func(c *Config) { c.Declaration.Module = "bad'name" }, true},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -1 }, true},
		{"zero debounce is valid", func(c *Config) { c.Watch.DebounceMS = 0 }, false},
	}

	for _, tt := range tests {
		cfg := valid()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestSaveAndLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confgen.toml")

	cfg := Config{
		ConfigDir:   "envs",
		Output:      OutputConfig{Path: "types/config.d.ts"},
		Declaration: DeclarationConfig{Module: "my-config", IncludeHash: false},
		Log:         LogConfig{JSON: true},
		Watch:       WatchConfig{DebounceMS: 250},
	}

	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if loaded.ConfigDir != "envs" {
		t.Errorf("config_dir = %q, want envs", loaded.ConfigDir)
	}
	if loaded.Output.Path != "types/config.d.ts" {
		t.Errorf("output.path = %q", loaded.Output.Path)
	}
	if loaded.Declaration.Module != "my-config" {
		t.Errorf("declaration.module = %q", loaded.Declaration.Module)
	}
	if loaded.Declaration.IncludeHash {
		t.Error("include_hash should round-trip as false")
	}
	if !loaded.Log.JSON {
		t.Error("log.json should round-trip as true")
	}
	if loaded.Watch.DebounceMS != 250 {
		t.Errorf("watch.debounce_ms = %d", loaded.Watch.DebounceMS)
	}
}

func TestSave_RotatesBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confgen.toml")

	cfg := Config{
		ConfigDir:   "config",
		Output:      OutputConfig{Path: "config/config.d.ts"},
		Declaration: DeclarationConfig{Module: "confgen"},
	}

	for i := 0; i < 3; i++ {
		if err := Save(&cfg, path); err != nil {
			t.Fatalf("Save() #%d failed: %v", i, err)
		}
	}

	if _, err := os.Stat(path + ".back1"); err != nil {
		t.Error("expected .back1 after repeated saves")
	}
	if _, err := os.Stat(path + ".back2"); err != nil {
		t.Error("expected .back2 after repeated saves")
	}
}

func TestSave_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{} // everything empty
	if err := Save(&cfg, filepath.Join(dir, "confgen.toml")); err == nil {
		t.Error("expected Save to reject invalid config")
	}
}
