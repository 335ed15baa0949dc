package conf

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/confgen/confgen/errors"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying a config file
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete oldest backup")
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// Save writes the configuration to a TOML file, rotating backups first.
func Save(c *Config, configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(tomlView(c))
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write config to %s", configPath)
	}

	return nil
}

// SaveDefault writes a starter confgen.toml with all defaults filled in.
func SaveDefault(configPath string) error {
	v := GetViper()
	cfg, err := LoadWithViper(v)
	if err != nil {
		return err
	}
	return Save(cfg, configPath)
}

// tomlView rebuilds the config as plain maps keyed by the mapstructure
// names, so the saved file round-trips through Load.
func tomlView(c *Config) map[string]interface{} {
	return map[string]interface{}{
		"config_dir": c.ConfigDir,
		"output": map[string]interface{}{
			"path": c.Output.Path,
		},
		"declaration": map[string]interface{}{
			"module":       c.Declaration.Module,
			"source_label": c.Declaration.SourceLabel,
			"include_hash": c.Declaration.IncludeHash,
		},
		"log": map[string]interface{}{
			"json": c.Log.JSON,
		},
		"watch": map[string]interface{}{
			"debounce_ms": c.Watch.DebounceMS,
		},
	}
}
