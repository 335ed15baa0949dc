// Package conf holds confgen's own runtime configuration: where the
// environment documents live, where the declaration goes, and how the tool
// itself behaves. This is configuration *about* the tool; the environment
// documents themselves are the loader package's concern.
package conf

// Config represents the core confgen configuration
type Config struct {
	ConfigDir   string            `mapstructure:"config_dir"` // directory holding the per-environment documents
	Output      OutputConfig      `mapstructure:"output"`
	Declaration DeclarationConfig `mapstructure:"declaration"`
	Log         LogConfig         `mapstructure:"log"`
	Watch       WatchConfig       `mapstructure:"watch"`
}

// OutputConfig configures where the generated declaration is written
type OutputConfig struct {
	Path string `mapstructure:"path"` // declaration file path (default: config/config.d.ts)
}

// DeclarationConfig configures the emitted declaration envelope
type DeclarationConfig struct {
	Module      string `mapstructure:"module"`       // module identity being augmented; must match the consumer's import name
	SourceLabel string `mapstructure:"source_label"` // override for the "Generated from:" header line (empty = config dir)
	IncludeHash bool   `mapstructure:"include_hash"` // embed the content hash used by the change-detection gate
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON logs instead of console output
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"` // quiet period after a file event before regenerating (default: 500)
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
