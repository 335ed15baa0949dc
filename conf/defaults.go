package conf

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("config_dir", "config")

	// Output defaults
	v.SetDefault("output.path", "config/config.d.ts")

	// Declaration defaults
	v.SetDefault("declaration.module", "confgen")
	v.SetDefault("declaration.source_label", "") // empty = use the config dir
	v.SetDefault("declaration.include_hash", true)

	// Logging defaults
	v.SetDefault("log.json", false)

	// Watch mode defaults
	v.SetDefault("watch.debounce_ms", 500) // coalesce editor save bursts
}
