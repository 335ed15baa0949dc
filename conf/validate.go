package conf

import (
	"strings"

	"github.com/confgen/confgen/errors"
)

// Validate checks that the configuration is usable. Every problem is
// collected so a user can fix the whole file in one pass.
func (c *Config) Validate() error {
	var problems []string

	if c.ConfigDir == "" {
		problems = append(problems, "config_dir cannot be empty")
	}
	if c.Output.Path == "" {
		problems = append(problems, "output.path cannot be empty")
	}
	if c.Declaration.Module == "" {
		problems = append(problems, "declaration.module cannot be empty")
	}
	if strings.ContainsAny(c.Declaration.Module, "'\n") {
		problems = append(problems, "declaration.module must not contain quotes or newlines")
	}
	if c.Watch.DebounceMS < 0 {
		problems = append(problems, "watch.debounce_ms must be >= 0")
	}

	if len(problems) > 0 {
		return errors.Newf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
