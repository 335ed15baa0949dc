package generate

import (
	"strings"

	"github.com/pterm/pterm"
)

// ProgressEmitter receives generation milestones for user-facing output.
// Logging stays on the structured logger; this interface is purely the
// human/machine-readable progress surface.
//
// Implementations:
//   - CLIEmitter: pretty-printed terminal output using pterm
//   - NopEmitter: discards everything (tests, library callers)
type ProgressEmitter interface {
	// EmitStage announces a pipeline stage (loading, validating, emitting).
	EmitStage(stage, message string)

	// EmitWritten announces a freshly written declaration.
	EmitWritten(path string, environments []string, hash string)

	// EmitSkipped announces that generation was skipped and why.
	EmitSkipped(path, reason string)

	// EmitError announces a failed stage.
	EmitError(stage string, err error)
}

// CLIEmitter outputs pretty-printed progress to the terminal using pterm
type CLIEmitter struct{}

// NewCLIEmitter creates a progress emitter for terminal output
func NewCLIEmitter() *CLIEmitter {
	return &CLIEmitter{}
}

func (e *CLIEmitter) EmitStage(stage, message string) {
	pterm.Printf("%s %s: %s\n", pterm.LightCyan("▸"), stage, message)
}

func (e *CLIEmitter) EmitWritten(path string, environments []string, hash string) {
	pterm.Printf("✓ Generated %s (environments: %s)\n",
		pterm.Green(path), strings.Join(environments, ", "))
	if hash != "" {
		pterm.Printf("  hash %s\n", pterm.Gray(shortHash(hash)))
	}
}

func (e *CLIEmitter) EmitSkipped(path, reason string) {
	pterm.Printf("• %s up to date (%s)\n", path, reason)
}

func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.Printf("Error in %s: %v\n", stage, err)
}

// NopEmitter discards all progress output
type NopEmitter struct{}

func (NopEmitter) EmitStage(string, string)             {}
func (NopEmitter) EmitWritten(string, []string, string) {}
func (NopEmitter) EmitSkipped(string, string)           {}
func (NopEmitter) EmitError(string, error)              {}

func shortHash(hash string) string {
	if len(hash) >= 12 {
		return hash[:12]
	}
	return hash
}

var _ ProgressEmitter = (*CLIEmitter)(nil)
var _ ProgressEmitter = NopEmitter{}
