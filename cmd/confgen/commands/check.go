package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/confgen/confgen/declaration"
	"github.com/confgen/confgen/display"
	"github.com/confgen/confgen/errors"
	"github.com/confgen/confgen/generate"
)

// CheckCmd verifies the generated declaration is up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if the generated declaration is up to date",
	Long: `Check if the generated declaration matches the current config files.

This command regenerates the declaration to a temporary file and compares
it with the existing one, ignoring the hash comment that changes with
formatting-neutral edits.

Exit codes:
  0 - Declaration is up to date
  1 - Declaration is out of date or missing

Examples:
  confgen check                      # Check the configured declaration`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&generateConfigDir, "config-dir", "c", "", "Directory holding the environment config files")
	CheckCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Declaration output path")
	CheckCmd.Flags().StringVar(&generateModule, "module", "", "Module identity the declaration augments")
}

// checkResult is the JSON shape of a check run.
type checkResult struct {
	UpToDate   bool   `json:"up_to_date"`
	OutputPath string `json:"output_path"`
	Reason     string `json:"reason,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	jsonOutput := display.ShouldOutputJSON(cmd)

	opts, err := resolveOptions(cmd, generate.NopEmitter{})
	if err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "confgen-check-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	expectedPath := opts.OutputPath
	opts.OutputPath = filepath.Join(tempDir, "config.d.ts")

	session := generate.NewSession(opts)
	if _, err := session.Generate(true); err != nil {
		return err
	}

	fresh, err := os.ReadFile(opts.OutputPath)
	if err != nil {
		return errors.Wrap(err, "failed to read regenerated declaration")
	}

	existing, err := os.ReadFile(expectedPath)
	if os.IsNotExist(err) {
		return reportCheck(jsonOutput, checkResult{
			OutputPath: expectedPath,
			Reason:     "declaration file does not exist",
		})
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", expectedPath)
	}

	if declaration.StripHashLine(string(existing)) != declaration.StripHashLine(string(fresh)) {
		return reportCheck(jsonOutput, checkResult{
			OutputPath: expectedPath,
			Reason:     "declaration content differs from config files",
		})
	}

	return reportCheck(jsonOutput, checkResult{UpToDate: true, OutputPath: expectedPath})
}

func reportCheck(jsonOutput bool, result checkResult) error {
	if jsonOutput {
		if err := display.OutputJSON(result); err != nil {
			return err
		}
	} else if result.UpToDate {
		fmt.Println("✓ Declaration is up to date")
	} else {
		fmt.Printf("✗ Declaration is out of date: %s\n", result.Reason)
	}

	if !result.UpToDate {
		return errors.New("declaration is out of date - run 'confgen generate' to update")
	}
	return nil
}
