package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confgen/confgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "confgen",
	Short: "Generate TypeScript declarations from environment configuration files",
	Long: `confgen reads the per-environment configuration documents in a config
directory, validates that every environment defines the same structure,
and synthesizes a TypeScript module-augmentation declaration whose
property types are unions of the literal values observed across
environments.

Available commands:
  generate - Generate the declaration file
  check    - Verify the declaration is up to date (CI)
  watch    - Regenerate whenever a config file changes
  config   - Inspect and manage confgen's own configuration
  version  - Show version information

Examples:
  confgen generate                     # Generate using confgen.toml settings
  confgen generate -c config -o config/config.d.ts
  confgen check                        # Exit non-zero if out of date
  confgen watch                        # Keep the declaration fresh while editing`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Root().PersistentFlags().GetBool("json")
		verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(GenerateCmd)
	rootCmd.AddCommand(CheckCmd)
	rootCmd.AddCommand(WatchCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(VersionCmd)
}

// Execute runs the root command
func Execute() error {
	defer logger.Cleanup()
	return rootCmd.Execute()
}
