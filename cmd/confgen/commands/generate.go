package commands

import (
	"github.com/spf13/cobra"

	"github.com/confgen/confgen/conf"
	"github.com/confgen/confgen/display"
	"github.com/confgen/confgen/generate"
)

var (
	generateConfigDir string
	generateOutput    string
	generateModule    string
	generateForce     bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the TypeScript declaration from config files",
	Long: `Generate the TypeScript declaration from the per-environment config files.

Generation is skipped when the content hash of the config files matches
the hash embedded in the existing declaration. Use --force to regenerate
unconditionally.

If the environments disagree on structure, generation aborts and every
mismatched property is reported; nothing is written.

Examples:
  confgen generate                         # Use confgen.toml settings
  confgen generate -c config               # Explicit config directory
  confgen generate -o types/config.d.ts    # Explicit output path
  confgen generate --module my-app-config  # Module identity to augment
  confgen generate --force                 # Ignore the change-detection gate`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateConfigDir, "config-dir", "c", "", "Directory holding the environment config files")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Declaration output path")
	GenerateCmd.Flags().StringVar(&generateModule, "module", "", "Module identity the declaration augments")
	GenerateCmd.Flags().BoolVar(&generateForce, "force", false, "Regenerate even if the content hash is unchanged")
}

// resolveOptions layers explicit flags over the resolved tool configuration.
func resolveOptions(cmd *cobra.Command, progress generate.ProgressEmitter) (generate.Options, error) {
	cfg, err := conf.Load()
	if err != nil {
		return generate.Options{}, err
	}

	opts := generate.FromConfig(cfg, progress)
	if generateConfigDir != "" {
		opts.ConfigDir = generateConfigDir
	}
	if generateOutput != "" {
		opts.OutputPath = generateOutput
	}
	if generateModule != "" {
		opts.Module = generateModule
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	jsonOutput := display.ShouldOutputJSON(cmd)

	var progress generate.ProgressEmitter
	if jsonOutput {
		progress = generate.NopEmitter{}
	} else {
		progress = generate.NewCLIEmitter()
	}

	opts, err := resolveOptions(cmd, progress)
	if err != nil {
		return err
	}

	session := generate.NewSession(opts)
	result, err := session.Generate(generateForce)
	if err != nil {
		return err
	}

	if jsonOutput {
		return display.OutputJSON(result)
	}
	return nil
}
