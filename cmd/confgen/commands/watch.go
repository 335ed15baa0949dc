package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/confgen/confgen/conf"
	"github.com/confgen/confgen/generate"
	"github.com/confgen/confgen/logger"
)

// WatchCmd regenerates the declaration whenever a config file changes
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the declaration whenever config files change",
	Long: `Watch the config directory and regenerate the declaration after changes.

File events are debounced so editor save bursts trigger a single
regeneration. A structural inconsistency is reported but does not stop
the watcher; fixing the config files triggers the next attempt.

Press Ctrl-C to stop.

Examples:
  confgen watch                      # Watch the configured directory
  confgen watch -c config            # Watch an explicit directory`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringVarP(&generateConfigDir, "config-dir", "c", "", "Directory holding the environment config files")
	WatchCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Declaration output path")
	WatchCmd.Flags().StringVar(&generateModule, "module", "", "Module identity the declaration augments")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load()
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, generate.NewCLIEmitter())
	if err != nil {
		return err
	}

	// Each regeneration gets a fresh session so the once-per-session skip
	// never suppresses a change-triggered run. The hash gate still filters
	// no-op rewrites.
	regenerate := func() error {
		session := generate.NewSession(opts)
		if _, err := session.Generate(false); err != nil {
			// Inconsistent or unreadable config files are a state the user
			// is about to fix; keep watching.
			logger.Errorw("Regeneration failed",
				logger.FieldConfigDir, opts.ConfigDir,
				logger.FieldError, err)
			return nil
		}
		return nil
	}

	if err := regenerate(); err != nil {
		return err
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	watcher, err := generate.NewWatcher(opts.ConfigDir, debounce, regenerate)
	if err != nil {
		return err
	}
	watcher.Start()
	defer watcher.Stop()

	pterm.Printf("Watching %s for changes (Ctrl-C to stop)\n", pterm.LightCyan(opts.ConfigDir))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	pterm.Println("Stopping watcher")
	return nil
}
