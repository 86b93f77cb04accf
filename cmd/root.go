// Package cmd implements the CLI command structure for taskwell.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/config"
	"github.com/taskwell/taskwell/internal/editor"
	"github.com/taskwell/taskwell/internal/logging"
	"github.com/taskwell/taskwell/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "taskwell",
	Short: "A local personal task list",
	Long: `taskwell keeps a small list of tasks (title, due date, description,
done flag) in a local store and lets you add, edit, filter, sort, and
complete them from the command line or a terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// setup loads config, builds the logger, and opens an editor over the
// configured repository. The returned closer releases backend resources.
func setup() (*config.Config, *log.Logger, *editor.Editor, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	repo, closer, err := openRepository(cfg, logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ed, err := editor.New(repo, editor.WithLogger(logger))
	if err != nil {
		closer()
		return nil, nil, nil, nil, err
	}
	return cfg, logger, ed, closer, nil
}

// openRepository builds the repository selected by the config.
func openRepository(cfg *config.Config, logger *log.Logger) (store.Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		repo, err := store.NewSQLite(cfg.DataPath())
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return repo, func() { repo.Close() }, nil
	case config.BackendMemory:
		return store.NewMemory(), func() {}, nil
	default:
		return store.NewFile(cfg.DataPath(), logger), func() {}, nil
	}
}
