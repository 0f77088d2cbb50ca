// Package main is the entry point for the todobar CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/ops"
	"github.com/wbartel/todobar/internal/statusbar"
	"github.com/wbartel/todobar/internal/storage"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Optional .env next to the bar config, for TODOBAR_STATE_FILE etc.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(cli.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "todobar",
	Short: "todobar - a to-do list for your status bar",
	Long: `todobar owns a small persistent to-do list and renders it for a
desktop status bar. The bar polls "todobar status" for its display and
dispatches click events to the mutating subcommands.

State lives in a single file (TODOBAR_STATE_FILE overrides the default
under ~/.local/share/todobar/). Each invocation is a short-lived process;
overlapping invocations are serialized through a lock file.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// rootSignal is the --signal flag shared by all mutating commands.
var rootSignal int

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("todobar version {{.Version}}\n")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().IntVar(&rootSignal, "signal", 0,
		"waybar realtime signal to fire after a change (overrides config)")

	// Flag parse failures are user errors (exit 1), not internal ones.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.ValidationError{Message: err.Error()}
	})
}

// exactArgs is cobra.ExactArgs with the failure typed as a user error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &cli.ValidationError{
				Message: fmt.Sprintf("%s requires exactly %d argument(s), got %d", cmd.Name(), n, len(args)),
			}
		}
		return nil
	}
}

// minimumArgs is cobra.MinimumNArgs with the failure typed as a user error.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return &cli.ValidationError{
				Message: fmt.Sprintf("%s requires at least %d argument(s), got %d", cmd.Name(), n, len(args)),
			}
		}
		return nil
	}
}

// parseID parses a task id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, &cli.ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("%q is not a task id", arg),
		}
	}
	return id, nil
}

// openStore builds the configured store. The returned closer must be
// called before exit (it is a no-op for the file backend).
func openStore(cfg *storage.Config) (ops.Store, func(), error) {
	statePath, err := storage.DefaultStatePath()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Backend == "sqlite" {
		dbPath := cfg.DBPath
		if dbPath == "" {
			dbPath = storage.DefaultDBPath(statePath)
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		s, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}

	return storage.NewFileStore(statePath), func() {}, nil
}

// loadSetup loads the user config and opens the matching store.
func loadSetup() (*storage.Config, ops.Store, func(), error) {
	cfg, err := storage.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	s, closer, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, s, closer, nil
}

// notifyBar fires the waybar refresh signal after a successful mutation.
// The flag wins over the config value.
func notifyBar(cfg *storage.Config) {
	sig := cfg.Signal
	if rootSignal != 0 {
		sig = rootSignal
	}
	statusbar.Refresh(sig)
}
