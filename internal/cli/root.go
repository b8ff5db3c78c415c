// Package cli implements the kpalwiki command-line interface: the
// presentation layer driving the page store.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	assumeYes bool
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "kpalwiki" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kpalwiki",
		Short: "A minimal personal wiki",
		Long: "kpalwiki stores titled markdown pages locally, with substring\n" +
			"search, JSON export/import, and markdown rendering.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: json or sqlite (default: json)")
	root.PersistentFlags().BoolVarP(&flags.assumeYes, "yes", "y", false, "skip confirmation prompts")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newCreateCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newRenameCmd())
	root.AddCommand(newDuplicateCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newImportMdCmd())
	root.AddCommand(newResetCmd())

	return root
}

// userErrors are the validation sentinels a user can trigger with bad
// input. Everything else that reaches Execute is a system error.
var userErrors = []error{
	types.ErrEmptyTitle,
	types.ErrDuplicateTitle,
	types.ErrNotFound,
	types.ErrInvalidImport,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, sentinel := range userErrors {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// newLogger builds the diagnostic logger. Diagnostics go to stderr and
// stay out of command output.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// confirm prompts the user and reports whether they answered yes. The
// --yes flag skips the prompt. A declined confirmation is a no-op for
// the caller, not an error.
func confirm(cmd *cobra.Command, prompt string) bool {
	if flags.assumeYes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
