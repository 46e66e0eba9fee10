// Package cli implements the wordscatter command-line interface.
//
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library. The main commands are:
//   - generate: scatter a word list onto a canvas and write SVG/PNG/PDF
//   - serve: run an HTTP server that renders posted word lists
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordscatter/pkg/buildinfo"
)

// Execute runs the wordscatter CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "wordscatter",
		Short:        "wordscatter scatters words onto a canvas as a vector image",
		Long:         `wordscatter places a list of words or emoji onto a fixed-size canvas so that no two labels overlap, and writes the result as SVG (or PNG/PDF).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
