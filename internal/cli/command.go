// Package cli implements the dirstats command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// Options holds the command-line configuration.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Output represents the output format (text, json or table).
	Output string
	// Workers is the number of parallel walkers (0 = default).
	Workers int
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Quiet suppresses warnings about skipped entries.
	Quiet bool
}

// CLI represents the command-line interface.
type CLI struct {
	version string
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version, stdout: os.Stdout, stderr: os.Stderr}
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"text", "json", "table"}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options Options

	cmd := &cobra.Command{
		Use:   "dirstats [flags] <directory>",
		Short: "Show basic file size statistics about a directory",
		Long: heredoc.Doc(`
			dirstats walks a directory tree and reports statistics about the sizes
			of all files found in it.

			The default output is four lines:

			  mean: <mean size in bytes>
			  median: <median size in bytes>
			  smallest file: <path>
			  largest file: <path>

			Entries that cannot be read are skipped with a warning on stderr.
		`),
		Version:       c.version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Workers < 0 {
				return fmt.Errorf("workers cannot be negative: %d", options.Workers)
			}

			options.Path = args[0]

			return logic(options, c.stdout, c.stderr)
		},
	}

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&options.Output, "output", "o", "text", "Output format: text, json or table")
	flags.IntVarP(&options.Workers, "workers", "w", 0, "Number of parallel walkers (0=default)")
	flags.BoolVarP(&options.Quiet, "quiet", "q", false, "Do not warn about skipped entries")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	return cmd
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute(args []string) error {
	cmd := c.Command()
	cmd.SetArgs(args)

	return cmd.Execute()
}
