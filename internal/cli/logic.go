package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirstats/internal/dirstat"
)

func logic(options Options, stdout, stderr io.Writer) error {
	enableProgress := options.Output != "json" &&
		!options.Debug &&
		stderr == os.Stderr &&
		isatty.IsTerminal(os.Stderr.Fd())

	reporter := &status{out: stderr, progress: enableProgress}

	opt := dirstat.CollectOptions{
		Workers:     options.Workers,
		Debug:       options.Debug,
		DebugWriter: stderr,
	}

	if !options.Quiet {
		opt.OnSkip = reporter.warn
	}

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		opt.Progress = reporter.update
	}

	// Collect waits for the progress reporter, so no redraw follows the clear below.
	stats, err := dirstat.Run(context.Background(), options.Path, opt)

	if enableProgress {
		reporter.clear()
	}

	if err != nil {
		return err
	}

	switch options.Output {
	case "json":
		return PrintJSON(stats, stdout)
	case "table":
		return PrintTable(stats, stdout)
	default:
		return PrintText(stats, stdout)
	}
}
