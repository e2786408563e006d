// Command dirstats reports file size statistics for a directory tree.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirstats/internal/cli"
)

// Version is set at build time.
//
//nolint:gochecknoglobals // Set by ldflags
var version = "unknown - unofficial build"

func main() {
	if err := cli.New(version).Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "dirstats: %v\n", err)
		os.Exit(1)
	}
}
