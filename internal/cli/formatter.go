package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirstats/internal/dirstat"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintText outputs the four statistics lines.
func PrintText(stats *dirstat.Statistics, writer io.Writer) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "mean: %.2f\n", stats.Mean)
	fmt.Fprintf(&buf, "median: %.2f\n", stats.Median)
	fmt.Fprintf(&buf, "smallest file: %s\n", stats.Smallest.Path)
	fmt.Fprintf(&buf, "largest file: %s\n", stats.Largest.Path)

	_, err := buf.WriteTo(writer)

	return err
}

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *dirstat.Statistics, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs statistics in human-readable table format.
func PrintTable(stats *dirstat.Statistics, writer io.Writer) error {
	var buf bytes.Buffer

	w := tabwriter.NewWriter(&buf, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Stats:\t\t")
	fmt.Fprintf(w, "Mean:\t%s (%.2f bytes)\n", humanize.IBytes(uint64(stats.Mean)), stats.Mean)
	fmt.Fprintf(w, "Median:\t%s (%.2f bytes)\n", humanize.IBytes(uint64(stats.Median)), stats.Median)
	fmt.Fprintf(w, "Smallest file:\t'%s'\t%s\n",
		stats.Smallest.Path, humanize.IBytes(uint64(stats.Smallest.Size))) //nolint:gosec // Sizes are never negative
	fmt.Fprintf(w, "Largest file:\t'%s'\t%s\n",
		stats.Largest.Path, humanize.IBytes(uint64(stats.Largest.Size))) //nolint:gosec // Sizes are never negative
	fmt.Fprintf(w, "Total files:\t%s\n", humanize.Comma(stats.Count))
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(stats.TotalBytes)), stats.TotalBytes) //nolint:gosec // Sizes are never negative

	if stats.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:\t%d\n", stats.Skipped)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	if err := w.Flush(); err != nil {
		return err
	}

	_, err := buf.WriteTo(writer)

	return err
}
