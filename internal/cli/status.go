package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
)

// status writes warnings and the in-place progress line to stderr.
// Both are called from walker goroutines, so writes share one lock.
type status struct {
	mu       sync.Mutex
	out      io.Writer
	progress bool
}

// warn prints a warning for a skipped entry, clearing the progress line first.
func (s *status) warn(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.progress {
		fmt.Fprint(s.out, "\r\033[2K")
	}

	fmt.Fprintf(s.out, "warning: skipping %s: %v\n", path, err)
}

// update redraws the progress line.
func (s *status) update(files, bytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := fmt.Sprintf("Scanning… %d files, %s",
		files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(s.out, "\r\033[2K%s\r", msg)
}

// clear removes the progress line.
func (s *status) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprint(s.out, "\r\033[2K\r")
}
