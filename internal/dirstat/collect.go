package dirstat

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// CollectOptions configures the directory walk.
type CollectOptions struct {
	// Workers is the number of fastwalk workers (0 = fastwalk default).
	Workers int
	// OnSkip is called for every entry that could not be read.
	OnSkip func(path string, err error)
	// Progress receives the running file and byte counts.
	Progress func(files, bytes int64)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug enables debug output.
	Debug bool
	// DebugWriter receives debug output (default os.Stderr).
	DebugWriter io.Writer
}

// logger provides conditional debug output.
// Walk callbacks run concurrently, so writes are serialized.
type logger struct {
	enabled bool
	mu      *sync.Mutex
	out     io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if !l.enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, format, args...)
}

// collector accumulates sizes from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	sizes      map[string]int64
	totalBytes int64
	skipped    int64
}

func newCollector() *collector {
	return &collector{sizes: make(map[string]int64)}
}

// add records a file. Paths are unique per walk so no entry is overwritten.
func (c *collector) add(path string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sizes[path] = size
	c.totalBytes += size
}

// addSkip counts a skipped entry and reports it. Reports are serialized
// so hooks need no locking of their own.
func (c *collector) addSkip(path string, err error, hook func(string, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.skipped++

	if hook != nil {
		hook(path, err)
	}
}

func (c *collector) counts() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.sizes)), c.totalBytes
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
// The returned channel is closed once no further hook call can happen.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) <-chan struct{} {
	done := make(chan struct{})

	if hook == nil {
		close(done)

		return done
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.counts())
			case <-ctx.Done():
				return
			}
		}
	}()

	return done
}

// resolveRoot returns the absolute form of root after checking it is an existing, readable directory.
func resolveRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}

	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return "", fmt.Errorf("%w: resolving absolute path %q: %w", ErrInvalidArgument, root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q: %w", ErrNotFound, root, err)
		}

		return "", fmt.Errorf("%w: accessing path %q: %w", ErrInvalidArgument, root, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%w: path %q is not a directory", ErrInvalidArgument, root)
	}

	dir, err := os.Open(abs)
	if err != nil {
		return "", fmt.Errorf("%w: directory %q is not readable: %w", ErrInvalidArgument, root, err)
	}

	_ = dir.Close()

	return abs, nil
}

// fileSize returns the size to record for d and whether it should be recorded at all.
// Symlinks count when their target is a regular file, using the link's own size.
func fileSize(path string, d fs.DirEntry) (int64, bool, error) {
	switch {
	case d.Type().IsRegular():
	case d.Type()&fs.ModeSymlink != 0:
		target, err := os.Stat(path)
		if err != nil || !target.Mode().IsRegular() {
			return 0, false, nil //nolint:nilerr // Dangling links are not files
		}
	default:
		return 0, false, nil
	}

	info, err := d.Info()
	if err != nil {
		return 0, false, err
	}

	return info.Size(), true, nil
}

// Collect walks the tree at root and returns the size of every file found.
// Unreadable entries are skipped and reported through opt.OnSkip. The returned
// count is the number of skipped entries.
//
// The walk can be cancelled via ctx, in which case no index is returned.
func Collect(ctx context.Context, root string, opt CollectOptions) (FileSizeIndex, int64, error) {
	if opt.DebugWriter == nil {
		opt.DebugWriter = os.Stderr
	}

	log := logger{enabled: opt.Debug, mu: &sync.Mutex{}, out: opt.DebugWriter}

	abs, err := resolveRoot(root)
	if err != nil {
		return FileSizeIndex{}, 0, err
	}

	collector := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)

	reporterDone := startProgressReporter(ctx, collector, opt.Progress, opt.ProgressInterval)

	defer func() {
		cancel()
		<-reporterDone
	}()

	skip := func(path string, err error) {
		log.printf("[debug]: skipping %s: %v\n", path, err)
		collector.addSkip(path, err, opt.OnSkip)
	}

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Workers,
	}

	log.printf("[debug]: walking %s\n", abs)

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, abs, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			skip(path, err)

			return nil
		}

		if d.IsDir() {
			return nil
		}

		size, ok, err := fileSize(path, d)
		if err != nil {
			skip(path, err)

			return nil
		}

		if ok {
			collector.add(path, size)
		}

		return nil
	})
	if walkErr != nil {
		return FileSizeIndex{}, 0, fmt.Errorf("walking %q: %w", abs, walkErr)
	}

	log.printf("[debug]: collected %d files, skipped %d\n", len(collector.sizes), collector.skipped)

	// All workers are done; the map has a single owner from here on.
	return FileSizeIndex{sizes: collector.sizes}, collector.skipped, nil
}
