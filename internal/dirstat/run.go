package dirstat

import (
	"context"
	"fmt"
	"time"
)

// Run collects the files under root and aggregates their sizes.
// Either complete statistics or an error is returned, never both.
func Run(ctx context.Context, root string, opt CollectOptions) (*Statistics, error) {
	start := time.Now()

	index, skipped, err := Collect(ctx, root, opt)
	if err != nil {
		return nil, err
	}

	stats, err := Aggregate(index)
	if err != nil {
		return nil, fmt.Errorf("aggregating %q: %w", root, err)
	}

	stats.Skipped = skipped
	stats.Elapsed = time.Since(start)

	return stats, nil
}
