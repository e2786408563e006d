package dirstat

import "time"

// Statistics holds the summary of file sizes under a directory.
// It is built once by Aggregate and must be treated as read-only.
type Statistics struct {
	// Mean is the arithmetic mean of all file sizes.
	Mean float64 `json:"mean"`
	// Median is the median of all file sizes.
	Median float64 `json:"median"`
	// Smallest is the file with the smallest size.
	Smallest FileStat `json:"smallest"`
	// Largest is the file with the largest size.
	Largest FileStat `json:"largest"`
	// Count is the number of files analyzed.
	Count int64 `json:"count"`
	// TotalBytes is the cumulative size of all files.
	TotalBytes int64 `json:"total_bytes"`
	// Skipped is the number of entries that could not be read.
	Skipped int64 `json:"skipped"`
	// Elapsed is the total time taken for analysis.
	Elapsed time.Duration `json:"elapsed"`
	// Index is the source index the statistics were derived from.
	Index FileSizeIndex `json:"-"`
}

// Aggregate derives the statistics of index.
// On equal sizes, the lexicographically smallest path is picked as smallest and largest.
func Aggregate(index FileSizeIndex) (*Statistics, error) {
	entries := index.Entries()
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	smallest, largest := entries[0], entries[0]

	var total int64

	for _, e := range entries {
		total += e.Size

		// Strict comparison keeps the first path in sorted order on ties.
		if e.Size < smallest.Size {
			smallest = e
		}

		if e.Size > largest.Size {
			largest = e
		}
	}

	return &Statistics{
		Mean:       float64(total) / float64(len(entries)),
		Median:     median(index.Sizes()),
		Smallest:   smallest,
		Largest:    largest,
		Count:      int64(len(entries)),
		TotalBytes: total,
		Index:      index,
	}, nil
}

// median returns the median of the ascending, non-empty slice sizes.
func median(sizes []int64) float64 {
	mid := len(sizes) / 2
	if len(sizes)%2 == 1 {
		return float64(sizes[mid])
	}

	return (float64(sizes[mid-1]) + float64(sizes[mid])) / 2
}
