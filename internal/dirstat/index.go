package dirstat

import (
	"maps"
	"slices"
	"strings"
)

// FileStat represents a single file path and size.
type FileStat struct {
	// Path is the absolute file path.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// FileSizeIndex maps absolute file paths to their size in bytes.
// It is immutable once built.
type FileSizeIndex struct {
	sizes map[string]int64
}

// NewFileSizeIndex builds an index from a copy of sizes.
func NewFileSizeIndex(sizes map[string]int64) FileSizeIndex {
	return FileSizeIndex{sizes: maps.Clone(sizes)}
}

// Len returns the number of files in the index.
func (x FileSizeIndex) Len() int {
	return len(x.sizes)
}

// Size returns the recorded size of path.
func (x FileSizeIndex) Size(path string) (int64, bool) {
	size, ok := x.sizes[path]

	return size, ok
}

// Entries returns all files ordered by path.
func (x FileSizeIndex) Entries() []FileStat {
	entries := make([]FileStat, 0, len(x.sizes))
	for path, size := range x.sizes {
		entries = append(entries, FileStat{Path: path, Size: size})
	}

	slices.SortFunc(entries, func(a, b FileStat) int {
		return strings.Compare(a.Path, b.Path)
	})

	return entries
}

// Sizes returns all sizes in ascending order.
func (x FileSizeIndex) Sizes() []int64 {
	sizes := slices.Collect(maps.Values(x.sizes))
	slices.Sort(sizes)

	return sizes
}

// Equal reports whether both indexes hold the same (path, size) pairs.
func (x FileSizeIndex) Equal(other FileSizeIndex) bool {
	return maps.Equal(x.sizes, other.sizes)
}
