// Package dirstat computes file size statistics for a directory tree.
//
// Collect walks the tree using fastwalk for parallel traversal and builds a
// FileSizeIndex of absolute path to size. Aggregate reduces the index into the
// mean, median, smallest and largest file. Run chains the two.
package dirstat
