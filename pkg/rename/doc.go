// Package rename implements the rename pipeline.
//
// The pipeline takes the candidate paths of a source.Source and, one at a
// time, drops paths that do not exist, drops paths whose basename does not
// contain the search string, replaces every occurrence of the search string
// in the basename and renames the file in place:
//
//	candidates → exists? → basename contains find? → ReplaceAll → Rename
//
// Only the basename is ever rewritten; the parent directory is kept exactly
// as it was spelled. Processing stops at the first failed rename and renames
// that already happened are left in place.
package rename
