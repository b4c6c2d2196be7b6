// Package filesystem provides the filesystem used by frep.
//
// Everything that touches disk goes through an afero.Fs so the rename
// pipeline can run against the OS in production and an in-memory tree in
// tests. The package also owns glob expansion, which is the only place a
// pattern is turned into concrete paths.
package filesystem
