// Package testutil provides utilities for testing frep components.
//
// Key components:
//   - CreateFile / CreateFiles: populate a real temporary directory
//   - NewMemoryFS / WriteMemoryFiles: in-memory afero trees for fast tests
//   - MockFS: an afero.Fs whose Rename is driven by testify/mock
//
// Usage guidelines:
//   - Prefer the memory filesystem for pipeline logic
//   - Use real temp directories for end to end command tests
//   - All test data should be defined inline, not in external files
package testutil
