// Package filesystem provides implementations of the types.FS interface.
//
// NewOS returns the real filesystem used in production. NewAferoFS wraps an
// afero filesystem for memory-backed tests; note that afero's MemMapFs has
// no native symlink support, so symlinks are simulated and tests that need
// real link semantics should run against a temp directory instead.
package filesystem
