// Package filesystem provides filesystem implementations for pkghooks.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used at runtime and an afero-backed one used in tests.
package filesystem
