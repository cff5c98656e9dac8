// Package types defines the core types and interfaces shared across pkghooks.
// This includes the host-facing capabilities (FS, IO, Prompter) and the
// lifecycle data handed over by the package manager (Event, Package, Hook).
package types
