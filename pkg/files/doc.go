// Package files materializes package manifests on disk and removes them.
//
// Writes are interactive: a file that already exists is only replaced after
// the user agrees (default: no). Removal asks once for the whole manifest
// (default: yes) and ignores files that are already gone, so uninstalling
// twice is harmless.
package files
