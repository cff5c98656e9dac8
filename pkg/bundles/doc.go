// Package bundles maintains the generated bundle registry: a file listing, for
// each component identifier, the environments it is enabled in.
//
// Packages register their bundles on install and update, and unregister them
// on uninstall. Every change is a read-merge-write of the whole file through
// a Store; the file is regenerated deterministically by a Codec (php, yaml,
// toml or xml) and any code cache for it is invalidated afterwards.
package bundles
