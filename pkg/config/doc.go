// Package config handles configuration management for pkghooks.
// It layers built-in defaults, a project file (pkghooks.toml or
// pkghooks.yaml), the settings carried by the root package and PKGHOOKS_*
// environment variables, in that order.
package config
