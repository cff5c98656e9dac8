package config

import (
	"fmt"

	"github.com/arthur-debert/pkghooks/pkg/bundles"
)

// Interactive modes
const (
	ModeAuto     = "auto"
	ModeDefaults = "defaults"
	ModeYes      = "yes"
	ModeNo       = "no"
)

// Config is the resolved pkghooks configuration
type Config struct {
	RootDir     string      `koanf:"root_dir"`
	ConfigDir   string      `koanf:"config_dir"`
	Disabled    bool        `koanf:"disabled"`
	Registry    Registry    `koanf:"registry"`
	Interactive Interactive `koanf:"interactive"`
}

// Registry configures the bundle registry file
type Registry struct {
	Format string `koanf:"format"`
	Merge  string `koanf:"merge"`
}

// Interactive configures confirmation prompts
type Interactive struct {
	Mode string `koanf:"mode"`
}

// Codec returns the registry codec for the configured format
func (c *Config) Codec() (bundles.Codec, error) {
	return bundles.CodecFor(c.Registry.Format)
}

// MergePolicy returns the configured merge policy
func (c *Config) MergePolicy() (bundles.MergePolicy, error) {
	return bundles.ParsePolicy(c.Registry.Merge)
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	if _, err := c.Codec(); err != nil {
		return err
	}
	if _, err := c.MergePolicy(); err != nil {
		return err
	}
	switch c.Interactive.Mode {
	case ModeAuto, ModeDefaults, ModeYes, ModeNo:
	default:
		return fmt.Errorf("unknown interactive mode %q", c.Interactive.Mode)
	}
	return nil
}
