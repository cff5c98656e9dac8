package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/logging"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: PKGHOOKS_REGISTRY__FORMAT=yaml sets registry.format.
const EnvPrefix = "PKGHOOKS_"

// SettingsHook is the hook name under which the root package carries
// pkghooks settings rather than an action.
const SettingsHook = "config"

// Root package extra keys
const (
	ExtraRootDir   = "root-dir"
	ExtraConfigDir = "config-dir"
)

var projectFiles = []struct {
	name   string
	parser koanf.Parser
}{
	{"pkghooks.toml", toml.Parser()},
	{"pkghooks.yaml", yaml.Parser()},
	{"pkghooks.yml", yaml.Parser()},
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the sources of Load
type LoadOptions struct {
	// WorkDir is searched for a project file. Defaults to the current directory.
	WorkDir string

	// Root is the root package, whose extra section may carry settings
	Root *types.Package

	// SkipProject ignores project files
	SkipProject bool

	// SkipEnv ignores PKGHOOKS_* variables
	SkipEnv bool
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipProject: true, SkipEnv: true})
	if err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	return cfg
}

// Load resolves the configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project file
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, pf := range projectFiles {
		if opts.SkipProject {
			break
		}
		path := filepath.Join(workDir, pf.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), pf.parser); err != nil {
			return nil, perrors.Wrapf(err, perrors.ErrConfigParse, "failed to load %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project configuration")
		break
	}

	// 3. Root package settings
	if opts.Root != nil {
		settings, err := rootSettings(opts.Root)
		if err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(settings, "."), nil); err != nil {
			return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load root package settings")
		}
	}

	// 4. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
			return strings.ReplaceAll(key, "__", ".")
		}), nil)
		if err != nil {
			return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigValid, "invalid configuration")
	}
	return &cfg, nil
}

// rootSettings extracts the settings carried by the root package:
// extra.root-dir, extra.config-dir and the "config" entry of its hooks.
func rootSettings(root *types.Package) (map[string]interface{}, error) {
	settings := map[string]interface{}{}

	for _, hook := range root.Hooks {
		if hook.Action != SettingsHook || hook.Args == nil {
			continue
		}
		var m map[string]interface{}
		if err := hook.Args.Decode(&m); err != nil {
			return nil, perrors.Wrapf(err, perrors.ErrConfigParse,
				"settings of root package %s must be a mapping", root.Name)
		}
		for key, value := range m {
			settings[normalizeKey(key)] = value
		}
	}

	if dir := root.ExtraString(ExtraRootDir, ""); dir != "" {
		settings["root_dir"] = dir
	}
	if dir := root.ExtraString(ExtraConfigDir, ""); dir != "" {
		settings["config_dir"] = dir
	}
	return settings, nil
}

// normalizeKey accepts the dashed spelling used in package documents
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}
