package installer

import (
	"fmt"

	"github.com/arthur-debert/pkghooks/pkg/actions"
	"github.com/arthur-debert/pkghooks/pkg/bundles"
	"github.com/arthur-debert/pkghooks/pkg/config"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/filesystem"
	"github.com/arthur-debert/pkghooks/pkg/logging"
	"github.com/arthur-debert/pkghooks/pkg/paths"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/rs/zerolog"
)

// Handler processes one host event
type Handler func(event types.Event) error

// Options configures a new Installer
type Options struct {
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS

	// Actions defaults to actions.DefaultRegistry()
	Actions *actions.Registry

	// WorkDir is the directory the project layout is resolved from.
	// Defaults to the current directory.
	WorkDir string

	// Config, when set, is used as is and Activate does not load any
	// configuration.
	Config *config.Config

	// SkipEnv ignores PKGHOOKS_* variables when loading configuration
	SkipEnv bool

	// BundleOptions are passed to the bundle registry store
	BundleOptions []bundles.StoreOption
}

// Installer dispatches host events to actions
type Installer struct {
	// Enabled is true between Activate and Deactivate
	Enabled bool

	io      types.IO
	fs      types.FS
	actions *actions.Registry
	config  *config.Config
	paths   *paths.Paths
	opts    Options
	logger  zerolog.Logger
}

// New creates an inactive Installer
func New(opts Options) *Installer {
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Actions == nil {
		opts.Actions = actions.DefaultRegistry()
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	return &Installer{
		fs:      opts.FileSystem,
		actions: opts.Actions,
		opts:    opts,
		logger:  logging.GetLogger("installer"),
	}
}

// Activate enables the installer for a host session. Settings are read from
// the root package (extra.root-dir, extra.config-dir and the "config" entry
// of its hook section) on top of the project file and environment.
func (i *Installer) Activate(root *types.Package, io types.IO) error {
	cfg := i.opts.Config
	if cfg == nil {
		loaded, err := config.Load(config.LoadOptions{
			WorkDir: i.opts.WorkDir,
			Root:    root,
			SkipEnv: i.opts.SkipEnv,
		})
		if err != nil {
			return err
		}
		cfg = loaded
	}

	i.Enabled = true
	i.io = io
	i.config = cfg
	i.paths = paths.New(i.opts.WorkDir, cfg.RootDir, cfg.ConfigDir)

	i.logger.Debug().
		Str("root", rootName(root)).
		Str("configDir", i.paths.ConfigDir()).
		Bool("disabled", cfg.Disabled).
		Msg("Installer activated")
	return nil
}

// Deactivate disables the installer and forgets the session
func (i *Installer) Deactivate() {
	i.Enabled = false
	i.io = nil
	i.config = nil
	i.paths = nil
	i.logger.Debug().Msg("Installer deactivated")
}

// Uninstall is called when pkghooks itself is removed from the project
func (i *Installer) Uninstall(io types.IO) {
	io.Write("pkghooks installer uninstalled")
}

// Config returns the active configuration, nil when inactive
func (i *Installer) Config() *config.Config {
	return i.config
}

// Subscriptions returns the handlers the host should call, none when the
// installer is disabled.
func (i *Installer) Subscriptions() map[types.Operation]Handler {
	if !i.Enabled {
		return map[types.Operation]Handler{}
	}
	return map[types.Operation]Handler{
		types.OperationInstall:   i.PostInstall,
		types.OperationUpdate:    i.PostUpdate,
		types.OperationUninstall: i.PostUninstall,
	}
}

// PostInstall handles a package installation
func (i *Installer) PostInstall(event types.Event) error {
	event.Operation = types.OperationInstall
	return i.Handle(event)
}

// PostUpdate handles a package update
func (i *Installer) PostUpdate(event types.Event) error {
	event.Operation = types.OperationUpdate
	return i.Handle(event)
}

// PostUninstall handles a package removal
func (i *Installer) PostUninstall(event types.Event) error {
	event.Operation = types.OperationUninstall
	return i.Handle(event)
}

// Handle runs the hooks of the event package. Events arriving while the
// installer is inactive or disabled by configuration are ignored. The first
// action error is reported through the IO error stream and returned.
func (i *Installer) Handle(event types.Event) error {
	if i.io == nil || i.config == nil {
		i.logger.Debug().Msg("Installer inactive, ignoring event")
		return nil
	}
	if _, err := types.ParseOperation(string(event.Operation)); err != nil {
		i.logger.Debug().Str("operation", string(event.Operation)).Msg("Ignoring unknown operation")
		return nil
	}

	pkg := event.Subject()
	if pkg == nil || len(pkg.Hooks) == 0 || i.config.Disabled {
		return nil
	}

	logger := i.logger.With().Str("package", pkg.Name).Str("operation", string(event.Operation)).Logger()
	done := logging.LogOperationStart(logger, "handle")
	defer done()

	for _, hook := range pkg.Hooks {
		if !i.actions.Has(hook.Action) {
			logger.Debug().Str("hook", hook.Action).Msg("Not an action, skipping")
			continue
		}

		action, err := i.actions.New(hook.Action)
		if err != nil {
			return i.fail(err)
		}

		i.io.Write(fmt.Sprintf("Run for %s => %s", pkg.Name, hook.Action))
		ctx := actions.Context{
			Package:       pkg.Name,
			Args:          hook.Args,
			IO:            i.io,
			FS:            i.fs,
			Paths:         i.paths,
			Config:        i.config,
			BundleOptions: i.opts.BundleOptions,
		}
		if err := actions.Run(action, event.Operation, ctx); err != nil {
			logger.Error().Err(err).Str("action", hook.Action).Msg("Action failed")
			return i.fail(err)
		}
	}
	return nil
}

// fail reports err to the user and returns it unchanged
func (i *Installer) fail(err error) error {
	i.io.WriteError(err.Error())
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		i.io.WriteError(fmt.Sprintf("error code: %s", code))
	}
	return err
}

func rootName(root *types.Package) string {
	if root == nil {
		return ""
	}
	return root.Name
}
