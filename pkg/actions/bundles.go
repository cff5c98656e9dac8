package actions

import (
	"fmt"

	"github.com/arthur-debert/pkghooks/pkg/bundles"
	"github.com/arthur-debert/pkghooks/pkg/config"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/logging"
)

// BundlesAction registers the bundles declared by a package in the project
// bundle registry, and unregisters them on removal.
type BundlesAction struct{}

// Install merges the declared bundles into the registry
func (a *BundlesAction) Install(ctx Context) error {
	return a.register(ctx)
}

// Update merges the declared bundles into the registry
func (a *BundlesAction) Update(ctx Context) error {
	return a.register(ctx)
}

// Uninstall drops the declared bundles from the registry after confirmation
func (a *BundlesAction) Uninstall(ctx Context) error {
	declared, store, _, err := a.prepare(ctx)
	if err != nil {
		return err
	}

	question := fmt.Sprintf("Confirm remove bundles for %s? (yes/no)", ctx.Package)
	ok, err := ctx.IO.Confirm(question, true)
	if err != nil {
		return errors.Wrap(err, errors.ErrPrompt, "cannot read confirmation")
	}
	if !ok {
		logger := logging.GetLogger("actions.bundles")
		logger.Info().Str("package", ctx.Package).Msg("Bundle removal declined")
		return nil
	}

	_, err = store.Unregister(declared.IDs())
	return err
}

// Doc returns the action documentation
func (a *BundlesAction) Doc() string {
	return bundlesDoc
}

func (a *BundlesAction) register(ctx Context) error {
	declared, store, policy, err := a.prepare(ctx)
	if err != nil {
		return err
	}
	_, err = store.Register(declared, policy)
	return err
}

func (a *BundlesAction) prepare(ctx Context) (*bundles.Registry, *bundles.Store, bundles.MergePolicy, error) {
	if ctx.Paths == nil {
		return nil, nil, "", errors.Newf(errors.ErrActionExecute, "no registry location for bundles of %s", ctx.Package)
	}

	cfg := ctx.Config
	if cfg == nil {
		cfg = config.Default()
	}
	codec, err := cfg.Codec()
	if err != nil {
		return nil, nil, "", errors.Wrap(err, errors.ErrRegistryFormat, "invalid registry format")
	}
	policy, err := cfg.MergePolicy()
	if err != nil {
		return nil, nil, "", errors.Wrap(err, errors.ErrConfigValid, "invalid merge policy")
	}

	declared, err := bundles.FromNode(ctx.Args)
	if err != nil {
		return nil, nil, "", errors.Wrapf(err, errors.ErrActionExecute, "invalid bundle list in %s", ctx.Package).
			WithDetail("package", ctx.Package)
	}

	store := bundles.NewStore(ctx.FS, ctx.Paths.ConfigDir(), codec, ctx.BundleOptions...)
	return declared, store, policy, nil
}
