package pkghooks

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Run package provisioning hooks for a package manager"
	MsgInstallShort    = "Run the install hooks of a package"
	MsgUpdateShort     = "Run the update hooks of a package"
	MsgUninstallShort  = "Run the uninstall hooks of a package"
	MsgActionsShort    = "List available actions or show the documentation of one"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagYes     = "Answer yes to every question"
	MsgFlagNo      = "Answer no to every question"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagWorkDir = "Directory the project layout is resolved from"
	MsgFlagPackage = "Package document (composer.json style, JSON or YAML)"
	MsgFlagRoot    = "Root package document carrying pkghooks settings"
	MsgFlagTarget  = "Package document after the update"
	MsgFlagPlain   = "Print documentation without formatting"

	// Output
	MsgAvailableActions = "Available actions:"
	MsgActionItem       = "  %s\n"
	MsgVersionFormat    = "pkghooks version %s\n  commit: %s\n  built:  %s\n"

	// Errors
	MsgErrYesAndNo = "--yes and --no are mutually exclusive"
	MsgErrNoDoc    = "action %s has no documentation"
)

// MsgRootLong is the description of the root command
const MsgRootLong = `pkghooks runs file-provisioning actions when a dependency is installed,
updated or removed by a package manager.

Packages declare actions in the pkghooks entry of their extra section:

  "extra": {
      "pkghooks": {
          "packages": {"acme.yaml": ["acme:", "  enabled: true"]},
          "bundles": {"Acme\\AcmeBundle": {"all": true}}
      }
  }

The host calls pkghooks once per package event:

  pkghooks install --package vendor/acme/blog/composer.json --root composer.json

Run "pkghooks actions" to list the available actions.`
