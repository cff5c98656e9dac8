package pkghooks

import (
	"fmt"

	"github.com/arthur-debert/pkghooks/internal/version"
	"github.com/arthur-debert/pkghooks/pkg/actions"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/logging"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are shared by every command
type globalOptions struct {
	verbosity int
	yes       bool
	no        bool
	noColor   bool
	workDir   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	registry := actions.DefaultRegistry()

	rootCmd := &cobra.Command{
		Use:     "pkghooks",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if opts.yes && opts.no {
				return errors.New(errors.ErrInvalidInput, MsgErrYesAndNo)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)
	rootCmd.PersistentFlags().BoolVar(&opts.no, "no", false, MsgFlagNo)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&opts.workDir, "workdir", "C", "", MsgFlagWorkDir)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "hooks",
		Title: "HOOKS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newEventCmd(opts, registry, types.OperationInstall, MsgInstallShort))
	rootCmd.AddCommand(newEventCmd(opts, registry, types.OperationUpdate, MsgUpdateShort))
	rootCmd.AddCommand(newEventCmd(opts, registry, types.OperationUninstall, MsgUninstallShort))
	rootCmd.AddCommand(newActionsCmd(opts, registry))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}
