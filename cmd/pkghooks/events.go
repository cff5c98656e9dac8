package pkghooks

import (
	"io"
	"os"

	"github.com/arthur-debert/pkghooks/pkg/actions"
	"github.com/arthur-debert/pkghooks/pkg/config"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/filesystem"
	"github.com/arthur-debert/pkghooks/pkg/installer"
	"github.com/arthur-debert/pkghooks/pkg/logging"
	"github.com/arthur-debert/pkghooks/pkg/metadata"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/arthur-debert/pkghooks/pkg/ui"
	"github.com/arthur-debert/pkghooks/pkg/ui/output"
	"github.com/arthur-debert/pkghooks/pkg/ui/prompt"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// newEventCmd creates the command delivering one host event
func newEventCmd(opts *globalOptions, registry *actions.Registry, op types.Operation, short string) *cobra.Command {
	var packagePath, rootPath, targetPath string

	cmd := &cobra.Command{
		Use:     string(op),
		Short:   short,
		GroupID: "hooks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd." + string(op))
			fsys := filesystem.NewOS()

			event := types.Event{Operation: op}
			var err error
			if event.Package, err = metadata.Load(fsys, packagePath); err != nil {
				return err
			}
			if rootPath != "" {
				if event.Root, err = metadata.Load(fsys, rootPath); err != nil {
					return err
				}
			}
			if targetPath != "" {
				if event.Target, err = metadata.Load(fsys, targetPath); err != nil {
					return err
				}
			}

			cfg, err := config.Load(config.LoadOptions{WorkDir: opts.workDir, Root: event.Root})
			if err != nil {
				return err
			}

			hostIO, err := newConsole(cmd, opts, cfg)
			if err != nil {
				return err
			}

			inst := installer.New(installer.Options{
				FileSystem: fsys,
				Actions:    registry,
				WorkDir:    opts.workDir,
				Config:     cfg,
			})
			if err := inst.Activate(event.Root, hostIO); err != nil {
				return err
			}
			defer inst.Deactivate()

			logger.Info().
				Str("package", event.Subject().Name).
				Str("operation", string(op)).
				Msg("Delivering event")

			handle, ok := inst.Subscriptions()[op]
			if !ok {
				return errors.Newf(errors.ErrInternal, "no handler for %s", op)
			}
			return handle(event)
		},
	}

	cmd.Flags().StringVarP(&packagePath, "package", "p", "", MsgFlagPackage)
	cmd.Flags().StringVarP(&rootPath, "root", "r", "", MsgFlagRoot)
	if op == types.OperationUpdate {
		cmd.Flags().StringVarP(&targetPath, "target", "t", "", MsgFlagTarget)
	}
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

// newConsole builds the host IO from the command streams. The --yes and --no
// flags override the configured interactive mode.
func newConsole(cmd *cobra.Command, opts *globalOptions, cfg *config.Config) (types.IO, error) {
	out := cmd.OutOrStdout()

	mode := cfg.Interactive.Mode
	switch {
	case opts.yes:
		mode = config.ModeYes
	case opts.no:
		mode = config.ModeNo
	}

	var prompter types.Prompter
	if in, ok := cmd.InOrStdin().(*os.File); ok {
		p, err := prompt.ForMode(mode, in, out)
		if err != nil {
			return nil, err
		}
		prompter = p
	} else if mode == config.ModeAuto {
		prompter = prompt.NewReader(cmd.InOrStdin(), out)
	} else {
		p, err := prompt.ForMode(mode, nil, out)
		if err != nil {
			return nil, err
		}
		prompter = p
	}

	return output.NewConsole(prompter, out, cmd.ErrOrStderr(), colorProfile(out, opts.noColor)), nil
}

func colorProfile(w io.Writer, noColor bool) termenv.Profile {
	if f, ok := w.(*os.File); ok {
		return ui.ColorProfile(f, noColor)
	}
	return termenv.Ascii
}
