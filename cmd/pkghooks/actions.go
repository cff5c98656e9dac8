package pkghooks

import (
	"fmt"

	"github.com/arthur-debert/pkghooks/pkg/actions"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/ui/render"
	"github.com/spf13/cobra"
)

func newActionsCmd(opts *globalOptions, registry *actions.Registry) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "actions [name]",
		Short:   MsgActionsShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return registry.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				_, _ = fmt.Fprintln(out, MsgAvailableActions)
				for _, name := range registry.Names() {
					_, _ = fmt.Fprintf(out, MsgActionItem, name)
				}
				return nil
			}

			doc, err := registry.Doc(args[0])
			if err != nil {
				return err
			}
			if doc == "" {
				return errors.Newf(errors.ErrNotFound, MsgErrNoDoc, args[0])
			}

			renderer := render.For(plain || opts.noColor)
			_, _ = fmt.Fprint(out, renderer.Render(doc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	return cmd
}
