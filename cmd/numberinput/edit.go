package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-numberinput/pkg/renderers/interactive"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [field]",
		Short: "Edit one field with an interactive spinner",
		Long: `Open a full-screen number input. Typing is filtered the same way as in the
browser widget, the up and down arrows step the value, Enter confirms and
prints the value, Esc cancels.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadFields(cmd.Context())
			if err != nil {
				return err
			}
			names, err := set.pick(args)
			if err != nil {
				return err
			}
			name := names[0]

			value, err := interactive.Run(cmd.Context(), name, set.optionsFor(name, a.logger)...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
