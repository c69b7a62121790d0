package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	numberinput "github.com/goliatone/go-numberinput"
	"github.com/goliatone/go-numberinput/pkg/vdom"
)

var errInvalidValues = errors.New("invalid values")

type checkOptions struct {
	field string
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <value>...",
		Short: "Check values against a field's rules",
		Long: `Report for each value whether the field would accept it: empty text, or a
decimal number using the configured separator within the enabled bounds.

The command fails when any value is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.field, "field", "f", "", "Field to check against (defaults to the first configured field)")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts *checkOptions, values []string) error {
	set, err := a.loadFields(cmd.Context())
	if err != nil {
		return err
	}
	name := opts.field
	if name == "" {
		name = set.names[0]
	}
	if _, err := set.pick([]string{name}); err != nil {
		return err
	}

	field, err := numberinput.Create(vdom.NewInput(""), nil, set.optionsFor(name, a.logger)...)
	if err != nil {
		return err
	}

	invalid := 0
	for _, value := range values {
		verdict := "valid"
		if !field.IsValid(value) {
			verdict = "invalid"
			invalid++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\t%s\n", name, value, verdict)
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidValues, invalid, len(values))
	}
	return nil
}
