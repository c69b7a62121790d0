package main

import (
	"github.com/spf13/cobra"

	numberinput "github.com/goliatone/go-numberinput"
	"github.com/goliatone/go-numberinput/pkg/renderers/tui"
	"github.com/goliatone/go-numberinput/pkg/vdom"
)

type promptOptions struct {
	format      string
	confirm     bool
	maxAttempts int
}

func newPromptCmd(a *app) *cobra.Command {
	opts := &promptOptions{}

	cmd := &cobra.Command{
		Use:   "prompt [field...]",
		Short: "Ask for field values with line prompts",
		Long: `Ask for each field in turn. Answers that the field would reject are asked
again; an empty answer on a required field takes the default. The collected
values are printed as JSON or as "name: value" lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrompt(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", string(tui.OutputFormatJSON), "Output format (json, pretty)")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "Ask for confirmation before printing")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "Give up after this many invalid answers (0 asks forever)")

	return cmd
}

func (a *app) runPrompt(cmd *cobra.Command, opts *promptOptions, args []string) error {
	set, err := a.loadFields(cmd.Context())
	if err != nil {
		return err
	}
	names, err := set.pick(args)
	if err != nil {
		return err
	}

	prompter, err := tui.New(
		tui.WithOutputFormat(tui.OutputFormat(opts.format)),
		tui.WithConfirmSubmit(opts.confirm),
		tui.WithMaxAttempts(opts.maxAttempts),
		tui.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	entries := make([]tui.Entry, 0, len(names))
	for _, name := range names {
		field, err := numberinput.Create(vdom.NewInput(""), nil, set.optionsFor(name, a.logger)...)
		if err != nil {
			return err
		}
		entries = append(entries, tui.Entry{Question: tui.Question{Name: name, Label: name}, Field: field})
	}

	out, err := prompter.PromptAll(cmd.Context(), entries)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
