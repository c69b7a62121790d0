package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	numberinput "github.com/goliatone/go-numberinput"
	"github.com/goliatone/go-numberinput/pkg/vdom"
)

type renderOptions struct {
	value      string
	output     string
	stylesheet bool
	themeFile  string
	variant    string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [field...]",
		Short: "Render decorated field markup as HTML",
		Long: `Mount each field on an in-memory input and print the resulting markup:
the wrapper div, the spin buttons and the unit label.

Without field names every configured field is rendered, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.value, "value", "", "Initial input text (empty uses the field default)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.stylesheet, "stylesheet", false, "Inline the default stylesheet")
	cmd.Flags().StringVar(&opts.themeFile, "theme-file", "", "YAML theme with class and CSS variable tokens")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "Theme variant to apply")

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	set, err := a.loadFields(cmd.Context())
	if err != nil {
		return err
	}
	names, err := set.pick(args)
	if err != nil {
		return err
	}

	var rendererOptions []vdom.RendererOption
	if opts.stylesheet {
		rendererOptions = append(rendererOptions, vdom.WithDefaultStylesheet())
	}
	if opts.themeFile != "" {
		selector, err := loadThemeFile(opts.themeFile)
		if err != nil {
			return err
		}
		rendererOptions = append(rendererOptions, numberinput.WithThemeSelector(selector, selector.manifest.Name, opts.variant))
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		html, err := numberinput.RenderHTML(opts.value, set.optionsFor(name, a.logger), rendererOptions...)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		lines = append(lines, html)
	}
	out := strings.Join(lines, "\n") + "\n"

	if opts.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Info("markup written", zap.String("path", opts.output), zap.Int("fields", len(names)))
	fmt.Fprintf(cmd.ErrOrStderr(), "Markup written to %s\n", opts.output)
	return nil
}
