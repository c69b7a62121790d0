package main

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "NUMBERINPUT"

// app carries the state shared by every subcommand.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	a := &app{v: v, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "numberinput",
		Short: "Number input fields for HTML and the terminal",
		Long: `Render, check and edit number fields.

Fields come from a YAML or JSON file (--config) and/or the numeric properties
of an OpenAPI component schema (--schema with --component). Without either a
single field named "value" with default settings is used.

Every flag can also be set through the environment, for example
NUMBERINPUT_CONFIG=fields.yaml.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "YAML or JSON field configuration file")
	flags.String("schema", "", "OpenAPI document holding field schemas")
	flags.String("component", "", "component schema whose numeric properties become fields")
	flags.BoolP("verbose", "v", false, "Log field decisions to stderr")
	_ = v.BindPFlags(flags)

	root.AddCommand(
		newRenderCmd(a),
		newCheckCmd(a),
		newPromptCmd(a),
		newEditCmd(a),
	)
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
