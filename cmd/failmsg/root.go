package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"digital.vasic.failmsg/pkg/assertion"
	"digital.vasic.failmsg/pkg/config"
	"digital.vasic.failmsg/pkg/env"
	"digital.vasic.failmsg/pkg/logging"
	"digital.vasic.failmsg/pkg/metrics"
)

// dotEnvFile is read from the working directory when present.
const dotEnvFile = ".env"

type app struct {
	configPath string
	verbose    bool

	logger  logging.Logger
	metrics *metrics.CounterMetrics
	synth   *assertion.Synthesizer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "failmsg",
		Short: "Synthesize assertion failure messages",
		Long: `failmsg renders the operands of a failed comparison and prints the
relation that actually holds, e.g. "5 == 6" failing prints "5 != 6".`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(
		newBinaryCmd(a),
		newUnaryCmd(a),
		newInvertCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	loader := env.NewLoader()
	if err := loader.LoadOptional(dotEnvFile); err != nil {
		return err
	}

	cfg, err := config.LoadWithEnv(a.configPath, loader)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger.WithFields(logging.StringField("command", cmd.Name()))
	a.metrics = metrics.NewCounterMetrics()
	a.synth = assertion.NewSynthesizer(
		assertion.WithLogger(a.logger),
		assertion.WithMetrics(a.metrics),
		assertion.WithRenderConfig(cfg.Render),
	)
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.logger == nil {
		return nil
	}
	a.logger.Debug("done",
		logging.IntField("binary", a.metrics.MessageTotal(metrics.KindBinary)),
		logging.IntField("unary", a.metrics.MessageTotal(metrics.KindUnary)),
		logging.IntField("render_panics", int(a.metrics.RenderPanics())),
	)
	return a.logger.Close()
}
