package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fsm/pkg/config"
	"github.com/dmitrymomot/fsm/pkg/logger"
)

// Config is read from the environment and optional .env files.
// Empty LogLevel and LogFormat keep the values of the FSM_ENV preset.
type Config struct {
	LogLevel  string `env:"FSM_LOG_LEVEL"`
	LogFormat string `env:"FSM_LOG_FORMAT"`
	Env       string `env:"FSM_ENV" envDefault:"development"`
}

// runIDKey carries the run id of `fsm run` on the command context.
type runIDKey struct{}

// app carries state shared by subcommands once the root command has run its pre-run hook.
type app struct {
	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.NewNop()}

	cmd := &cobra.Command{
		Use:   "fsm",
		Short: "fsm inspects and runs table-driven state machines",
		Long: `fsm loads a state machine definition from a YAML or JSON file and
validates it, renders it as a diagram or replays events through it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env FSM_LOG_LEVEL, default from FSM_ENV)")
	cmd.PersistentFlags().String("log-format", "", "log format: text or json (env FSM_LOG_FORMAT, default from FSM_ENV)")
	cmd.PersistentFlags().StringSlice("env-file", nil, "load environment from these files, later files win")

	cmd.AddCommand(
		newValidateCmd(a),
		newGraphCmd(a),
		newRunCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return err
		}
		if err := config.ForceReload(&a.cfg); err != nil {
			return err
		}
	} else if err := config.Load(&a.cfg); err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		a.cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		a.cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, "fsm"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	}
	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if a.cfg.LogFormat != "" {
		format, err := logger.ParseFormat(a.cfg.LogFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	a.log = logger.New(opts...).With(logger.Component(cmd.Name()))
	return nil
}
