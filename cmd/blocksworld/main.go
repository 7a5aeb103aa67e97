// Command blocksworld is the executable entry point: it wires config,
// logging, scenarios, constraints, the simulation loop, and the HTTP/
// interactive ingest adapters together, grounded on the teacher's
// c-robotcli/robot_cli.go cobra root command plus its own global-state
// wiring in func main.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"blocksworld/internal/config"
	"blocksworld/internal/constraint"
	"blocksworld/internal/httpapi"
	"blocksworld/internal/interactive"
	"blocksworld/internal/logging"
	"blocksworld/internal/render"
	"blocksworld/internal/scenario"
	"blocksworld/internal/sim"
)

var cfgFlags = struct {
	verbose bool
}{}

func main() {
	root := &cobra.Command{
		Use:   "blocksworld",
		Short: "A constraint-driven blocks-world simulator",
		Long: `blocksworld runs a ticked simulation of blocks stacked on a table,
driven by a robot arm, validated against a named constraint set, and
reachable over HTTP or a local interactive CLI.`,
	}
	pflags := root.PersistentFlags()
	config.RegisterFlags(pflags)
	pflags.BoolVarP(&cfgFlags.verbose, "verbose", "v", false, "enable debug-level logging")

	root.AddCommand(serveCmd(pflags), playCmd(pflags))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd(pflags *pflag.FlagSet) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation with an HTTP front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loop, scenarios, logger, err := bootstrap(pflags, false)
			if err != nil {
				return err
			}

			server := httpapi.NewServer(cfg.Addr, loop, scenarios, logger)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			go loop.Run(ctx)

			if err := server.ListenAndServe(); err != nil {
				logger.Error().Err(err).Msg("http server failed to bind")
				return err
			}
			return nil
		},
	}
}

func playCmd(pflags *pflag.FlagSet) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run the simulation with the local interactive CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, loop, _, logger, err := bootstrap(pflags, true)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go loop.Run(ctx)

			if err := interactive.Run(loop, os.Stdin, os.Stdout); err != nil {
				logger.Error().Err(err).Msg("interactive session ended with error")
				return err
			}
			return nil
		},
	}
}

func bootstrap(flags *pflag.FlagSet, consoleLog bool) (*config.Config, *sim.Loop, *scenario.Registry, zerolog.Logger, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, nil, nil, zerolog.Logger{}, err
	}

	level := zerolog.InfoLevel
	if cfgFlags.verbose {
		level = zerolog.DebugLevel
	}
	logger := logging.Init(consoleLog, level)

	scenarios := scenario.NewRegistry()
	loaded, err := scenario.LoadDir(cfg.ScenarioDir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", cfg.ScenarioDir).Msg("no scenarios loaded")
	} else {
		scenarios.Load(loaded)
		logger.Info().Int("count", len(loaded)).Msg("scenarios loaded")
	}

	ctx := &constraint.Context{Scenarios: scenarios}
	mgr, err := constraint.NewManager(ctx, cfg.DefaultConstraintSet, constraint.DefaultSets()...)
	if err != nil {
		return nil, nil, nil, zerolog.Logger{}, fmt.Errorf("bootstrap: %w", err)
	}

	renderer := render.NewTerminalRenderer()
	loop := sim.New(mgr, scenarios, renderer, logger, cfg.TickRate)

	return cfg, loop, scenarios, logger, nil
}
