package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/games/pong"
	"github.com/vovakirdan/ledpong/internal/registry"
	"github.com/vovakirdan/ledpong/internal/runner"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the configured controller",
	Long: `Connect to a controller and play until the stop button is pressed.

Console controls:
  W/S            - Player 1 slider up/down
  Up/Down, K/J   - Player 2 slider up/down
  Q/Esc/Ctrl+C   - Stop

Drivers:
  console   - Keyboard sliders and an on-screen LED panel
  headless  - Autopilot paddles, frames printed as text

Examples:
  ledpong play
  ledpong play --driver headless
  ledpong play --config ./my-ledpong.yaml --log-file ledpong.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", "", "Controller driver (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	driver := cfg.Device.Driver
	if flagDriver != "" {
		driver = flagDriver
	}
	if !registry.Exists(driver) {
		return fmt.Errorf("unknown driver %q, run 'ledpong drivers' to see available drivers", driver)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	// The console program owns the terminal, so its logs only go to a file.
	var logOut io.Writer = os.Stderr
	if driver == "console" && interactive {
		logOut = io.Discard
	}
	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	if driver == "console" && !interactive {
		logger.Warn("stdout is not a terminal, falling back to headless driver")
		driver = "headless"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := play(ctx, driver, cfg, runner.ConfigFrom(cfg), logger)
	if err != nil {
		return err
	}

	fmt.Printf("Game over after %d frames. %s\n", summary.Frames, summary.Score)
	return nil
}

// play builds the engine and controller, connects and runs the loop.
func play(ctx context.Context, driver string, cfg config.Config, rcfg runner.Config, logger *log.Logger) (runner.Summary, error) {
	engine := pong.New(cfg.Physics.InitialSpeed,
		pong.WithRandom(pong.NewRandom(flagSeed)),
		pong.WithLogger(logger),
	)

	ctrl, err := registry.Create(driver, registry.Options{
		Config: cfg,
		Logger: logger,
		Seed:   flagSeed,
		Out:    os.Stdout,
	})
	if err != nil {
		return runner.Summary{}, err
	}
	defer func() {
		if err := ctrl.Close(); err != nil {
			logger.Warn("could not close controller", "error", err)
		}
	}()

	r := runner.New(engine, ctrl, rcfg, logger)
	if err := r.WaitForConnection(ctx); err != nil {
		return runner.Summary{}, err
	}
	logger.Info("controller connected", "driver", driver)

	return r.Run(ctx)
}
