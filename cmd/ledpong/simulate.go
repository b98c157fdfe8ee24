package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/runner"
)

var (
	flagFrames      int
	flagDT          float64
	flagRenderEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with a fixed time step",
	Long: `Play a game between two autopilot paddles without a terminal UI.
Each frame advances the simulation by --dt seconds and the loop never sleeps,
so the same --seed always produces the same final score.

Examples:
  ledpong simulate --frames 5000
  ledpong simulate --frames 600 --dt 0.05 --seed 7 --render-every 10`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 1000, "Number of frames to simulate")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 0.016, "Seconds per frame")
	simulateCmd.Flags().IntVar(&flagRenderEvery, "render-every", 0, "Print every Nth frame (0 = never)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}
	if flagDT <= 0 {
		return fmt.Errorf("--dt must be positive, got %v", flagDT)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("render-every") {
		cfg.Headless.RenderEvery = flagRenderEvery
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rcfg := runner.ConfigFrom(cfg)
	rcfg.FrameInterval = 0
	rcfg.FixedStep = flagDT
	rcfg.MaxFrames = flagFrames

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := play(ctx, "headless", cfg, rcfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Simulated %d frames (%.3fs). %s\n", summary.Frames, float64(summary.Frames)*flagDT, summary.Score)
	return nil
}
