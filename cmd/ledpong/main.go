// ledpong plays two-player Pong on an 8x3 LED grid driven by slider input.
//
// Usage:
//
//	ledpong play                  - Play on the configured controller
//	ledpong simulate              - Run a headless game with a fixed time step
//	ledpong drivers               - List available controller drivers
//
// Global flags:
//
//	--config <path>     - Path to a config YAML file
//	--seed <value>      - Set RNG seed for reproducible serves
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import drivers to register them
	_ "github.com/vovakirdan/ledpong/internal/device/headless"
	_ "github.com/vovakirdan/ledpong/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledpong",
	Short: "LED Pong - two-player Pong on an 8x3 LED grid",
	Long: `LED Pong plays two-player Pong on a small grid of LEDs. Each player
moves a paddle with a slider; the ball is the single lit LED.

Available commands:
  play      - Play on the configured controller
  simulate  - Run a headless game with a fixed time step
  drivers   - Show all controller drivers

Examples:
  ledpong play
  ledpong play --driver headless
  ledpong simulate --frames 2000 --dt 0.016 --seed 42
  ledpong drivers`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(driversCmd)
}

// newLogger builds the root logger. With no log file, logs go to fallback.
// The returned close func releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledpong",
		Level:           level,
	})
	return logger, closeFn, nil
}
