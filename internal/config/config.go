// Package config provides YAML-based configuration loading for LED Pong.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ledpong/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for LED Pong.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Device   Device   `yaml:"device"`
	Headless Headless `yaml:"headless"`
}

// Physics defines the single tunable of the simulation.
type Physics struct {
	InitialSpeed float64 `yaml:"initial_speed"` // Serve speed in cells per second
}

// Device defines how the shell talks to the controller.
type Device struct {
	Driver          string `yaml:"driver"`            // Registered driver name
	ConnectAttempts int    `yaml:"connect_attempts"`  // Tries before giving up
	ConnectRetryMS  int    `yaml:"connect_retry_ms"`  // Pause between tries
	FrameIntervalMS int    `yaml:"frame_interval_ms"` // Sleep between frames, 0 = none
	LeftSlider      int    `yaml:"left_slider"`       // Column driving player one's paddle
	RightSlider     int    `yaml:"right_slider"`      // Column driving player two's paddle
}

// Headless defines the autopilot used when no human is at the controls.
type Headless struct {
	Skill       float64 `yaml:"skill"`        // Chance per frame that a paddle reacts (0-1)
	Step        float64 `yaml:"step"`         // Max slider travel per frame
	RenderEvery int     `yaml:"render_every"` // Print every Nth frame, 0 = never
}

// ConnectRetry returns the pause between connection attempts.
func (d Device) ConnectRetry() time.Duration {
	return time.Duration(d.ConnectRetryMS) * time.Millisecond
}

// FrameInterval returns the pause between frames.
func (d Device) FrameInterval() time.Duration {
	return time.Duration(d.FrameIntervalMS) * time.Millisecond
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	var errs []error

	if c.Physics.InitialSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.initial_speed must be positive, got %v", c.Physics.InitialSpeed))
	}
	if c.Device.Driver == "" {
		errs = append(errs, errors.New("device.driver must be set"))
	}
	if c.Device.ConnectAttempts < 1 {
		errs = append(errs, fmt.Errorf("device.connect_attempts must be at least 1, got %d", c.Device.ConnectAttempts))
	}
	if c.Device.ConnectRetryMS < 0 {
		errs = append(errs, fmt.Errorf("device.connect_retry_ms must not be negative, got %d", c.Device.ConnectRetryMS))
	}
	if c.Device.FrameIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("device.frame_interval_ms must not be negative, got %d", c.Device.FrameIntervalMS))
	}
	if !validSlider(c.Device.LeftSlider) {
		errs = append(errs, fmt.Errorf("device.left_slider must be in [0,%d), got %d", core.GridWidth, c.Device.LeftSlider))
	}
	if !validSlider(c.Device.RightSlider) {
		errs = append(errs, fmt.Errorf("device.right_slider must be in [0,%d), got %d", core.GridWidth, c.Device.RightSlider))
	}
	if c.Headless.Skill < 0 || c.Headless.Skill > 1 {
		errs = append(errs, fmt.Errorf("headless.skill must be in [0,1], got %v", c.Headless.Skill))
	}
	if c.Headless.Step <= 0 {
		errs = append(errs, fmt.Errorf("headless.step must be positive, got %v", c.Headless.Step))
	}
	if c.Headless.RenderEvery < 0 {
		errs = append(errs, fmt.Errorf("headless.render_every must not be negative, got %d", c.Headless.RenderEvery))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func validSlider(col int) bool {
	return col >= 0 && col < core.GridWidth
}
