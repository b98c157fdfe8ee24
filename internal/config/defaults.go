package config

import (
	_ "embed"
)

//go:embed defaults/ledpong.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// The first and last slider columns drive the paddles; the controller gets ten
// connection attempts one second apart and frames run at about 60 fps.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			InitialSpeed: 3.0,
		},
		Device: Device{
			Driver:          "console",
			ConnectAttempts: 10,
			ConnectRetryMS:  1000,
			FrameIntervalMS: 16,
			LeftSlider:      0,
			RightSlider:     7,
		},
		Headless: Headless{
			Skill:       0.9,
			Step:        0.02,
			RenderEvery: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
