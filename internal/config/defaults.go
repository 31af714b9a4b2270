package config

import (
	_ "embed"
)

//go:embed defaults/catrunner.yaml
var defaultYAML []byte

// Default returns the compiled-in configuration. It mirrors the embedded
// defaults/catrunner.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:       960,
			Height:      320,
			GroundRatio: 0.78,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Effects: EffectsConfig{
			DustGravity:  0.12,
			DustDecay:    0.92,
			DustMinAlpha: 0.05,
			SquishDecay:  0.84,
		},
		Storage: StorageConfig{
			DBPath:  "~/.catrunner/scores.db",
			BestKey: "cat_runner_best_v1",
		},
		Notices: NoticeConfig{
			DurationMs: 1200,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
