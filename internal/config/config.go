// Package config provides YAML-based configuration loading for the cat
// runner: viewport, frame timing, cosmetic effects, storage, logging and
// the SSH server. Gameplay rules are fixed in the simulation and are not
// configurable.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the root of catrunner.yaml.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Timing  TimingConfig  `yaml:"timing"`
	Effects EffectsConfig `yaml:"effects"`
	Storage StorageConfig `yaml:"storage"`
	Notices NoticeConfig  `yaml:"notices"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// WorldConfig defines the logical viewport the simulation runs in.
// Units are world pixels; the renderer scales them to terminal cells.
type WorldConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	GroundRatio float64 `yaml:"ground_ratio"` // groundY = floor(Height * GroundRatio)
}

// GroundY returns the y coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return float64(int(float64(w.Height) * w.GroundRatio))
}

// TimingConfig defines the frame clock.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Host frames per second
}

// EffectsConfig tunes cosmetic effects that never affect collisions.
type EffectsConfig struct {
	DustGravity  float64 `yaml:"dust_gravity"`
	DustDecay    float64 `yaml:"dust_decay"` // Alpha multiplier per canonical tick
	DustMinAlpha float64 `yaml:"dust_min_alpha"`
	SquishDecay  float64 `yaml:"squish_decay"` // Squish multiplier per canonical tick
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath  string `yaml:"db_path"`
	BestKey string `yaml:"best_key"`
}

// NoticeConfig controls toast notifications.
type NoticeConfig struct {
	DurationMs int `yaml:"duration_ms"`
}

// Duration returns how long a toast stays visible.
func (n NoticeConfig) Duration() time.Duration {
	return time.Duration(n.DurationMs) * time.Millisecond
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs during interactive play
}

// ServerConfig holds SSH server settings for `catrunner serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.GroundRatio <= 0 || c.World.GroundRatio > 1 {
		errs = append(errs, fmt.Errorf("world.ground_ratio must be in (0, 1], got %g", c.World.GroundRatio))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Effects.DustDecay <= 0 || c.Effects.DustDecay >= 1 {
		errs = append(errs, fmt.Errorf("effects.dust_decay must be in (0, 1), got %g", c.Effects.DustDecay))
	}
	if c.Effects.SquishDecay <= 0 || c.Effects.SquishDecay >= 1 {
		errs = append(errs, fmt.Errorf("effects.squish_decay must be in (0, 1), got %g", c.Effects.SquishDecay))
	}
	if c.Storage.BestKey == "" {
		errs = append(errs, errors.New("storage.best_key must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
