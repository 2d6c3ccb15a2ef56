package config

import (
	"fmt"
	"time"

	"arcwatch/internal/errors"
)

// MinRefreshInterval is the shortest allowed polling interval. Hammering
// sysctl faster than this buys nothing and burns CPU.
const MinRefreshInterval = time.Second

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but arcwatch only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest arcwatch release")
	}

	if cfg.RefreshInterval < MinRefreshInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("refresh_interval %v is too short", cfg.RefreshInterval),
			fmt.Sprintf("Use at least %v - try '5s'.", MinRefreshInterval))
	}

	if cfg.HistoryCapacity <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_capacity needs to be positive (got %d)", cfg.HistoryCapacity),
			"Use something like 60 - that's a 5-minute window at the default interval.")
	}

	if cfg.LowRatioThreshold < 0 || cfg.LowRatioThreshold > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("low_ratio_threshold needs to be 0-100 (got %g)", cfg.LowRatioThreshold),
			"It's a hit-ratio percentage - 90 is a reasonable default.")
	}

	if cfg.Source.Command == "" {
		return errors.New(errors.ErrConfig,
			"source.command is empty",
			"Set it to the command that prints ARC statistics, like 'sysctl'.")
	}

	return nil
}
