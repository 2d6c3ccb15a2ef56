package config

import (
	"time"

	"arcwatch/internal/arcstats"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .arcwatch.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// RefreshInterval is how often statistics are polled.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// HistoryCapacity is how many poll results to keep for charting.
	HistoryCapacity int `yaml:"history_capacity" mapstructure:"history_capacity"`

	// HumanReadable selects unit-scaled display ("1.0 GB") at startup.
	// Toggleable at runtime.
	HumanReadable bool `yaml:"human_readable" mapstructure:"human_readable"`

	// LowRatioThreshold is the hit-ratio percentage below which the
	// summary is highlighted as underperforming.
	LowRatioThreshold float64 `yaml:"low_ratio_threshold" mapstructure:"low_ratio_threshold"`

	// Source describes the command that produces raw statistics.
	Source SourceConfig `yaml:"source" mapstructure:"source"`
}

// SourceConfig defines the external command polled for statistics.
type SourceConfig struct {
	// Command is the executable to run.
	Command string `yaml:"command" mapstructure:"command"`

	// Args are passed to the command verbatim.
	Args []string `yaml:"args" mapstructure:"args"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:           CurrentConfigVersion,
		RefreshInterval:   5 * time.Second,
		HistoryCapacity:   arcstats.DefaultHistorySize,
		HumanReadable:     true,
		LowRatioThreshold: arcstats.DefaultLowRatioThreshold,
		Source: SourceConfig{
			Command: arcstats.DefaultSourceCommand,
			Args:    arcstats.DefaultSourceArgs(),
		},
	}
}
