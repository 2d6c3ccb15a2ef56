package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"arcwatch/internal/config"
	"arcwatch/internal/errors"
)

var initForce bool

// initCmd creates a new .arcwatch.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .arcwatch.yaml configuration",
	Long: `Initialize a new arcwatch configuration file.

Creates a .arcwatch.yaml file in the current directory with sensible
defaults, guiding you through the options with interactive prompts.

Examples:
  arcwatch init
  arcwatch init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{Overwrite: initForce})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config without asking")
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// Init creates a new .arcwatch.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		interval := cfg.RefreshInterval.String()
		threshold := strconv.FormatFloat(cfg.LowRatioThreshold, 'f', -1, 64)
		human := cfg.HumanReadable

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often to poll ARC statistics").
					Placeholder("5s").
					Value(&interval).
					Validate(func(s string) error {
						d, err := time.ParseDuration(strings.TrimSpace(s))
						if err != nil {
							return fmt.Errorf("use a duration like '5s' or '1m'")
						}
						if d < config.MinRefreshInterval {
							return fmt.Errorf("minimum interval is %v", config.MinRefreshInterval)
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Low hit-ratio threshold").
					Description("Hit ratios below this percentage are highlighted").
					Placeholder("90").
					Value(&threshold).
					Validate(func(s string) error {
						v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
						if err != nil || v < 0 || v > 100 {
							return fmt.Errorf("use a percentage between 0 and 100")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Human-readable units?").
					Description("Show byte values scaled (1.0 GB) instead of raw").
					Value(&human),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or rerun with --force for defaults")
		}

		cfg.RefreshInterval, _ = time.ParseDuration(strings.TrimSpace(interval))
		cfg.LowRatioThreshold, _ = strconv.ParseFloat(strings.TrimSpace(threshold), 64)
		cfg.HumanReadable = human
	}

	return writeConfigFile(configPath, cfg)
}

// configDocument mirrors Config for YAML output. Durations are written
// as strings ("5s") rather than raw nanoseconds.
type configDocument struct {
	Version           int      `yaml:"version"`
	RefreshInterval   string   `yaml:"refresh_interval"`
	HistoryCapacity   int      `yaml:"history_capacity"`
	HumanReadable     bool     `yaml:"human_readable"`
	LowRatioThreshold float64  `yaml:"low_ratio_threshold"`
	Source            struct { // matches config.SourceConfig
		Command string   `yaml:"command"`
		Args    []string `yaml:"args"`
	} `yaml:"source"`
}

// writeConfigFile marshals the config and writes it with a header comment.
func writeConfigFile(path string, cfg *config.Config) error {
	doc := configDocument{
		Version:           cfg.Version,
		RefreshInterval:   cfg.RefreshInterval.String(),
		HistoryCapacity:   cfg.HistoryCapacity,
		HumanReadable:     cfg.HumanReadable,
		LowRatioThreshold: cfg.LowRatioThreshold,
	}
	doc.Source.Command = cfg.Source.Command
	doc.Source.Args = cfg.Source.Args

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# arcwatch configuration
# Run 'arcwatch' to open the dashboard
# Run 'arcwatch dump' for a one-shot snapshot

`
	content := header + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	fmt.Printf("✓ Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  arcwatch        - Open the dashboard")
	fmt.Println("  arcwatch dump   - Print one snapshot")

	return nil
}
