package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"arcwatch/internal/arcstats"
	"arcwatch/internal/config"
	"arcwatch/internal/errors"
	"arcwatch/internal/monitor"
)

// Global flags
var (
	configFlag   string
	intervalFlag time.Duration
	rawFlag      bool
)

// rootCmd launches the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "arcwatch",
	Short: "Live ZFS ARC statistics dashboard",
	Long: `arcwatch polls kstat.zfs.misc.arcstats and shows every statistic in a
filterable table, with a cache-effectiveness summary and history charts
of hits, misses, and hit ratio.

Examples:
  arcwatch
  arcwatch --interval 2s
  arcwatch dump --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

// Execute runs the root command. Errors print in the structured format
// and map to a process exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "Refresh interval (e.g. 2s, 10s)")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Start with raw values instead of human-readable units")
}

// loadConfig resolves the effective configuration from file plus flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if intervalFlag > 0 {
		cfg.RefreshInterval = intervalFlag
	}
	if rawFlag {
		cfg.HumanReadable = false
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// dashboardCommand starts the TUI dashboard.
func dashboardCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The dashboard needs a real terminal; pipes get the dump command
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrExec,
			"Standard output is not a terminal",
			"Run arcwatch in an interactive terminal, or use 'arcwatch dump' for plain output.")
	}

	source := arcstats.NewCommandSource(cfg.Source.Command, cfg.Source.Args...)
	model := monitor.NewModel(cfg, source)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
