// Package cli implements the arcwatch command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the internal packages for the actual work:
//
//   - Command definitions (cobra.Command instances)
//   - Config resolution (file plus flag overrides)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "arcwatch", which opens the TUI dashboard, with
// subcommands for everything else:
//
//	arcwatch            - Open the live dashboard
//	arcwatch dump       - Print one snapshot and exit (--json available)
//	arcwatch init       - Create .arcwatch.yaml config
//	arcwatch version    - Print version information
//	arcwatch completion - Generate shell completions (built into Cobra)
//
// # Flag Handling
//
// The global --config flag is defined on the root command and available
// to all subcommands. Dashboard flags (--interval, --raw) apply to the
// root command only; flag values override whatever the config file says.
package cli
