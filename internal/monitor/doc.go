// Package monitor implements the real-time TUI dashboard for ZFS ARC
// statistics.
//
// The dashboard shows every kstat.zfs.misc.arcstats entry in a filterable
// table, a one-line summary of cache effectiveness, and history charts of
// hits, misses, and hit ratio.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds application state (snapshot, derived metrics, history, filter)
//   - Update: Processes messages (keystrokes, tick events, fetch results)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the configured interval (default 5s) and re-arms itself
//  2. fetchCmd() runs the stats command off the render loop
//  3. statsMsg arrives with raw output, which Update parses and swaps in
//     wholesale; statsErrMsg leaves the previous snapshot on screen
//  4. View() re-renders the dashboard with the new data
//
// A tick that fires while a fetch is still in flight only re-arms the
// timer, so at most one fetch runs at a time no matter how slow the
// source command is.
//
// # History and Charts
//
// Derived metrics from each successful poll go into a fixed-capacity ring
// buffer (default 60 records, a 5-minute window at the default interval).
// The chart view plots the hit and miss series autoscaled and the hit
// ratio on a fixed 0-100 scale with threshold coloring.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit
//	r           - Force refresh
//	Tab         - Switch between table and charts
//	u           - Toggle human-readable units
//	/           - Filter statistics by key
//	↑/↓         - Scroll the table
//	Esc         - Clear filter / close overlay
//	?           - Toggle help overlay
package monitor
