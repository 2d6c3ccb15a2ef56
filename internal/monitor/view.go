package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"arcwatch/internal/arcstats"
)

// renderDashboard assembles the full-screen dashboard layout.
func (m Model) renderDashboard() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch m.viewMode {
	case ViewChart:
		sections = append(sections, m.renderCharts())
	default:
		sections = append(sections, m.renderFilterLine())
		if m.viewportReady {
			sections = append(sections, m.tableViewport.View())
		}
	}

	sections = append(sections, m.renderSummary())
	sections = append(sections, m.renderTrendLine())
	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.showHelp {
		return m.renderHelpOverlay(content)
	}

	return content
}

// renderHeader renders the title bar with refresh status on the right.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("arcwatch")

	subtitle := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | ZFS ARC statistics")

	var status string
	switch {
	case m.fetchErr != nil:
		status = ErrorBannerStyle.Render("⚠ update failed")
	case m.lastUpdate.IsZero():
		status = MutedStyle.Render("polling...")
	case m.fetching:
		status = MutedStyle.Render("refreshing...")
	default:
		status = MutedStyle.Render(m.updateText())
	}

	left := HeaderStyle.Render(title + subtitle)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + status
}

// updateText describes how fresh the displayed snapshot is.
func (m Model) updateText() string {
	switch secs := m.SecondsSinceUpdate(); secs {
	case 0:
		return "updated just now"
	case 1:
		return "updated 1s ago"
	default:
		return fmt.Sprintf("updated %ds ago", secs)
	}
}

// renderFilterLine renders the filter prompt above the table.
func (m Model) renderFilterLine() string {
	if m.filtering {
		return FilterActiveStyle.Render(m.filterInput.View())
	}

	if filter := m.filterInput.Value(); filter != "" {
		count := len(m.FilteredEntries())
		return FilterIdleStyle.Render(
			fmt.Sprintf("/ %s  (%d shown, esc clears)", filter, count))
	}

	return FilterIdleStyle.Render("/ to filter")
}

// renderTableRows renders the statistics table body for the viewport.
func (m Model) renderTableRows() string {
	entries := m.FilteredEntries()
	if len(entries) == 0 {
		if m.snapshot == nil {
			return MutedStyle.Render("  waiting for first poll...")
		}
		return MutedStyle.Render("  no keys match the filter")
	}

	// Key column sized to the widest visible key
	keyWidth := 0
	for _, e := range entries {
		if len(e.Key) > keyWidth {
			keyWidth = len(e.Key)
		}
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(LabelStyle.Render(padRight(e.Key, keyWidth)))
		b.WriteString("  ")
		b.WriteString(ValueStyle.Render(m.renderValue(e)))
	}
	return b.String()
}

// renderValue formats one statistic's value per the current unit mode.
// Non-integer values display as-is.
func (m Model) renderValue(e arcstats.StatLine) string {
	if !e.IsNum {
		return e.Value
	}
	return arcstats.FormatValue(e.Num, m.human)
}

// renderSummary renders the one-line summary bar. A low hit ratio
// highlights the whole line; a failed poll replaces it entirely.
func (m Model) renderSummary() string {
	if m.fetchErr != nil {
		return ErrorBannerStyle.Render("Update failed: " + errorSummary(m.fetchErr))
	}
	if m.snapshot == nil {
		return SummaryStyle.Render("Waiting for statistics...")
	}

	text := fmt.Sprintf("ARC Size: %s    Hits: %s    Misses: %s    Hit Ratio: %.2f%%",
		arcstats.FormatValue(m.metrics.ARCSize, m.human),
		arcstats.FormatCount(m.metrics.Hits),
		arcstats.FormatCount(m.metrics.Misses),
		m.metrics.Ratio)

	if m.metrics.Low {
		return SummaryLowStyle.Render(text + "  ▼ low")
	}
	return SummaryStyle.Render(text)
}

// renderTrendLine renders an inline ratio sparkline under the summary.
func (m Model) renderTrendLine() string {
	ratios := m.history.Ratios()
	if len(ratios) < 2 {
		return ""
	}

	width := m.width - 10
	if width < 10 {
		width = 10
	}
	if width > m.history.Cap() {
		width = m.history.Cap()
	}

	spark := RenderMiniSparkline(ratios, width, RatioColor(m.metrics.Ratio, m.cfg.LowRatioThreshold))
	return " " + LabelStyle.Render("ratio ") + spark
}

// renderFooter renders key hints.
func (m Model) renderFooter() string {
	hints := "q quit · r refresh · tab charts · u units · / filter · ? help"
	if m.viewMode == ViewChart {
		hints = "q quit · r refresh · tab table · esc back · ? help"
	}
	return FooterStyle.Render(hints)
}

// filterEntries returns the entries whose keys contain filter,
// case-insensitively. An empty filter passes everything.
func filterEntries(entries []arcstats.StatLine, filter string) []arcstats.StatLine {
	if filter == "" {
		return entries
	}

	needle := strings.ToLower(filter)
	var matched []arcstats.StatLine
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Key), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}

// errorSummary reduces an error to its first line for the one-line banner.
func errorSummary(err error) string {
	line := err.Error()
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "✗"))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
