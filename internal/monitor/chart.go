package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"arcwatch/internal/arcstats"
)

// chartHeight is the braille rows per chart section. Three sections plus
// chrome fit comfortably in a 24-row terminal.
const chartHeight = 4

// renderCharts renders the chart view: hits, misses, and hit ratio over
// the retained history window.
func (m Model) renderCharts() string {
	if m.history.Len() == 0 {
		return MutedStyle.Render("  no history yet - charts appear after the first poll")
	}

	width := m.width
	if width < 20 {
		width = 20
	}
	graphWidth := width - 4 // section borders and padding

	latest, _ := m.history.Latest()

	// Hits and misses share one scale so their magnitudes stay comparable
	hits := m.history.Hits()
	misses := m.history.Misses()
	countMin, countMax := findRange(append(append([]float64{}, hits...), misses...))

	sections := []string{
		m.renderChartSection("Hits", arcstats.FormatCount(latest.Hits), width,
			RenderScaledSparkline(hits, graphWidth, chartHeight, countMin, countMax, ColorGraphHits)),
		m.renderChartSection("Misses", arcstats.FormatCount(latest.Misses), width,
			RenderScaledSparkline(misses, graphWidth, chartHeight, countMin, countMax, ColorGraphMisses)),
		m.renderChartSection("Hit Ratio", fmt.Sprintf("%.2f%%", latest.Ratio), width,
			RenderRatioSparkline(m.history.Ratios(), graphWidth, chartHeight, m.cfg.LowRatioThreshold)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChartSection wraps a sparkline in a bordered section with the
// series name and its latest value in the header.
func (m Model) renderChartSection(title, value string, width int, graph string) string {
	var lines []string
	lines = append(lines, SectionHeader(title, value, width))

	for _, row := range strings.Split(graph, "\n") {
		lines = append(lines, SectionContentLine(row, width))
	}

	lines = append(lines, SectionFooter(width))

	return strings.Join(lines, "\n")
}
