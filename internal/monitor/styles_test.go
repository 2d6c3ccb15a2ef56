package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRatioColor(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		threshold float64
		expect    string // Color name for readability
	}{
		{"well above threshold", 99.0, 90, "healthy"},
		{"exactly at threshold", 90.0, 90, "healthy"},
		{"just below threshold", 89.9, 90, "warning"},
		{"middle of warning band", 85.0, 90, "warning"},
		{"bottom of warning band", 80.0, 90, "warning"},
		{"below warning band", 79.9, 90, "critical"},
		{"zero ratio", 0.0, 90, "critical"},
		{"custom threshold healthy", 60.0, 50, "healthy"},
		{"custom threshold warning", 45.0, 50, "warning"},
		{"custom threshold critical", 30.0, 50, "critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RatioColor(tt.ratio, tt.threshold)
			switch tt.expect {
			case "healthy":
				assert.Equal(t, ColorHealthy, result)
			case "warning":
				assert.Equal(t, ColorWarning, result)
			case "critical":
				assert.Equal(t, ColorCritical, result)
			}
		})
	}
}

func TestRatioStyle(t *testing.T) {
	style := RatioStyle(95.0, 90)
	assert.Equal(t, ColorHealthy, style.GetForeground())

	style = RatioStyle(50.0, 90)
	assert.Equal(t, ColorCritical, style.GetForeground())
}

func TestRatioWarningBand(t *testing.T) {
	assert.Equal(t, 10.0, RatioWarningBand)
}

func TestSectionHeader(t *testing.T) {
	tests := []struct {
		name  string
		title string
		value string
		width int
	}{
		{"normal width", "Hits", "1,234", 50},
		{"narrow width", "Misses", "99", 15},
		{"very narrow", "X", "Y", 10},
		{"minimum width", "A", "B", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SectionHeader(tt.title, tt.value, tt.width)
			assert.NotEmpty(t, result)
			// Should contain corners
			assert.Contains(t, result, "╭")
			assert.Contains(t, result, "╮")
		})
	}
}

func TestSectionHeaderWidth(t *testing.T) {
	result := SectionHeader("Hit Ratio", "90.00%", 60)
	assert.Equal(t, 60, lipgloss.Width(result))
}

func TestSectionFooter(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"normal width", 50},
		{"narrow width", 10},
		{"minimum width", 2},
		{"below minimum", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SectionFooter(tt.width)
			assert.NotEmpty(t, result)
			// Should contain corners
			assert.Contains(t, result, "╰")
			assert.Contains(t, result, "╯")
		})
	}
}

func TestSectionContentLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
	}{
		{"normal content", "Hello World", 40},
		{"empty content", "", 20},
		{"narrow width", "Test", 10},
		{"minimum width", "X", 4},
		{"below minimum", "Y", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SectionContentLine(tt.content, tt.width)
			assert.NotEmpty(t, result)
			// Should contain borders on both sides
			assert.True(t, strings.Contains(result, "│"))
		})
	}
}

func TestSectionContentLineWidth(t *testing.T) {
	result := SectionContentLine("content", 40)
	assert.Equal(t, 40, lipgloss.Width(result))
}

func TestColorConstants(t *testing.T) {
	// Verify color constants are defined
	assert.NotEmpty(t, string(ColorDarkBg))
	assert.NotEmpty(t, string(ColorSurfaceBg))
	assert.NotEmpty(t, string(ColorBorder))
	assert.NotEmpty(t, string(ColorHealthy))
	assert.NotEmpty(t, string(ColorWarning))
	assert.NotEmpty(t, string(ColorCritical))
	assert.NotEmpty(t, string(ColorTextPrimary))
	assert.NotEmpty(t, string(ColorTextSecondary))
	assert.NotEmpty(t, string(ColorTextMuted))
	assert.NotEmpty(t, string(ColorAccent))
	assert.NotEmpty(t, string(ColorAccentDim))
	assert.NotEmpty(t, string(ColorGraphHits))
	assert.NotEmpty(t, string(ColorGraphMisses))
}
