package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force TrueColor output in tests so we can verify ANSI color codes
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestFindRange(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		wantMin float64
		wantMax float64
	}{
		{
			name:    "empty data",
			data:    []float64{},
			wantMin: 0,
			wantMax: 0,
		},
		{
			name:    "single value",
			data:    []float64{42},
			wantMin: 42,
			wantMax: 42,
		},
		{
			name:    "mixed values",
			data:    []float64{-50, 200, 500},
			wantMin: -50,
			wantMax: 500,
		},
		{
			name:    "small counts keep their own scale",
			data:    []float64{3, 7, 12},
			wantMin: 3,
			wantMax: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minVal, maxVal := findRange(tt.data)
			assert.Equal(t, tt.wantMin, minVal)
			assert.Equal(t, tt.wantMax, maxVal)
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name   string
		val    float64
		minVal float64
		maxVal float64
		want   float64
	}{
		{name: "middle value", val: 50, minVal: 0, maxVal: 100, want: 0.5},
		{name: "min value", val: 0, minVal: 0, maxVal: 100, want: 0},
		{name: "max value", val: 100, minVal: 0, maxVal: 100, want: 1},
		{name: "degenerate range", val: 5, minVal: 5, maxVal: 5, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizeValue(tt.val, tt.minVal, tt.maxVal), 0.0001)
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-5, 10))
	assert.Equal(t, 10, clampInt(15, 10))
	assert.Equal(t, 7, clampInt(7, 10))
}

func TestRenderBrailleSparkline_Empty(t *testing.T) {
	assert.Empty(t, RenderBrailleSparkline(nil, 10, 2, ColorGraphHits))
	assert.Empty(t, RenderBrailleSparkline([]float64{1, 2}, 0, 2, ColorGraphHits))
	assert.Empty(t, RenderBrailleSparkline([]float64{1, 2}, 10, 0, ColorGraphHits))
}

func TestRenderBrailleSparkline_Dimensions(t *testing.T) {
	data := []float64{10, 200, 3000, 150, 90}

	out := RenderBrailleSparkline(data, 10, 3, ColorGraphHits)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3, "one line per height row")
	for _, line := range lines {
		assert.Equal(t, 10, lipgloss.Width(line), "each row should span the full width")
	}
}

func TestRenderBrailleSparkline_AutoscalesCounts(t *testing.T) {
	// Values far below 100 must still reach the top of the graph:
	// counters are autoscaled, not treated as percentages.
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	out := RenderBrailleSparkline(data, 4, 2, ColorGraphHits)

	// The peak column should have dots in the top row
	topRow := strings.Split(out, "\n")[0]
	assert.True(t, strings.ContainsAny(topRow, "⠀⠁⠈⢀⡀⣿"), "rendered output uses braille")
	assert.NotEqual(t, strings.Repeat("⠀", 4), stripANSI(topRow), "top row should not be empty for the max value")
}

func TestRenderScaledSparkline_SharedRange(t *testing.T) {
	// A small series plotted against a larger shared max stays low
	data := []float64{10, 10, 10, 10}

	out := RenderScaledSparkline(data, 2, 4, 0, 100, ColorGraphMisses)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat("⠀", 2), stripANSI(lines[0]), "10 of 100 must not reach the top row")
	assert.NotEqual(t, strings.Repeat("⠀", 2), stripANSI(lines[3]))
}

func TestRenderRatioSparkline_FixedScale(t *testing.T) {
	// A flat 50% series fills exactly half the rows
	data := make([]float64, 20)
	for i := range data {
		data[i] = 50
	}

	out := RenderRatioSparkline(data, 10, 4, 90)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	// Top half empty, bottom half filled
	assert.Equal(t, strings.Repeat("⠀", 10), stripANSI(lines[0]))
	assert.Equal(t, strings.Repeat("⠀", 10), stripANSI(lines[1]))
	assert.NotEqual(t, strings.Repeat("⠀", 10), stripANSI(lines[2]))
	assert.NotEqual(t, strings.Repeat("⠀", 10), stripANSI(lines[3]))
}

func TestRenderRatioSparkline_ThresholdColors(t *testing.T) {
	healthy := RenderRatioSparkline([]float64{95, 95}, 2, 1, 90)
	low := RenderRatioSparkline([]float64{40, 40}, 2, 1, 90)

	assert.Contains(t, healthy, "57;255;20", "healthy ratio renders neon green")
	assert.Contains(t, low, "255;0;85", "low ratio renders critical red")
}

func TestRenderMiniSparkline(t *testing.T) {
	out := RenderMiniSparkline([]float64{0, 50, 100}, 3, ColorGraphHits)

	stripped := stripANSI(out)
	assert.Len(t, []rune(stripped), 3)
	for _, r := range stripped {
		assert.Contains(t, string(sparklineBlocks), string(r))
	}
}

func TestResampleData(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		target int
		want   []float64
	}{
		{
			name:   "empty input",
			data:   nil,
			target: 5,
			want:   nil,
		},
		{
			name:   "zero target",
			data:   []float64{1, 2},
			target: 0,
			want:   nil,
		},
		{
			name:   "same size passes through",
			data:   []float64{1, 2, 3},
			target: 3,
			want:   []float64{1, 2, 3},
		},
		{
			name:   "single value fills",
			data:   []float64{7},
			target: 3,
			want:   []float64{7, 7, 7},
		},
		{
			name:   "downsampling keeps peaks",
			data:   []float64{1, 9, 2, 2, 8, 1},
			target: 3,
			want:   []float64{9, 2, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resampleData(tt.data, tt.target))
		})
	}
}

func TestResampleData_Upsampling(t *testing.T) {
	out := resampleData([]float64{0, 10}, 3)

	require.Len(t, out, 3)
	assert.Equal(t, 0.0, out[0])
	assert.InDelta(t, 5.0, out[1], 0.0001)
	assert.Equal(t, 10.0, out[2])
}

// stripANSI removes escape sequences so tests can compare visible runes.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
