package arcstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantCap int
	}{
		{"explicit size", 10, 10},
		{"zero falls back to default", 0, DefaultHistorySize},
		{"negative falls back to default", -5, DefaultHistorySize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.size)
			assert.Equal(t, tt.wantCap, h.Cap())
			assert.Equal(t, 0, h.Len())
		})
	}
}

func TestHistory_RecordAndAll(t *testing.T) {
	h := NewHistory(5)

	for i := 1; i <= 3; i++ {
		h.Record(Metrics{Hits: int64(i)})
	}

	all := h.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].Hits)
	assert.Equal(t, int64(2), all[1].Hits)
	assert.Equal(t, int64(3), all[2].Hits)
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Record(Metrics{Hits: int64(i)})
	}

	all := h.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].Hits, "oldest surviving record")
	assert.Equal(t, int64(5), all[2].Hits, "newest record")
}

func TestHistory_CapacityHolds(t *testing.T) {
	// 65 appends into a 60-slot buffer keeps the newest 60
	h := NewHistory(DefaultHistorySize)

	for i := 1; i <= 65; i++ {
		h.Record(Metrics{Hits: int64(i)})
	}

	assert.Equal(t, 60, h.Len())

	all := h.All()
	require.Len(t, all, 60)
	assert.Equal(t, int64(6), all[0].Hits)
	assert.Equal(t, int64(65), all[59].Hits)
}

func TestHistory_Latest(t *testing.T) {
	h := NewHistory(4)

	_, ok := h.Latest()
	assert.False(t, ok, "empty history has no latest")

	h.Record(Metrics{Hits: 1})
	h.Record(Metrics{Hits: 2})

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, int64(2), latest.Hits)
}

func TestHistory_EmptySeries(t *testing.T) {
	h := NewHistory(4)

	assert.Nil(t, h.All())
	assert.Nil(t, h.Hits())
	assert.Nil(t, h.Misses())
	assert.Nil(t, h.Ratios())
}

func TestHistory_Series(t *testing.T) {
	h := NewHistory(10)

	h.Record(Metrics{Hits: 10, Misses: 2, Ratio: 83.3})
	h.Record(Metrics{Hits: 20, Misses: 1, Ratio: 95.2})

	assert.Equal(t, []float64{10, 20}, h.Hits())
	assert.Equal(t, []float64{2, 1}, h.Misses())

	ratios := h.Ratios()
	require.Len(t, ratios, 2)
	assert.InDelta(t, 83.3, ratios[0], 0.0001)
	assert.InDelta(t, 95.2, ratios[1], 0.0001)
}

func TestHistory_SeriesAfterWraparound(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 7; i++ {
		h.Record(Metrics{Ratio: float64(i)})
	}

	assert.Equal(t, []float64{5, 6, 7}, h.Ratios())
}
