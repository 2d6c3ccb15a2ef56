package arcstats

import "sync"

// DefaultHistorySize is the default number of derived-metric records to
// retain for charting.
const DefaultHistorySize = 60

// History is a fixed-capacity FIFO of derived metrics, oldest first.
// Appending past capacity evicts exactly one record per append. It is
// written only by the poll completion handler and read by the chart
// renderer, so a plain RWMutex suffices.
type History struct {
	mu    sync.RWMutex
	data  []Metrics
	head  int
	count int
	size  int
}

// NewHistory creates a history buffer with the given capacity.
// Non-positive capacities fall back to DefaultHistorySize.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		data: make([]Metrics, size),
		size: size,
	}
}

// Record appends one metrics record, evicting the oldest when full.
func (h *History) Record(m Metrics) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.data[h.head] = m
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Len returns the number of records currently stored.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return h.size
}

// All returns every stored record in chronological order (oldest first).
func (h *History) All() []Metrics {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return nil
	}

	result := make([]Metrics, h.count)
	start := (h.head - h.count + h.size) % h.size
	for i := 0; i < h.count; i++ {
		result[i] = h.data[(start+i)%h.size]
	}
	return result
}

// Latest returns the most recently recorded metrics, if any.
func (h *History) Latest() (Metrics, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return Metrics{}, false
	}
	idx := (h.head - 1 + h.size) % h.size
	return h.data[idx], true
}

// Hits returns the hit-count series in chronological order.
func (h *History) Hits() []float64 {
	return h.series(func(m Metrics) float64 { return float64(m.Hits) })
}

// Misses returns the miss-count series in chronological order.
func (h *History) Misses() []float64 {
	return h.series(func(m Metrics) float64 { return float64(m.Misses) })
}

// Ratios returns the hit-ratio percentage series in chronological order.
func (h *History) Ratios() []float64 {
	return h.series(func(m Metrics) float64 { return m.Ratio })
}

func (h *History) series(pick func(Metrics) float64) []float64 {
	records := h.All()
	if len(records) == 0 {
		return nil
	}
	result := make([]float64, len(records))
	for i, m := range records {
		result[i] = pick(m)
	}
	return result
}
