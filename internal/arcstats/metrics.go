package arcstats

// DefaultLowRatioThreshold is the hit-ratio percentage below which the
// cache is flagged as underperforming.
const DefaultLowRatioThreshold = 90.0

// Metrics holds the summary figures derived from one snapshot.
type Metrics struct {
	Hits    int64
	Misses  int64
	Total   int64
	ARCSize int64
	Ratio   float64 // hit percentage in [0, 100]; 0 when there is no traffic
	Low     bool    // true when 0 < Ratio < threshold
}

// Aggregate derives summary metrics from a snapshot.
//
// The well-known hit, miss, and size keys are looked up in the numeric
// mapping; absent keys count as zero. The ratio is guarded against zero
// traffic (reported as 0.0, never NaN). A ratio of exactly zero is not
// flagged low: an idle cache is not an unhealthy one.
func Aggregate(snap *Snapshot, lowThreshold float64) Metrics {
	m := Metrics{
		Hits:    snap.Lookup(KeyHits),
		Misses:  snap.Lookup(KeyMisses),
		ARCSize: snap.Lookup(KeySize),
	}
	m.Total = m.Hits + m.Misses

	if m.Total > 0 {
		m.Ratio = float64(m.Hits) / float64(m.Total) * 100
	}
	if m.Ratio < 0 {
		m.Ratio = 0
	}
	if m.Ratio > 100 {
		m.Ratio = 100
	}

	m.Low = m.Ratio > 0 && m.Ratio < lowThreshold

	return m
}
