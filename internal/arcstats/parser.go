package arcstats

import (
	"strconv"
	"strings"
	"time"
)

// Separator between a statistic's key and its value in sysctl output.
const separator = ": "

// Well-known sysctl keys for the ARC summary metrics.
const (
	// Prefix is the kstat namespace that holds ZFS ARC statistics.
	Prefix = "kstat.zfs.misc.arcstats"

	KeyHits   = Prefix + ".hits"
	KeyMisses = Prefix + ".misses"
	KeySize   = Prefix + ".size"
)

// StatLine is a single parsed statistic.
type StatLine struct {
	Key   string
	Value string // original text, shown as-is when the value is not an integer
	Num   int64  // parsed integer value, valid only when IsNum is true
	IsNum bool
}

// Snapshot is the full parsed result of one poll cycle.
//
// Entries preserves the order of appearance in the raw text; Numeric holds
// only the entries whose values parsed as base-10 integers. Every key in
// Numeric also appears in Entries. A snapshot is built fresh each poll and
// replaced wholesale, never merged.
type Snapshot struct {
	Entries    []StatLine
	Numeric    map[string]int64
	CapturedAt time.Time
}

// Parse converts raw `key: value` text into a Snapshot.
//
// A line is significant only if it contains ": "; other lines are skipped.
// The key is everything before the first separator and the value is the
// remainder, both trimmed. Values that parse as signed base-10 integers go
// into Numeric; anything else is kept as opaque text. Duplicate keys
// overwrite in Numeric (last one wins) but each occurrence still gets its
// own table entry. Parse never fails: bad lines are data, not errors.
func Parse(raw string) *Snapshot {
	snap := &Snapshot{
		Numeric:    make(map[string]int64),
		CapturedAt: time.Now(),
	}

	for _, line := range strings.Split(raw, "\n") {
		idx := strings.Index(line, separator)
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+len(separator):])

		entry := StatLine{Key: key, Value: value}
		if num, err := strconv.ParseInt(value, 10, 64); err == nil {
			entry.Num = num
			entry.IsNum = true
			snap.Numeric[key] = num
		}
		snap.Entries = append(snap.Entries, entry)
	}

	return snap
}

// Lookup returns the numeric value for key, or 0 if the key is absent or
// did not parse as an integer.
func (s *Snapshot) Lookup(key string) int64 {
	if s == nil {
		return 0
	}
	return s.Numeric[key]
}
