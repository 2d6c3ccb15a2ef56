// Package arcstats implements the ZFS ARC statistics pipeline: fetching
// raw kstat output from the operating system, parsing it into an ordered
// snapshot, deriving summary metrics (hit ratio, ARC size), and keeping a
// bounded history of derived metrics for charting.
//
// # Pipeline
//
// One poll cycle flows through the package as:
//
//  1. Source.Fetch obtains raw `key: value` text (normally from sysctl)
//  2. Parse converts the text into a Snapshot
//  3. Aggregate derives Metrics from the snapshot's numeric values
//  4. History.Record appends the metrics, evicting the oldest past capacity
//
// All stages except Fetch are pure and never fail: malformed lines are
// skipped, non-integer values are kept as opaque display text, and missing
// well-known keys are treated as zero. The only error the pipeline can
// surface is a retrieval failure from the source.
package arcstats
