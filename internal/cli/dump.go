package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"arcwatch/internal/arcstats"
	"arcwatch/internal/config"
	"arcwatch/internal/errors"
)

var (
	dumpJSON  bool
	dumpHuman bool
)

// dumpCmd prints one snapshot and exits. Useful for scripts and for
// terminals where the TUI can't run.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print one statistics snapshot and exit",
	Long: `Fetch ARC statistics once and print them to stdout.

Plain output lists every statistic followed by the summary line. With
--json the snapshot and derived metrics are emitted as a JSON document.

Examples:
  arcwatch dump
  arcwatch dump --json | jq .metrics.ratio`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("human") {
			cfg.HumanReadable = dumpHuman
		}
		source := arcstats.NewCommandSource(cfg.Source.Command, cfg.Source.Args...)
		return dumpCommand(os.Stdout, cfg, source, dumpJSON)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Emit JSON instead of plain text")
	dumpCmd.Flags().BoolVar(&dumpHuman, "human", true, "Scale byte values (--human=false for raw numbers)")
}

// dumpEntry is one statistic in the JSON document.
type dumpEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Num   int64  `json:"num,omitempty"`
}

// dumpMetrics is the derived summary in the JSON document.
type dumpMetrics struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Total   int64   `json:"total"`
	ARCSize int64   `json:"arc_size"`
	Ratio   float64 `json:"ratio"`
	Low     bool    `json:"low"`
}

// dumpDocument is the full --json payload.
type dumpDocument struct {
	CapturedAt time.Time   `json:"captured_at"`
	Entries    []dumpEntry `json:"entries"`
	Metrics    dumpMetrics `json:"metrics"`
}

// dumpCommand fetches one snapshot and writes it to w.
func dumpCommand(w io.Writer, cfg *config.Config, source arcstats.Source, asJSON bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RefreshInterval)
	defer cancel()

	raw, err := source.Fetch(ctx)
	if err != nil {
		return err
	}

	snap := arcstats.Parse(raw)
	metrics := arcstats.Aggregate(snap, cfg.LowRatioThreshold)

	if len(snap.Entries) == 0 {
		return errors.New(errors.ErrSource,
			"The stats command produced no parsable statistics",
			"Check that it prints 'key: value' lines, e.g. 'sysctl kstat.zfs.misc.arcstats'.")
	}

	if asJSON {
		return writeDumpJSON(w, snap, metrics)
	}
	return writeDumpText(w, cfg, snap, metrics)
}

func writeDumpJSON(w io.Writer, snap *arcstats.Snapshot, metrics arcstats.Metrics) error {
	doc := dumpDocument{
		CapturedAt: snap.CapturedAt,
		Entries:    make([]dumpEntry, 0, len(snap.Entries)),
		Metrics: dumpMetrics{
			Hits:    metrics.Hits,
			Misses:  metrics.Misses,
			Total:   metrics.Total,
			ARCSize: metrics.ARCSize,
			Ratio:   metrics.Ratio,
			Low:     metrics.Low,
		},
	}

	for _, e := range snap.Entries {
		entry := dumpEntry{Key: e.Key, Value: e.Value}
		if e.IsNum {
			entry.Num = e.Num
		}
		doc.Entries = append(doc.Entries, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeDumpText(w io.Writer, cfg *config.Config, snap *arcstats.Snapshot, metrics arcstats.Metrics) error {
	keyWidth := 0
	for _, e := range snap.Entries {
		if len(e.Key) > keyWidth {
			keyWidth = len(e.Key)
		}
	}

	for _, e := range snap.Entries {
		value := e.Value
		if e.IsNum {
			value = arcstats.FormatValue(e.Num, cfg.HumanReadable)
		}
		fmt.Fprintf(w, "%-*s  %s\n", keyWidth, e.Key, value)
	}

	fmt.Fprintf(w, "\nARC Size: %s    Hits: %s    Misses: %s    Hit Ratio: %.2f%%\n",
		arcstats.FormatValue(metrics.ARCSize, cfg.HumanReadable),
		arcstats.FormatCount(metrics.Hits),
		arcstats.FormatCount(metrics.Misses),
		metrics.Ratio)

	if metrics.Low {
		fmt.Fprintf(w, "warning: hit ratio below %.0f%%\n", cfg.LowRatioThreshold)
	}

	return nil
}
