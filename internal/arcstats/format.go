package arcstats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// unitPrefixes are the byte-magnitude prefixes cycled through by the
// human-readable formatter. Values past tebibytes fall through to "P".
var unitPrefixes = []string{"", "K", "M", "G", "T"}

// FormatValue renders an integer statistic for display.
//
// With human=false the value is a thousands-grouped decimal ("1,073,741,824").
// With human=true the value is repeatedly divided by 1024 until its
// magnitude drops below 1024, then rendered with one decimal place and the
// matching prefix ("1.0 GB"). Sign is preserved in both modes.
func FormatValue(n int64, human bool) string {
	if human {
		return FormatBytes(n)
	}
	return FormatCount(n)
}

// FormatBytes renders n as a human-readable byte count, e.g. "1.5 KB".
func FormatBytes(n int64) string {
	v := float64(n)
	for _, prefix := range unitPrefixes {
		if math.Abs(v) < 1024 {
			return fmt.Sprintf("%.1f %sB", v, prefix)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1f PB", v)
}

// FormatCount renders n as a decimal integer with thousands separators,
// e.g. "12,345". Used for hit and miss counters regardless of unit mode.
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
