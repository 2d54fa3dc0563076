// Package report formats the byte-count summaries the command-line demo
// prints after encoding: raw input size, entropy-coded size, and a
// reference zstd size.
package report

import (
	"fmt"

	"github.com/dsnet/golib/strconv"
)

// Sizes holds the three byte counts a single comparison run produces.
type Sizes struct {
	Raw     int
	Entropy int
	Zstd    int
}

// Size formats n as a human-readable byte count (e.g. "1.50KiB"), using
// base-1024 prefixes.
func Size(n int) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
}

// Ratio formats the compression ratio of coded against raw, as a
// percentage of the original size.
func Ratio(raw, coded int) string {
	if raw == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(coded)/float64(raw))
}

// String renders a one-line human-readable summary of s.
func (s Sizes) String() string {
	return fmt.Sprintf(
		"raw=%s entropy=%s (%s) zstd=%s (%s)",
		Size(s.Raw),
		Size(s.Entropy), Ratio(s.Raw, s.Entropy),
		Size(s.Zstd), Ratio(s.Raw, s.Zstd),
	)
}
