// Package timefmt formats playback positions for display.
package timefmt

import (
	"fmt"
	"math"
	"time"
)

// Format renders seconds as MM:SS. Minutes are not wrapped into hours.
// Negative, NaN and infinite values render as "00:00".
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "00:00"
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatDuration is Format for a time.Duration.
func FormatDuration(d time.Duration) string {
	return Format(d.Seconds())
}
