package media

import (
	"fmt"
	"math"
	"time"
)

// Time is a non-negative position used for seeking and trimming. The zero
// value is the zero timestamp.
type Time struct {
	d time.Duration
}

// Seconds builds a Time from whole seconds.
func Seconds(secs uint64) Time {
	return Time{d: time.Duration(secs) * time.Second}
}

// SecondsF builds a Time from a floating-point second count. The value is
// rounded to the nearest nanosecond before splitting into whole and
// fractional parts so float rounding noise cannot leak into the millisecond
// field.
func SecondsF(secs float64) Time {
	if secs <= 0 || math.IsNaN(secs) {
		return Time{}
	}
	nanos := math.Round(secs * float64(time.Second))
	return Time{d: time.Duration(nanos)}
}

// FromDuration builds a Time from a duration. Negative durations clamp to
// zero; positions before the start of the input are not representable.
func FromDuration(d time.Duration) Time {
	if d < 0 {
		return Time{}
	}
	return Time{d: d}
}

// Duration returns the underlying duration.
func (t Time) Duration() time.Duration {
	return t.d
}

// Timestamp renders the position in the HH:MM:SS.mmm form ffmpeg expects.
// Hours, minutes, and seconds truncate; the fractional part rounds to the
// nearest millisecond.
func (t Time) Timestamp() string {
	millis := int64((t.d + 500*time.Microsecond) / time.Millisecond)
	hours := millis / 3_600_000
	minutes := (millis % 3_600_000) / 60_000
	seconds := (millis % 60_000) / 1000
	frac := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, frac)
}

func (t Time) String() string {
	return t.Timestamp()
}
