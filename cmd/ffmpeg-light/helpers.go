package main

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func formatBitRate(bps uint64) string {
	switch {
	case bps >= 1_000_000:
		return strconv.FormatFloat(float64(bps)/1_000_000, 'f', 1, 64) + " Mb/s"
	case bps >= 1000:
		return strconv.FormatFloat(float64(bps)/1000, 'f', 0, 64) + " kb/s"
	default:
		return strconv.FormatUint(bps, 10) + " b/s"
	}
}

func formatSize(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return strconv.FormatUint(bytes, 10) + " B"
	}
	value := float64(bytes)
	suffixes := []string{"KiB", "MiB", "GiB", "TiB"}
	idx := -1
	for value >= unit && idx < len(suffixes)-1 {
		value /= unit
		idx++
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + " " + suffixes[idx]
}

// languageName resolves a probe language tag like "eng" to a display name.
// Unparseable tags pass through unchanged.
func languageName(tag string) string {
	if tag == "" {
		return ""
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.English.Languages().Name(parsed); name != "" {
		return name
	}
	return tag
}
