package filters

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ffmpeglight/internal/media"
)

// VideoFilter is one fragment in a -vf chain.
type VideoFilter interface {
	Render() string
	videoFilter()
}

// Scale resizes the video to the given dimensions.
type Scale struct {
	Width  int
	Height int
}

func (f Scale) Render() string {
	return fmt.Sprintf("scale=%d:%d", f.Width, f.Height)
}

// Trim keeps the window between Start and End. A nil End trims to the end of
// the input.
type Trim struct {
	Start media.Time
	End   *media.Time
}

func (f Trim) Render() string {
	if f.End != nil {
		return fmt.Sprintf("trim=start=%s:end=%s", f.Start, *f.End)
	}
	return fmt.Sprintf("trim=start=%s", f.Start)
}

// Crop cuts a Width x Height region at offset (X, Y).
type Crop struct {
	Width  int
	Height int
	X      int
	Y      int
}

func (f Crop) Render() string {
	return fmt.Sprintf("crop=%d:%d:%d:%d", f.Width, f.Height, f.X, f.Y)
}

// Rotate turns the frame by the stored angle. Degrees are what callers
// think in; ffmpeg's rotate filter takes radians, so rendering converts.
type Rotate struct {
	Degrees float64
}

func (f Rotate) Render() string {
	return "rotate=" + formatFloat(f.Degrees*math.Pi/180)
}

// Flip mirrors the frame. Direction 'h' is horizontal and 'v' vertical; any
// other byte falls back to horizontal, a quirk kept for compatibility.
type Flip struct {
	Direction byte
}

func (f Flip) Render() string {
	if f.Direction == 'v' {
		return "vflip"
	}
	return "hflip"
}

// BrightnessContrast adjusts levels through the eq filter. With both fields
// nil it renders the bare filter name.
type BrightnessContrast struct {
	Brightness *float64
	Contrast   *float64
}

func (f BrightnessContrast) Render() string {
	parts := make([]string, 0, 2)
	if f.Brightness != nil {
		parts = append(parts, "brightness="+formatFloat(*f.Brightness))
	}
	if f.Contrast != nil {
		parts = append(parts, "contrast="+formatFloat(*f.Contrast))
	}
	if len(parts) == 0 {
		return "eq"
	}
	return "eq=" + strings.Join(parts, ":")
}

// DenoiseStrength selects one of the fixed hqdn3d presets.
type DenoiseStrength int

const (
	DenoiseLight DenoiseStrength = iota
	DenoiseMedium
	DenoiseHeavy
)

// Denoise applies hqdn3d with a fixed parameter set per strength. The
// presets are not independently configurable.
type Denoise struct {
	Strength DenoiseStrength
}

func (f Denoise) Render() string {
	switch f.Strength {
	case DenoiseMedium:
		return "hqdn3d=3:3:6:6"
	case DenoiseHeavy:
		return "hqdn3d=5:5:6:6"
	default:
		return "hqdn3d=1.5:1.5:6:6"
	}
}

// Deinterlace applies yadif with defaults.
type Deinterlace struct{}

func (Deinterlace) Render() string {
	return "yadif"
}

// CustomVideo passes a raw filter expression through verbatim. Keeping the
// fragment comma-safe is the caller's responsibility.
type CustomVideo string

func (f CustomVideo) Render() string {
	return string(f)
}

func (Scale) videoFilter()              {}
func (Trim) videoFilter()               {}
func (Crop) videoFilter()               {}
func (Rotate) videoFilter()             {}
func (Flip) videoFilter()               {}
func (BrightnessContrast) videoFilter() {}
func (Denoise) videoFilter()            {}
func (Deinterlace) videoFilter()        {}
func (CustomVideo) videoFilter()        {}

// JoinVideo renders a chain in insertion order as one -vf value.
func JoinVideo(chain []VideoFilter) string {
	fragments := make([]string, 0, len(chain))
	for _, f := range chain {
		fragments = append(fragments, f.Render())
	}
	return strings.Join(fragments, ",")
}

// formatFloat renders the shortest decimal that round-trips, so whole values
// drop their fraction (2.0 -> "2") and golden outputs stay stable.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
