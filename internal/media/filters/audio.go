package filters

import "strings"

// AudioFilter is one fragment in an -af chain.
type AudioFilter interface {
	Render() string
	audioFilter()
}

// Volume scales loudness by the given multiplier.
type Volume float64

func (f Volume) Render() string {
	return "volume=" + formatFloat(float64(f))
}

// Equalizer adjusts bass/mid/treble through superequalizer. With all bands
// nil it renders the bare filter name.
type Equalizer struct {
	Bass   *float64
	Mid    *float64
	Treble *float64
}

func (f Equalizer) Render() string {
	parts := make([]string, 0, 3)
	if f.Bass != nil {
		parts = append(parts, "b="+formatFloat(*f.Bass))
	}
	if f.Mid != nil {
		parts = append(parts, "m="+formatFloat(*f.Mid))
	}
	if f.Treble != nil {
		parts = append(parts, "t="+formatFloat(*f.Treble))
	}
	if len(parts) == 0 {
		return "superequalizer"
	}
	return "superequalizer=" + strings.Join(parts, ":")
}

// Normalization applies EBU R128 loudness normalization toward the target
// integrated level in LUFS.
type Normalization struct {
	TargetLevel float64
}

func (f Normalization) Render() string {
	return "loudnorm=I=" + formatFloat(f.TargetLevel)
}

// HighPass attenuates frequencies below the cutoff in Hz.
type HighPass struct {
	Frequency float64
}

func (f HighPass) Render() string {
	return "highpass=f=" + formatFloat(f.Frequency)
}

// LowPass attenuates frequencies above the cutoff in Hz.
type LowPass struct {
	Frequency float64
}

func (f LowPass) Render() string {
	return "lowpass=f=" + formatFloat(f.Frequency)
}

// CustomAudio passes a raw filter expression through verbatim.
type CustomAudio string

func (f CustomAudio) Render() string {
	return string(f)
}

func (Volume) audioFilter()        {}
func (Equalizer) audioFilter()     {}
func (Normalization) audioFilter() {}
func (HighPass) audioFilter()      {}
func (LowPass) audioFilter()       {}
func (CustomAudio) audioFilter()   {}

// JoinAudio renders a chain in insertion order as one -af value.
func JoinAudio(chain []AudioFilter) string {
	fragments := make([]string, 0, len(chain))
	for _, f := range chain {
		fragments = append(fragments, f.Render())
	}
	return strings.Join(fragments, ",")
}
