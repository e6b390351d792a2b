package media

import "time"

// FormatInfo is container-level metadata reported by the prober. Every field
// is optional because ffprobe omits whatever it cannot determine.
type FormatInfo struct {
	FormatName     string
	FormatLongName string
	Duration       *time.Duration
	BitRate        *uint64
	Size           *uint64
}

// Stream is one elementary track in a container. The concrete types are
// VideoStream, AudioStream, SubtitleStream, and DataStream; streams of any
// other kind are dropped during parsing rather than modeled.
type Stream interface {
	stream()
}

// VideoStream describes a video track.
type VideoStream struct {
	Codec     CodecType
	Width     *int
	Height    *int
	BitRate   *uint64
	FrameRate *float64
}

// AudioStream describes an audio track.
type AudioStream struct {
	Codec      CodecType
	Channels   *int
	SampleRate *int
	BitRate    *uint64
}

// SubtitleStream describes a subtitle track. Language is the raw tag value
// ("eng", "fra"), empty when untagged.
type SubtitleStream struct {
	Codec    CodecType
	Language string
}

// DataStream describes an auxiliary data track.
type DataStream struct {
	Codec       CodecType
	Description string
}

func (VideoStream) stream()    {}
func (AudioStream) stream()    {}
func (SubtitleStream) stream() {}
func (DataStream) stream()     {}

// ProbeResult aggregates the parsed output of one probe invocation. It is
// built once by the parser and never mutated afterward.
type ProbeResult struct {
	format  FormatInfo
	streams []Stream
}

// NewProbeResult assembles a result from parsed parts. Stream order is
// preserved as reported by the prober.
func NewProbeResult(format FormatInfo, streams []Stream) ProbeResult {
	return ProbeResult{format: format, streams: append([]Stream(nil), streams...)}
}

// Format returns the container-level metadata.
func (r ProbeResult) Format() FormatInfo {
	return r.format
}

// Streams returns all streams in report order.
func (r ProbeResult) Streams() []Stream {
	return append([]Stream(nil), r.streams...)
}

// FirstVideo returns the first video stream, if any.
func (r ProbeResult) FirstVideo() (VideoStream, bool) {
	for _, s := range r.streams {
		if v, ok := s.(VideoStream); ok {
			return v, true
		}
	}
	return VideoStream{}, false
}

// FirstAudio returns the first audio stream, if any.
func (r ProbeResult) FirstAudio() (AudioStream, bool) {
	for _, s := range r.streams {
		if a, ok := s.(AudioStream); ok {
			return a, true
		}
	}
	return AudioStream{}, false
}

// Duration returns the container duration when the prober reported one.
func (r ProbeResult) Duration() (time.Duration, bool) {
	if r.format.Duration == nil {
		return 0, false
	}
	return *r.format.Duration, true
}
