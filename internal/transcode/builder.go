// Package transcode builds and runs ffmpeg transcode jobs. A Builder
// accumulates configuration through chained calls and is consumed exactly
// once; the rendered argument order is a contract because ffmpeg is
// order-sensitive for some flags.
package transcode

import (
	"context"
	"strconv"
	"strings"

	"ffmpeglight/internal/command"
	"ffmpeglight/internal/deps"
	"ffmpeglight/internal/errs"
	"ffmpeglight/internal/media"
	"ffmpeglight/internal/media/filters"
)

// Builder accumulates one transcode request. The zero value is not ready to
// use; construct with New so overwrite defaults to enabled.
type Builder struct {
	binaries     *deps.Binaries
	input        string
	output       string
	videoCodec   string
	audioCodec   string
	videoBitrate int
	audioBitrate int
	frameRate    float64
	preset       string
	videoFilters []filters.VideoFilter
	audioFilters []filters.AudioFilter
	extraArgs    []string
	overwrite    bool
	consumed     bool
}

// New returns a builder with defaults (overwrite enabled).
func New() *Builder {
	return &Builder{overwrite: true}
}

// Binaries pins the builder to pre-resolved binaries instead of searching
// PATH at validation time.
func (b *Builder) Binaries(bins deps.Binaries) *Builder {
	b.binaries = &bins
	return b
}

// Input sets the input media path.
func (b *Builder) Input(path string) *Builder {
	b.input = path
	return b
}

// Output sets the output media path.
func (b *Builder) Output(path string) *Builder {
	b.output = path
	return b
}

// VideoCodec sets the video encoder token (e.g. "libx264").
func (b *Builder) VideoCodec(codec string) *Builder {
	b.videoCodec = codec
	return b
}

// VideoCodecType sets the video encoder from a typed codec, rendering its
// encoder name.
func (b *Builder) VideoCodecType(codec media.CodecType) *Builder {
	return b.VideoCodec(codec.EncoderName())
}

// AudioCodec sets the audio encoder token (e.g. "aac").
func (b *Builder) AudioCodec(codec string) *Builder {
	b.audioCodec = codec
	return b
}

// AudioCodecType sets the audio encoder from a typed codec.
func (b *Builder) AudioCodecType(codec media.CodecType) *Builder {
	return b.AudioCodec(codec.EncoderName())
}

// VideoBitrate sets the target video bitrate in kbps.
func (b *Builder) VideoBitrate(kbps int) *Builder {
	b.videoBitrate = kbps
	return b
}

// AudioBitrate sets the target audio bitrate in kbps.
func (b *Builder) AudioBitrate(kbps int) *Builder {
	b.audioBitrate = kbps
	return b
}

// FrameRate sets the target frame rate.
func (b *Builder) FrameRate(fps float64) *Builder {
	b.frameRate = fps
	return b
}

// Preset applies a named encoder preset (maps to -preset).
func (b *Builder) Preset(name string) *Builder {
	b.preset = name
	return b
}

// Size appends a scale filter for the given dimensions.
func (b *Builder) Size(width, height int) *Builder {
	return b.VideoFilter(filters.Scale{Width: width, Height: height})
}

// VideoFilter appends a filter to the video chain; filters render in
// insertion order.
func (b *Builder) VideoFilter(f filters.VideoFilter) *Builder {
	b.videoFilters = append(b.videoFilters, f)
	return b
}

// AudioFilter appends a filter to the audio chain.
func (b *Builder) AudioFilter(f filters.AudioFilter) *Builder {
	b.audioFilters = append(b.audioFilters, f)
	return b
}

// ExtraArgs appends raw arguments passed through verbatim, after the filter
// flags and before the output path.
func (b *Builder) ExtraArgs(args ...string) *Builder {
	b.extraArgs = append(b.extraArgs, args...)
	return b
}

// Overwrite controls whether ffmpeg may overwrite the output file. Enabled
// by default.
func (b *Builder) Overwrite(enabled bool) *Builder {
	b.overwrite = enabled
	return b
}

// VideoFilters exposes the accumulated video chain, in insertion order.
func (b *Builder) VideoFilters() []filters.VideoFilter {
	return append([]filters.VideoFilter(nil), b.videoFilters...)
}

// AudioFilters exposes the accumulated audio chain.
func (b *Builder) AudioFilters() []filters.AudioFilter {
	return append([]filters.AudioFilter(nil), b.audioFilters...)
}

// Args validates the configuration and renders the argument sequence in the
// exact order ffmpeg expects:
//
//	[-y|-n] -i input [-c:v] [-c:a] [-b:v] [-b:a] [-r] [-preset] [-vf] [-af] [extra...] output
//
// Input and output paths are mandatory; everything else is omitted when
// unset.
func (b *Builder) Args() ([]string, error) {
	if strings.TrimSpace(b.input) == "" {
		return nil, errs.InvalidInput("input path is required")
	}
	if strings.TrimSpace(b.output) == "" {
		return nil, errs.InvalidInput("output path is required")
	}

	args := make([]string, 0, 16)
	if b.overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	args = append(args, "-i", b.input)
	if b.videoCodec != "" {
		args = append(args, "-c:v", b.videoCodec)
	}
	if b.audioCodec != "" {
		args = append(args, "-c:a", b.audioCodec)
	}
	if b.videoBitrate > 0 {
		args = append(args, "-b:v", strconv.Itoa(b.videoBitrate)+"k")
	}
	if b.audioBitrate > 0 {
		args = append(args, "-b:a", strconv.Itoa(b.audioBitrate)+"k")
	}
	if b.frameRate > 0 {
		args = append(args, "-r", strconv.FormatFloat(b.frameRate, 'f', -1, 64))
	}
	if b.preset != "" {
		args = append(args, "-preset", b.preset)
	}
	if len(b.videoFilters) > 0 {
		args = append(args, "-vf", filters.JoinVideo(b.videoFilters))
	}
	if len(b.audioFilters) > 0 {
		args = append(args, "-af", filters.JoinAudio(b.audioFilters))
	}
	args = append(args, b.extraArgs...)
	args = append(args, b.output)
	return args, nil
}

// Run validates the builder, resolves binaries if none were pinned, and
// executes ffmpeg. The builder is consumed: a second Run fails without
// spawning anything.
func (b *Builder) Run(ctx context.Context) error {
	if b.consumed {
		return errs.InvalidInput("builder already consumed")
	}
	args, err := b.Args()
	if err != nil {
		return err
	}
	bins, err := b.resolveBinaries()
	if err != nil {
		return err
	}
	b.consumed = true
	return command.Run(ctx, bins.FFmpeg, args...)
}

func (b *Builder) resolveBinaries() (deps.Binaries, error) {
	if b.binaries != nil {
		return *b.binaries, nil
	}
	return deps.Locate()
}
