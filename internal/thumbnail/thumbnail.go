// Package thumbnail extracts single frames from media files through ffmpeg.
package thumbnail

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ffmpeglight/internal/command"
	"ffmpeglight/internal/deps"
	"ffmpeglight/internal/errs"
	"ffmpeglight/internal/media"
)

// Format selects the output image container.
type Format int

const (
	PNG Format = iota
	JPEG
)

func (f Format) extension() string {
	if f == JPEG {
		return "jpg"
	}
	return "png"
}

func (f Format) formatArgs() []string {
	if f == JPEG {
		return []string{"-f", "mjpeg"}
	}
	return []string{"-f", "image2"}
}

// Options configures one extraction. The zero value captures the first frame
// as PNG at the input's native size.
type Options struct {
	Time   media.Time
	Width  int
	Height int
	Format Format
}

// Generate extracts a frame using binaries discovered on PATH.
func Generate(ctx context.Context, input, output string, opts Options) error {
	bins, err := deps.Locate()
	if err != nil {
		return err
	}
	return GenerateWith(ctx, bins, input, output, opts)
}

// GenerateWith extracts a frame with already-resolved binaries. When the
// output path has no extension, the format's default is appended. The output
// directory is created if needed.
func GenerateWith(ctx context.Context, bins deps.Binaries, input, output string, opts Options) error {
	if input == "" {
		return errs.InvalidInput("input path is required")
	}
	if output == "" {
		return errs.InvalidInput("output path is required")
	}
	if filepath.Ext(output) == "" {
		output += "." + opts.Format.extension()
	}
	if parent := filepath.Dir(output); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	args := []string{"-y", "-ss", opts.Time.Timestamp(), "-i", input, "-vframes", "1"}
	if opts.Width > 0 && opts.Height > 0 {
		args = append(args, "-vf", fmt.Sprintf("scale=%d:%d", opts.Width, opts.Height))
	}
	args = append(args, opts.Format.formatArgs()...)
	args = append(args, output)
	return command.Run(ctx, bins.FFmpeg, args...)
}
