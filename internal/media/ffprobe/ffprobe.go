package ffprobe

import (
	"context"
	"strings"

	"ffmpeglight/internal/command"
	"ffmpeglight/internal/deps"
	"ffmpeglight/internal/errs"
	"ffmpeglight/internal/media"
)

// Result pairs the typed probe outcome with the raw JSON payload the prober
// produced, so callers can pass the report through unchanged.
type Result struct {
	Probe media.ProbeResult
	raw   []byte
}

// RawJSON returns the unmodified ffprobe report.
func (r Result) RawJSON() []byte {
	return append([]byte(nil), r.raw...)
}

// Inspect probes a file using binaries discovered on PATH.
func Inspect(ctx context.Context, path string) (Result, error) {
	bins, err := deps.Locate()
	if err != nil {
		return Result{}, err
	}
	return InspectWith(ctx, bins, path)
}

// InspectWith probes a file with already-resolved binaries. The prober is
// always invoked with the fixed JSON reporting flags; extraArgs are inserted
// after those and before the input path.
func InspectWith(ctx context.Context, bins deps.Binaries, path string, extraArgs ...string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, errs.InvalidInput("input path is required")
	}
	args := []string{"-v", "quiet", "-print_format", "json", "-show_format", "-show_streams"}
	args = append(args, extraArgs...)
	args = append(args, path)

	output, err := command.Output(ctx, bins.FFprobe, args...)
	if err != nil {
		return Result{}, err
	}
	probe, err := Parse(output)
	if err != nil {
		return Result{}, err
	}
	return Result{Probe: probe, raw: append([]byte(nil), output...)}, nil
}
