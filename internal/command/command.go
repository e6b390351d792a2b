// Package command executes the external ffmpeg and ffprobe binaries. Each
// call spawns exactly one process and waits for it; no state is shared
// between invocations, so concurrent calls are safe.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"unicode/utf8"

	"ffmpeglight/internal/errs"
)

var commandContext = exec.CommandContext

// stderrLimit bounds the diagnostic excerpt attached to process failures so
// a pathological error flood cannot blow up memory or log lines.
const stderrLimit = 4096

// Run executes the binary and waits for it. Stdout is inherited by the
// calling process (ffmpeg writes progress there); stderr is captured for
// diagnostics. A non-zero exit becomes a process failure carrying the binary
// name, exit code, and a bounded stderr excerpt.
func Run(ctx context.Context, binary string, args ...string) error {
	cmd := commandContext(ctx, binary, args...)
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr
	return mapRunError(ctx, binary, cmd.Run(), stderr.Bytes())
}

// Output executes the binary and returns its captured stdout. Used for
// ffprobe, where stdout is the payload. Stderr is still captured for
// diagnostics on failure.
func Output(ctx context.Context, binary string, args ...string) ([]byte, error) {
	cmd := commandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := mapRunError(ctx, binary, cmd.Run(), stderr.Bytes()); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func mapRunError(ctx context.Context, binary string, err error, stderr []byte) error {
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s did not finish before the deadline", errs.ErrTimeout, displayName(binary))
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return errs.ProcessFailed(displayName(binary), code, code >= 0, Truncate(stderr))
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return errs.BinaryNotFound(displayName(binary), "")
	}
	return fmt.Errorf("run %s: %w", displayName(binary), err)
}

// Truncate limits diagnostic text to stderrLimit bytes, cutting on a rune
// boundary and appending an ellipsis when anything was dropped.
func Truncate(raw []byte) string {
	if len(raw) <= stderrLimit {
		return string(raw)
	}
	cut := stderrLimit
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return string(raw[:cut]) + "…"
}

func displayName(binary string) string {
	if binary == "" {
		return "<unset>"
	}
	return filepath.Base(binary)
}
