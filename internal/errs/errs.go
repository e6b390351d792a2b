// Package errs defines the error taxonomy shared by every operation in the
// module. Errors are tagged with sentinel markers so callers can classify
// failures with errors.Is without depending on message text.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for error classification.
var (
	ErrBinaryNotFound = errors.New("binary not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrProcessFailed  = errors.New("process failed")
	ErrFilter         = errors.New("filter error")
	ErrTimeout        = errors.New("timeout")
	ErrParse          = errors.New("parse error")
	ErrUnsupported    = errors.New("unsupported operation")
)

// BinaryNotFoundError reports a required external binary that could not be
// located, with an optional installation hint.
type BinaryNotFoundError struct {
	Binary string
	Hint   string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("binary %q not found on PATH", e.Binary)
}

func (e *BinaryNotFoundError) Unwrap() error { return ErrBinaryNotFound }

// ProcessError reports a spawned command that exited with a non-zero status.
// Stderr holds a bounded excerpt of the captured diagnostic output.
type ProcessError struct {
	Binary   string
	ExitCode int
	HasCode  bool
	Stderr   string
}

func (e *ProcessError) Error() string {
	code := "unknown"
	if e.HasCode {
		code = fmt.Sprintf("%d", e.ExitCode)
	}
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed (exit %s)", e.Binary, code)
	}
	return fmt.Sprintf("%s failed (exit %s): %s", e.Binary, code, e.Stderr)
}

func (e *ProcessError) Unwrap() error { return ErrProcessFailed }

// BinaryNotFound builds a discovery failure for the named binary.
func BinaryNotFound(binary, hint string) error {
	return &BinaryNotFoundError{Binary: binary, Hint: hint}
}

// InvalidInput tags a configuration failure detected before any process is
// spawned.
func InvalidInput(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}

// ProcessFailed builds a ProcessError from an exit status and captured stderr.
func ProcessFailed(binary string, exitCode int, hasCode bool, stderr string) error {
	return &ProcessError{Binary: binary, ExitCode: exitCode, HasCode: hasCode, Stderr: stderr}
}

// Parse tags a report-parsing failure.
func Parse(message string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, message, err)
	}
	return fmt.Errorf("%w: %s", ErrParse, message)
}

// Unsupported tags functionality that has not been implemented.
func Unsupported(message string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, message)
}

// Suggestion derives an advisory remediation hint from an error's
// classification and, for invalid input, from recognizable message
// substrings. It returns "" when no hint applies. The hint is presentation
// text only and never drives control flow.
func Suggestion(err error) string {
	if err == nil {
		return ""
	}
	var notFound *BinaryNotFoundError
	if errors.As(err, &notFound) {
		if notFound.Hint != "" {
			return notFound.Hint
		}
		return "install ffmpeg with 'brew install ffmpeg' (macOS), 'apt install ffmpeg' (Linux), or download from ffmpeg.org"
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		msg := err.Error()
		switch {
		case strings.Contains(msg, "input"):
			return "provide an input file path and ensure the input file exists"
		case strings.Contains(msg, "output"):
			return "provide an output file path"
		}
		return ""
	case errors.Is(err, ErrProcessFailed):
		return "check that the requested codecs and formats are valid for the installed ffmpeg build"
	case errors.Is(err, ErrFilter):
		return "check the filter syntax against the installed FFmpeg version"
	}
	return ""
}
