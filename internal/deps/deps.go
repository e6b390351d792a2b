// Package deps locates the external binaries the module shells out to and
// reports their availability.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"ffmpeglight/internal/errs"
)

var lookPath = exec.LookPath

const (
	ffmpegHint  = "install ffmpeg with 'brew install ffmpeg' (macOS), 'apt install ffmpeg' (Linux), or download from ffmpeg.org"
	ffprobeHint = "ffprobe ships with the ffmpeg installation"
)

// Binaries holds resolved paths to the two required tools.
type Binaries struct {
	FFmpeg  string
	FFprobe string
}

// Locate resolves ffmpeg and ffprobe from PATH. Discovery fails as a whole
// when either binary is missing.
func Locate() (Binaries, error) {
	ffmpeg, err := lookPath("ffmpeg")
	if err != nil {
		return Binaries{}, errs.BinaryNotFound("ffmpeg", ffmpegHint)
	}
	ffprobe, err := lookPath("ffprobe")
	if err != nil {
		return Binaries{}, errs.BinaryNotFound("ffprobe", ffprobeHint)
	}
	return Binaries{FFmpeg: ffmpeg, FFprobe: ffprobe}, nil
}

// LocateWith accepts explicit binary paths, verifying both exist before
// accepting them.
func LocateWith(ffmpeg, ffprobe string) (Binaries, error) {
	for _, path := range []string{ffmpeg, ffprobe} {
		if strings.TrimSpace(path) == "" {
			return Binaries{}, errs.InvalidInput("binary path must not be empty")
		}
		if _, err := os.Stat(path); err != nil {
			return Binaries{}, errs.BinaryNotFound(path, "")
		}
	}
	return Binaries{FFmpeg: ffmpeg, FFprobe: ffprobe}, nil
}

// Requirement defines an external dependency the module relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the binaries required for full functionality.
func Requirements() []Requirement {
	return []Requirement{
		{Name: "FFmpeg", Command: "ffmpeg", Description: "Transcoding and thumbnail generation"},
		{Name: "FFprobe", Command: "ffprobe", Description: "Media metadata probing"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if resolved, err := lookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		} else {
			status.Available = true
			status.Command = resolved
		}
		results = append(results, status)
	}
	return results
}
