package thumbnail

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ffmpeglight/internal/deps"
	"ffmpeglight/internal/errs"
	"ffmpeglight/internal/media"
)

// argStub writes a shell script that records its arguments then exits 0.
func argStub(t *testing.T) (deps.Binaries, string) {
	t.Helper()
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.txt")
	stub := filepath.Join(dir, "ffmpeg")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + argsFile + "\nexit 0\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return deps.Binaries{FFmpeg: stub, FFprobe: stub}, argsFile
}

func recordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	raw, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

func TestGenerateWithArgumentShape(t *testing.T) {
	bins, argsFile := argStub(t)
	out := filepath.Join(t.TempDir(), "shot.png")

	opts := Options{Time: media.SecondsF(12.5), Width: 320, Height: 180}
	if err := GenerateWith(context.Background(), bins, "movie.mkv", out, opts); err != nil {
		t.Fatalf("GenerateWith returned error: %v", err)
	}

	got := recordedArgs(t, argsFile)
	want := []string{"-y", "-ss", "00:00:12.500", "-i", "movie.mkv", "-vframes", "1", "-vf", "scale=320:180", "-f", "image2", out}
	if len(got) != len(want) {
		t.Fatalf("unexpected args:\n got %v\nwant %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("arg %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateWithJPEGAndDefaultExtension(t *testing.T) {
	bins, argsFile := argStub(t)
	outDir := t.TempDir()
	out := filepath.Join(outDir, "shot")

	opts := Options{Time: media.Seconds(5), Format: JPEG}
	if err := GenerateWith(context.Background(), bins, "movie.mkv", out, opts); err != nil {
		t.Fatalf("GenerateWith returned error: %v", err)
	}

	got := recordedArgs(t, argsFile)
	last := got[len(got)-1]
	if last != out+".jpg" {
		t.Fatalf("expected defaulted .jpg extension, got %q", last)
	}
	foundMjpeg := false
	for i, arg := range got {
		if arg == "-f" && i+1 < len(got) && got[i+1] == "mjpeg" {
			foundMjpeg = true
		}
	}
	if !foundMjpeg {
		t.Fatalf("expected -f mjpeg in args: %v", got)
	}
}

func TestGenerateWithCreatesParentDir(t *testing.T) {
	bins, _ := argStub(t)
	nested := filepath.Join(t.TempDir(), "a", "b", "shot.png")
	if err := GenerateWith(context.Background(), bins, "in.mp4", nested, Options{}); err != nil {
		t.Fatalf("GenerateWith returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(nested)); err != nil {
		t.Fatalf("parent directory not created: %v", err)
	}
}

func TestGenerateWithValidation(t *testing.T) {
	bins, _ := argStub(t)
	if err := GenerateWith(context.Background(), bins, "", "out.png", Options{}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected invalid-input for missing input, got %v", err)
	}
	if err := GenerateWith(context.Background(), bins, "in.mp4", "", Options{}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected invalid-input for missing output, got %v", err)
	}
}
