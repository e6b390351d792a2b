package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ffmpeglight/internal/errs"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestLocateFindsBoth(t *testing.T) {
	binDir := t.TempDir()
	ffmpeg := writeStub(t, binDir, "ffmpeg")
	ffprobe := writeStub(t, binDir, "ffprobe")
	t.Setenv("PATH", binDir)

	bins, err := Locate()
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if bins.FFmpeg != ffmpeg || bins.FFprobe != ffprobe {
		t.Fatalf("unexpected paths: %+v", bins)
	}
}

func TestLocateMissingFFprobe(t *testing.T) {
	binDir := t.TempDir()
	writeStub(t, binDir, "ffmpeg")
	t.Setenv("PATH", binDir)

	_, err := Locate()
	if !errors.Is(err, errs.ErrBinaryNotFound) {
		t.Fatalf("expected binary-not-found, got %v", err)
	}
	var notFound *errs.BinaryNotFoundError
	if !errors.As(err, &notFound) || notFound.Binary != "ffprobe" {
		t.Fatalf("expected ffprobe to be reported missing, got %v", err)
	}
	if errs.Suggestion(err) == "" {
		t.Fatal("expected an installation suggestion")
	}
}

func TestLocateWithVerifiesPaths(t *testing.T) {
	binDir := t.TempDir()
	ffmpeg := writeStub(t, binDir, "ffmpeg")
	ffprobe := writeStub(t, binDir, "ffprobe")

	bins, err := LocateWith(ffmpeg, ffprobe)
	if err != nil {
		t.Fatalf("LocateWith returned error: %v", err)
	}
	if bins.FFmpeg != ffmpeg || bins.FFprobe != ffprobe {
		t.Fatalf("unexpected paths: %+v", bins)
	}

	if _, err := LocateWith(ffmpeg, filepath.Join(binDir, "nope")); !errors.Is(err, errs.ErrBinaryNotFound) {
		t.Fatalf("expected binary-not-found for missing explicit path, got %v", err)
	}
	if _, err := LocateWith("", ffprobe); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected invalid-input for empty path, got %v", err)
	}
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := writeStub(t, binDir, "present")
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: " "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary with detail, got %#v", results[1])
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for unset command: %#v", results[2])
	}
}

func TestRequirementsCoverBothTools(t *testing.T) {
	reqs := Requirements()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "ffmpeg" || reqs[1].Command != "ffprobe" {
		t.Fatalf("unexpected requirement commands: %+v", reqs)
	}
}
