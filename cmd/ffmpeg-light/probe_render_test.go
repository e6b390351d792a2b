package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"ffmpeglight/internal/media"
)

func TestRenderProbeSummary(t *testing.T) {
	dur := 125 * time.Second
	bitRate := uint64(4_500_000)
	size := uint64(10 * 1024 * 1024)
	width, height := 1920, 1080
	rate := 23.976
	channels := 2

	probe := media.NewProbeResult(
		media.FormatInfo{
			FormatName:     "matroska,webm",
			FormatLongName: "Matroska / WebM",
			Duration:       &dur,
			BitRate:        &bitRate,
			Size:           &size,
		},
		[]media.Stream{
			media.VideoStream{Codec: media.CodecH264, Width: &width, Height: &height, FrameRate: &rate},
			media.AudioStream{Codec: media.CodecAAC, Channels: &channels},
			media.SubtitleStream{Codec: media.CodecType("subrip"), Language: "eng"},
		},
	)

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	renderProbe(cmd, "movie.mkv", probe)
	rendered := out.String()

	for _, want := range []string{
		"movie.mkv",
		"matroska,webm (Matroska / WebM)",
		"00:02:05",
		"4.5 Mb/s",
		"10.0 MiB",
		"1920x1080",
		"23.98 fps",
		"2 ch",
		"English",
		"h264",
		"aac",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered summary missing %q:\n%s", want, rendered)
		}
	}
}

func TestRenderProbeNoStreams(t *testing.T) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	renderProbe(cmd, "empty.bin", media.NewProbeResult(media.FormatInfo{}, nil))
	if !strings.Contains(out.String(), "No streams reported") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}
