package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ffmpeglight/internal/media"
	"ffmpeglight/internal/media/ffprobe"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var rawJSON bool
	var extraArgs []string

	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Inspect container and stream metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			bins, err := ctx.resolveBinaries()
			if err != nil {
				return err
			}
			logger.Debug("probing", "path", args[0], "ffprobe", bins.FFprobe)

			result, err := ffprobe.InspectWith(cmd.Context(), bins, args[0], extraArgs...)
			if err != nil {
				return err
			}
			if rawJSON {
				var report json.RawMessage = result.RawJSON()
				return writeJSON(cmd, report)
			}
			renderProbe(cmd, args[0], result.Probe)
			return nil
		},
	}

	cmd.Flags().BoolVar(&rawJSON, "json", false, "Print the raw ffprobe report")
	cmd.Flags().StringArrayVar(&extraArgs, "probe-arg", nil, "Extra ffprobe argument (repeatable)")
	return cmd
}

func renderProbe(cmd *cobra.Command, path string, probe media.ProbeResult) {
	out := cmd.OutOrStdout()
	format := probe.Format()

	fmt.Fprintln(out, "File:", path)
	if format.FormatName != "" {
		name := format.FormatName
		if format.FormatLongName != "" {
			name += " (" + format.FormatLongName + ")"
		}
		fmt.Fprintln(out, "Format:", name)
	}
	if dur, ok := probe.Duration(); ok {
		fmt.Fprintln(out, "Duration:", formatDuration(dur))
	}
	if format.BitRate != nil {
		fmt.Fprintln(out, "Bit rate:", formatBitRate(*format.BitRate))
	}
	if format.Size != nil {
		fmt.Fprintln(out, "Size:", formatSize(*format.Size))
	}

	streams := probe.Streams()
	if len(streams) == 0 {
		fmt.Fprintln(out, "No streams reported")
		return
	}
	headers := []string{"#", "Type", "Codec", "Details"}
	rows := make([][]string, 0, len(streams))
	for i, stream := range streams {
		kind, details := describeStream(stream)
		rows = append(rows, []string{strconv.Itoa(i), kind, streamCodec(stream).String(), details})
	}
	fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
}

func streamCodec(stream media.Stream) media.CodecType {
	switch s := stream.(type) {
	case media.VideoStream:
		return s.Codec
	case media.AudioStream:
		return s.Codec
	case media.SubtitleStream:
		return s.Codec
	case media.DataStream:
		return s.Codec
	}
	return ""
}

func describeStream(stream media.Stream) (kind, details string) {
	switch s := stream.(type) {
	case media.VideoStream:
		if s.Width != nil && s.Height != nil {
			details = fmt.Sprintf("%dx%d", *s.Width, *s.Height)
		}
		if s.FrameRate != nil {
			details += fmt.Sprintf(" @ %.2f fps", *s.FrameRate)
		}
		if s.BitRate != nil {
			details += " " + formatBitRate(*s.BitRate)
		}
		return "video", strings.TrimSpace(details)
	case media.AudioStream:
		if s.Channels != nil {
			details = fmt.Sprintf("%d ch", *s.Channels)
		}
		if s.SampleRate != nil {
			details += fmt.Sprintf(" %d Hz", *s.SampleRate)
		}
		if s.BitRate != nil {
			details += " " + formatBitRate(*s.BitRate)
		}
		return "audio", strings.TrimSpace(details)
	case media.SubtitleStream:
		return "subtitle", languageName(s.Language)
	case media.DataStream:
		return "data", s.Description
	}
	return "unknown", ""
}
