package ffprobe

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"ffmpeglight/internal/errs"
	"ffmpeglight/internal/media"
)

// rawReport mirrors the shape of the ffprobe JSON document. String-typed
// numerics stay strings here; conversion happens field by field in Parse.
type rawReport struct {
	Format  *rawFormat  `json:"format"`
	Streams []rawStream `json:"streams"`
}

type rawFormat struct {
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	BitRate        string `json:"bit_rate"`
	Size           string `json:"size"`
}

type rawStream struct {
	CodecType    string            `json:"codec_type"`
	CodecName    string            `json:"codec_name"`
	Width        *int              `json:"width"`
	Height       *int              `json:"height"`
	BitRate      string            `json:"bit_rate"`
	AvgFrameRate string            `json:"avg_frame_rate"`
	Channels     *int              `json:"channels"`
	SampleRate   string            `json:"sample_rate"`
	Tags         map[string]string `json:"tags"`
}

// Parse converts a raw ffprobe report into the typed model. Only a
// structurally malformed document fails; individual fields that cannot be
// converted come back absent.
func Parse(data []byte) (media.ProbeResult, error) {
	var report rawReport
	if err := json.Unmarshal(data, &report); err != nil {
		return media.ProbeResult{}, errs.Parse("ffprobe report", err)
	}

	var format media.FormatInfo
	if report.Format != nil {
		format = media.FormatInfo{
			FormatName:     report.Format.FormatName,
			FormatLongName: report.Format.FormatLongName,
			Duration:       parseSeconds(report.Format.Duration),
			BitRate:        parseUint64(report.Format.BitRate),
			Size:           parseUint64(report.Format.Size),
		}
	}

	streams := make([]media.Stream, 0, len(report.Streams))
	for _, raw := range report.Streams {
		if stream, ok := convertStream(raw); ok {
			streams = append(streams, stream)
		}
	}
	return media.NewProbeResult(format, streams), nil
}

// convertStream dispatches on the codec_type tag. Entries with a missing or
// unrecognized tag are dropped entirely.
func convertStream(raw rawStream) (media.Stream, bool) {
	codec := media.ParseCodec(raw.CodecName)
	if raw.CodecName == "" {
		codec = media.CodecType("unknown")
	}
	switch raw.CodecType {
	case "video":
		return media.VideoStream{
			Codec:     codec,
			Width:     raw.Width,
			Height:    raw.Height,
			BitRate:   parseUint64(raw.BitRate),
			FrameRate: parseRatio(raw.AvgFrameRate),
		}, true
	case "audio":
		return media.AudioStream{
			Codec:      codec,
			Channels:   raw.Channels,
			SampleRate: parseUint32(raw.SampleRate),
			BitRate:    parseUint64(raw.BitRate),
		}, true
	case "subtitle":
		return media.SubtitleStream{
			Codec:    codec,
			Language: raw.Tags["language"],
		}, true
	case "data":
		return media.DataStream{
			Codec:       codec,
			Description: raw.Tags["title"],
		}, true
	default:
		return nil, false
	}
}

func parseSeconds(value string) *time.Duration {
	secs, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || secs < 0 {
		return nil
	}
	d := time.Duration(secs * float64(time.Second))
	return &d
}

func parseUint64(value string) *uint64 {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseUint32(value string) *int {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return nil
	}
	converted := int(parsed)
	return &converted
}

// parseRatio converts a frame rate expressed as "N/D" or a bare number.
// "0/0", "0", and a zero denominator all mean the rate is unknown, not zero
// and not infinity.
func parseRatio(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" || value == "0/0" || value == "0" {
		return nil
	}
	if num, den, found := strings.Cut(value, "/"); found {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return nil
		}
		rate := n / d
		return &rate
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &rate
}
