package media

import "strings"

// CodecType identifies a codec. Known codecs normalize to one of the
// constants below; anything else is carried through as the lower-cased raw
// name ffprobe reported.
type CodecType string

// Well-known codecs. The constant values match the decoder names ffprobe
// reports, not the encoder names ffmpeg accepts; see EncoderName.
const (
	CodecH264     CodecType = "h264"
	CodecHEVC     CodecType = "hevc"
	CodecVP9      CodecType = "vp9"
	CodecAV1      CodecType = "av1"
	CodecAAC      CodecType = "aac"
	CodecMP3      CodecType = "mp3"
	CodecOpus     CodecType = "opus"
	CodecPCMS16LE CodecType = "pcm_s16le"
	CodecCopy     CodecType = "copy"
)

// ParseCodec normalizes a codec name to a CodecType. Matching is case
// insensitive and accepts both the probe-reported name and the ffmpeg
// encoder alias ("h264" and "libx264" both map to CodecH264). Unrecognized
// names are retained lower-cased.
func ParseCodec(name string) CodecType {
	switch lowered := strings.ToLower(name); lowered {
	case "h264", "libx264":
		return CodecH264
	case "hevc", "h265", "libx265":
		return CodecHEVC
	case "vp9", "libvpx-vp9":
		return CodecVP9
	case "av1", "libaom-av1":
		return CodecAV1
	case "aac":
		return CodecAAC
	case "mp3", "libmp3lame":
		return CodecMP3
	case "opus", "libopus":
		return CodecOpus
	case "pcm_s16le":
		return CodecPCMS16LE
	case "copy":
		return CodecCopy
	default:
		return CodecType(lowered)
	}
}

// EncoderName returns the token to pass to ffmpeg when encoding with this
// codec. A stream probed as "hevc" must re-render as "libx265" here, never
// as the probe name. Unrecognized codecs render their stored string as-is.
func (c CodecType) EncoderName() string {
	switch c {
	case CodecH264:
		return "libx264"
	case CodecHEVC:
		return "libx265"
	case CodecVP9:
		return "libvpx-vp9"
	case CodecAV1:
		return "libaom-av1"
	case CodecAAC:
		return "aac"
	case CodecMP3:
		return "libmp3lame"
	case CodecOpus:
		return "libopus"
	case CodecPCMS16LE:
		return "pcm_s16le"
	case CodecCopy:
		return "copy"
	default:
		return string(c)
	}
}

// Known reports whether the codec is one of the well-known constants.
func (c CodecType) Known() bool {
	switch c {
	case CodecH264, CodecHEVC, CodecVP9, CodecAV1, CodecAAC, CodecMP3, CodecOpus, CodecPCMS16LE, CodecCopy:
		return true
	}
	return false
}

func (c CodecType) String() string {
	return string(c)
}
