package media

import "testing"

func TestParseCodecKnownNames(t *testing.T) {
	tests := []struct {
		in   string
		want CodecType
	}{
		{"h264", CodecH264},
		{"H264", CodecH264},
		{"libx264", CodecH264},
		{"hevc", CodecHEVC},
		{"h265", CodecHEVC},
		{"LIBX265", CodecHEVC},
		{"vp9", CodecVP9},
		{"av1", CodecAV1},
		{"aac", CodecAAC},
		{"mp3", CodecMP3},
		{"opus", CodecOpus},
		{"pcm_s16le", CodecPCMS16LE},
		{"Copy", CodecCopy},
	}
	for _, tt := range tests {
		if got := ParseCodec(tt.in); got != tt.want {
			t.Errorf("ParseCodec(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCodecUnknownLowercases(t *testing.T) {
	got := ParseCodec("ProRes")
	if got != CodecType("prores") {
		t.Fatalf("ParseCodec(ProRes) = %q", got)
	}
	if got.Known() {
		t.Fatalf("expected unknown classification for %q", got)
	}
}

func TestEncoderNameAsymmetry(t *testing.T) {
	tests := []struct {
		codec CodecType
		want  string
	}{
		{CodecH264, "libx264"},
		{CodecHEVC, "libx265"},
		{CodecVP9, "libvpx-vp9"},
		{CodecAV1, "libaom-av1"},
		{CodecAAC, "aac"},
		{CodecMP3, "libmp3lame"},
		{CodecOpus, "libopus"},
		{CodecPCMS16LE, "pcm_s16le"},
		{CodecCopy, "copy"},
		{CodecType("prores"), "prores"},
	}
	for _, tt := range tests {
		if got := tt.codec.EncoderName(); got != tt.want {
			t.Errorf("%q.EncoderName() = %q, want %q", tt.codec, got, tt.want)
		}
	}
}

func TestProbedNameRoundTripsToEncoder(t *testing.T) {
	// A stream probed as hevc must drive an encode as libx265.
	if got := ParseCodec("hevc").EncoderName(); got != "libx265" {
		t.Fatalf("probed hevc renders as %q", got)
	}
}
