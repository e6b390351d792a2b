package filters

import (
	"strings"
	"testing"
)

func TestAudioFilterRendering(t *testing.T) {
	tests := []struct {
		name   string
		filter AudioFilter
		want   string
	}{
		{"volume", Volume(1.5), "volume=1.5"},
		{"volume half", Volume(0.5), "volume=0.5"},
		{"volume whole", Volume(2.0), "volume=2"},
		{"equalizer bare", Equalizer{}, "superequalizer"},
		{"equalizer bass only", Equalizer{Bass: floatPtr(3)}, "superequalizer=b=3"},
		{"normalization", Normalization{TargetLevel: -23}, "loudnorm=I=-23"},
		{"highpass", HighPass{Frequency: 80}, "highpass=f=80"},
		{"lowpass", LowPass{Frequency: 8000}, "lowpass=f=8000"},
		{"custom", CustomAudio("adelay=10000"), "adelay=10000"},
	}
	for _, tt := range tests {
		if got := tt.filter.Render(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEqualizerAllBands(t *testing.T) {
	got := Equalizer{Bass: floatPtr(2), Mid: floatPtr(0.5), Treble: floatPtr(-1)}.Render()
	if got != "superequalizer=b=2:m=0.5:t=-1" {
		t.Fatalf("unexpected fragment: %q", got)
	}
}

func TestJoinAudioChaining(t *testing.T) {
	chain := []AudioFilter{
		Normalization{TargetLevel: -23},
		LowPass{Frequency: 12000},
	}
	got := JoinAudio(chain)
	if !strings.Contains(got, "loudnorm=I=-23") || !strings.Contains(got, "lowpass=f=12000") {
		t.Fatalf("unexpected chain: %q", got)
	}
	if got != "loudnorm=I=-23,lowpass=f=12000" {
		t.Fatalf("unexpected order or separator: %q", got)
	}
}
