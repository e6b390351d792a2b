package media

import (
	"testing"
	"time"
)

func TestTimestampRendering(t *testing.T) {
	tests := []struct {
		name string
		in   Time
		want string
	}{
		{"zero", Time{}, "00:00:00.000"},
		{"whole seconds", Seconds(90), "00:01:30.000"},
		{"hours", Seconds(3661), "01:01:01.000"},
		{"fractional", SecondsF(90.5), "00:01:30.500"},
		{"millis round up", SecondsF(1.0005), "00:00:01.001"},
		{"millis round down", SecondsF(1.0004), "00:00:01.000"},
		{"long", Seconds(7323), "02:02:03.000"},
		{"float artifact", SecondsF(0.1 + 0.2), "00:00:00.300"},
	}
	for _, tt := range tests {
		if got := tt.in.Timestamp(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSecondsFRoundsToNanosecond(t *testing.T) {
	got := SecondsF(1.5).Duration()
	if got != 1500*time.Millisecond {
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestNegativeInputsClampToZero(t *testing.T) {
	if d := SecondsF(-4.2).Duration(); d != 0 {
		t.Fatalf("expected zero duration, got %v", d)
	}
	if d := FromDuration(-time.Second).Duration(); d != 0 {
		t.Fatalf("expected zero duration, got %v", d)
	}
}

func TestStringMatchesTimestamp(t *testing.T) {
	ts := FromDuration(95*time.Second + 250*time.Millisecond)
	if ts.String() != "00:01:35.250" {
		t.Fatalf("unexpected string: %q", ts.String())
	}
}
