package media

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestAnalyzeWAVBuckets(t *testing.T) {
	// One sample per bucket boundary region: quiet, moderate, loud.
	samples := []int16{
		100,    // ~0.003 -> quiet
		-2000,  // ~0.06  -> quiet
		8000,   // ~0.24  -> moderate
		-30000, // ~0.92  -> loud
	}

	profile, err := AnalyzeWAV(fakeWAV(8000, samples))
	if err != nil {
		t.Fatalf("AnalyzeWAV returned error: %v", err)
	}

	if got, want := profile.QuietShare, 0.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("QuietShare = %v, want %v", got, want)
	}
	if got, want := profile.ModerateShare, 0.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("ModerateShare = %v, want %v", got, want)
	}
	if got, want := profile.LoudShare, 0.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("LoudShare = %v, want %v", got, want)
	}

	wantPeak := 30000.0 / 32768.0
	if math.Abs(profile.PeakAmplitude-wantPeak) > 1e-9 {
		t.Errorf("PeakAmplitude = %v, want %v", profile.PeakAmplitude, wantPeak)
	}

	wantDur := 4.0 / 8000.0
	if math.Abs(profile.DurationSeconds-wantDur) > 1e-9 {
		t.Errorf("DurationSeconds = %v, want %v", profile.DurationSeconds, wantDur)
	}
}

func TestAnalyzeWAVRejectsNonWAV(t *testing.T) {
	if _, err := AnalyzeWAV([]byte("definitely not audio")); !errors.Is(err, ErrNotWAV) {
		t.Errorf("AnalyzeWAV(garbage) error = %v, want ErrNotWAV", err)
	}
}

func TestAnalyzeWAVRejectsNonPCM(t *testing.T) {
	wav := fakeWAV(8000, []int16{0, 0})
	// Flip the format tag from PCM (1) to IEEE float (3).
	wav[20] = 3

	if _, err := AnalyzeWAV(wav); !errors.Is(err, ErrUnsupportedWAV) {
		t.Errorf("AnalyzeWAV(float wav) error = %v, want ErrUnsupportedWAV", err)
	}
}

func TestSoundProfileDescribe(t *testing.T) {
	profile := &SoundProfile{
		QuietShare:      0.7,
		ModerateShare:   0.2,
		LoudShare:       0.1,
		PeakAmplitude:   0.85,
		DurationSeconds: 3.2,
	}

	desc := profile.Describe()
	for _, fragment := range []string{"70% quiet", "20% moderate", "10% loud", "0.85"} {
		if !strings.Contains(desc, fragment) {
			t.Errorf("Describe() = %q, missing %q", desc, fragment)
		}
	}
}
