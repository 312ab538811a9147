package media

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Amplitude bucket boundaries on the normalized [0,1] scale.
const (
	quietCeiling    = 0.10
	moderateCeiling = 0.45
)

// ErrNotWAV is returned when the sound payload is not a RIFF/WAVE file.
var ErrNotWAV = errors.New("not a WAV file")

// ErrUnsupportedWAV is returned for WAV encodings other than 16-bit PCM.
var ErrUnsupportedWAV = errors.New("unsupported WAV encoding, expected 16-bit PCM")

// SoundProfile summarizes a recording as the share of samples falling into
// three loudness buckets. This is a crude heuristic that gives the model a
// textual hint about the noise character; it is not acoustic diagnosis.
type SoundProfile struct {
	// QuietShare, ModerateShare and LoudShare sum to 1 for non-silent clips.
	QuietShare    float64
	ModerateShare float64
	LoudShare     float64

	// PeakAmplitude is the loudest normalized sample in the clip.
	PeakAmplitude float64

	// DurationSeconds is derived from the sample rate and sample count.
	DurationSeconds float64
}

// AnalyzeWAV parses a 16-bit PCM WAV file and buckets its samples by
// normalized amplitude.
func AnalyzeWAV(data []byte) (*SoundProfile, error) {
	samples, sampleRate, channels, err := decodePCM16(data)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples in data chunk", ErrUnsupportedWAV)
	}

	profile := &SoundProfile{}

	var quiet, moderate, loud int
	for _, s := range samples {
		amp := math.Abs(float64(s)) / 32768.0
		if amp > profile.PeakAmplitude {
			profile.PeakAmplitude = amp
		}
		switch {
		case amp < quietCeiling:
			quiet++
		case amp < moderateCeiling:
			moderate++
		default:
			loud++
		}
	}

	total := float64(len(samples))
	profile.QuietShare = float64(quiet) / total
	profile.ModerateShare = float64(moderate) / total
	profile.LoudShare = float64(loud) / total

	if sampleRate > 0 && channels > 0 {
		profile.DurationSeconds = total / float64(sampleRate) / float64(channels)
	}

	return profile, nil
}

// Describe renders the profile as plain text suitable for prompt embedding.
func (p *SoundProfile) Describe() string {
	return fmt.Sprintf(
		"Recording of %.1f seconds. Amplitude distribution: %.0f%% quiet, %.0f%% moderate, %.0f%% loud. Peak amplitude %.2f of full scale.",
		p.DurationSeconds,
		p.QuietShare*100,
		p.ModerateShare*100,
		p.LoudShare*100,
		p.PeakAmplitude,
	)
}

// decodePCM16 walks the RIFF chunk list and returns the raw 16-bit samples
// from the data chunk along with the sample rate and channel count.
func decodePCM16(data []byte) ([]int16, int, int, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, 0, 0, ErrNotWAV
	}

	var (
		sampleRate int
		channels   int
		bitsPerSmp int
		pcm        []byte
		sawFmt     bool
	)

	// Chunk list starts after the 12-byte RIFF header.
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if body+size > len(data) {
			return nil, 0, 0, fmt.Errorf("%w: truncated %q chunk", ErrNotWAV, id)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, 0, 0, fmt.Errorf("%w: short fmt chunk", ErrNotWAV)
			}
			format := binary.LittleEndian.Uint16(data[body : body+2])
			if format != 1 { // PCM
				return nil, 0, 0, fmt.Errorf("%w: format tag %d", ErrUnsupportedWAV, format)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bitsPerSmp = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			sawFmt = true
		case "data":
			pcm = data[body : body+size]
		}

		// Chunks are word-aligned.
		pos = body + size
		if size%2 == 1 {
			pos++
		}
	}

	if !sawFmt || pcm == nil {
		return nil, 0, 0, fmt.Errorf("%w: missing fmt or data chunk", ErrNotWAV)
	}
	if bitsPerSmp != 16 {
		return nil, 0, 0, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedWAV, bitsPerSmp)
	}

	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
	}

	return samples, sampleRate, channels, nil
}
