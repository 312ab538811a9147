// Package media turns user-selected files into transportable inline payloads.
// It sniffs the real MIME type from the bytes, enforces per-kind size caps,
// reduces videos to a single still frame when possible, and summarizes WAV
// recordings with a crude amplitude-bucket heuristic.
package media

import (
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
)

// ErrEmptyFile is returned when the upload contains no bytes.
var ErrEmptyFile = errors.New("uploaded file is empty")

// ErrTooLarge is returned when the upload exceeds the cap for its kind.
var ErrTooLarge = errors.New("uploaded file is too large")

// ErrUnsupportedType is returned when the sniffed MIME type is not accepted
// for the declared input kind.
var ErrUnsupportedType = errors.New("unsupported file type")

// Payload is a binary media blob ready for inline transport to the API.
type Payload struct {
	// MIMEType is the sniffed content type, never the client-declared one.
	MIMEType string

	// Data holds the raw bytes.
	Data []byte
}

// Limits caps the accepted upload size in bytes per input kind.
type Limits struct {
	MaxImageBytes int64 `mapstructure:"max_image_bytes"`
	MaxVideoBytes int64 `mapstructure:"max_video_bytes"`
	MaxSoundBytes int64 `mapstructure:"max_sound_bytes"`
}

// DefaultLimits returns the caps used when config does not override them.
// The video cap doubles as the inline-transport ceiling: clips that cannot
// be reduced to a still frame are sent whole.
func DefaultLimits() Limits {
	return Limits{
		MaxImageBytes: 8 << 20,  // 8 MiB
		MaxVideoBytes: 20 << 20, // 20 MiB
		MaxSoundBytes: 10 << 20, // 10 MiB
	}
}

// acceptedTypes maps each input kind to the MIME types it may carry.
var acceptedTypes = map[domain.InputKind][]string{
	domain.KindImage: {"image/jpeg", "image/png", "image/webp"},
	domain.KindVideo: {"video/mp4", "video/webm", "video/x-msvideo", "video/quicktime"},
	domain.KindSound: {"audio/wav", "audio/x-wav", "audio/wave"},
}

// Encode validates an upload against the caps for its kind, sniffs the MIME
// type from the bytes, and wraps it as an inline payload. The declared
// Content-Type from the client is ignored entirely.
func Encode(kind domain.InputKind, data []byte, limits Limits) (*Payload, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	if max := limits.maxFor(kind); max > 0 && int64(len(data)) > max {
		return nil, fmt.Errorf("%w: %d bytes (max %d for %s)", ErrTooLarge, len(data), max, kind)
	}

	mtype := mimetype.Detect(data)

	accepted, ok := acceptedTypes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown input kind %q", ErrUnsupportedType, kind)
	}

	for _, want := range accepted {
		if mtype.Is(want) {
			return &Payload{MIMEType: mtype.String(), Data: data}, nil
		}
	}

	return nil, fmt.Errorf("%w: detected %s, expected one of %v for %s input",
		ErrUnsupportedType, mtype.String(), accepted, kind)
}

// maxFor returns the byte cap for the given kind, 0 meaning uncapped.
func (l Limits) maxFor(kind domain.InputKind) int64 {
	switch kind {
	case domain.KindImage:
		return l.MaxImageBytes
	case domain.KindVideo:
		return l.MaxVideoBytes
	case domain.KindSound:
		return l.MaxSoundBytes
	default:
		return 0
	}
}
