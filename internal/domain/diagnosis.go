// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

import (
	"fmt"
	"strings"
)

// Severity ranks how urgently a diagnosed problem needs attention.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity normalizes a raw severity string from the model into one of
// the three recognized levels. Matching is case-insensitive ("HIGH" -> "high").
// Anything outside the vocabulary is rejected rather than passed through.
func ParseSeverity(raw string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityLow:
		return SeverityLow, nil
	case SeverityMedium:
		return SeverityMedium, nil
	case SeverityHigh:
		return SeverityHigh, nil
	default:
		return "", fmt.Errorf("unrecognized severity %q, must be one of: low, medium, high", raw)
	}
}

// CostEstimate holds the repair cost as returned by the model plus an
// optional locally converted secondary-currency figure.
type CostEstimate struct {
	// Amount is the primary-currency cost text, e.g. "$150 - $400".
	Amount string `json:"amount"`

	// Converted is the secondary-currency equivalent, empty when the
	// primary text contained no parseable figure.
	Converted string `json:"converted,omitempty"`
}

// DiagnosisResult is the typed outcome of one diagnosis round trip.
// It is produced fresh per request and never persisted.
type DiagnosisResult struct {
	// Problem describes what is likely wrong with the vehicle.
	Problem string `json:"problem"`

	// Solution describes the recommended repair.
	Solution string `json:"solution"`

	// Severity is one of low, medium, high.
	Severity Severity `json:"severity"`

	// EstimatedCost is the expected repair cost.
	EstimatedCost CostEstimate `json:"estimatedCost"`

	// AdditionalNotes carries any extra advice from the model.
	AdditionalNotes string `json:"additionalNotes,omitempty"`
}

// InputKind identifies which kind of evidence the user submitted.
type InputKind string

const (
	// KindImage is a photo of the vehicle or a dashboard warning.
	KindImage InputKind = "image"

	// KindVideo is a short clip, reduced to a single still frame when possible.
	KindVideo InputKind = "video"

	// KindSound is a WAV recording summarized by the amplitude heuristic.
	KindSound InputKind = "sound"
)

// ParseInputKind validates a user-supplied kind string.
func ParseInputKind(raw string) (InputKind, error) {
	switch InputKind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindImage:
		return KindImage, nil
	case KindVideo:
		return KindVideo, nil
	case KindSound:
		return KindSound, nil
	default:
		return "", fmt.Errorf("unrecognized input kind %q, must be one of: image, video, sound", raw)
	}
}
