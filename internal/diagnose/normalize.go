package diagnose

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
)

// wireResult mirrors the JSON object the prompts ask the model to produce.
type wireResult struct {
	Problem         string `json:"problem"`
	Solution        string `json:"solution"`
	Severity        string `json:"severity"`
	EstimatedCost   string `json:"estimatedCost"`
	AdditionalNotes string `json:"additionalNotes"`
}

// ParseError means no JSON object could be recovered from the model reply.
type ParseError struct {
	// Raw is a snippet of the reply, for logging.
	Raw string

	// Err is the underlying JSON error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no JSON object in model reply: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError means the reply parsed but is missing mandatory fields or
// carries values outside the recognized vocabulary.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model reply failed validation: %s", strings.Join(e.Errors, "; "))
}

// rawSnippetLimit caps how much of the reply a ParseError carries.
const rawSnippetLimit = 256

// Normalize parses the free-form model reply into a typed DiagnosisResult.
// It first attempts direct JSON parsing, then falls back to extracting the
// first brace-delimited substring (or a fenced ```json block). Either a
// fully validated result is returned or an error; there is no partial result.
func Normalize(raw string) (domain.DiagnosisResult, error) {
	trimmed := strings.TrimSpace(raw)

	var wire wireResult
	if err := json.Unmarshal([]byte(trimmed), &wire); err != nil {
		candidate := extractJSON(trimmed)
		if candidate == "" {
			return domain.DiagnosisResult{}, &ParseError{Raw: snippet(trimmed), Err: err}
		}
		if err := json.Unmarshal([]byte(candidate), &wire); err != nil {
			return domain.DiagnosisResult{}, &ParseError{Raw: snippet(trimmed), Err: err}
		}
	}

	return validate(wire)
}

// validate checks mandatory fields and normalizes the severity value.
func validate(wire wireResult) (domain.DiagnosisResult, error) {
	var errs []string

	if strings.TrimSpace(wire.Problem) == "" {
		errs = append(errs, "missing field: problem")
	}
	if strings.TrimSpace(wire.Solution) == "" {
		errs = append(errs, "missing field: solution")
	}
	if strings.TrimSpace(wire.EstimatedCost) == "" {
		errs = append(errs, "missing field: estimatedCost")
	}

	var severity domain.Severity
	if strings.TrimSpace(wire.Severity) == "" {
		errs = append(errs, "missing field: severity")
	} else {
		parsed, err := domain.ParseSeverity(wire.Severity)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			severity = parsed
		}
	}

	if len(errs) > 0 {
		return domain.DiagnosisResult{}, &ValidationError{Errors: errs}
	}

	return domain.DiagnosisResult{
		Problem:         strings.TrimSpace(wire.Problem),
		Solution:        strings.TrimSpace(wire.Solution),
		Severity:        severity,
		EstimatedCost:   domain.CostEstimate{Amount: strings.TrimSpace(wire.EstimatedCost)},
		AdditionalNotes: strings.TrimSpace(wire.AdditionalNotes),
	}, nil
}

// extractJSON recovers a JSON object embedded in surrounding prose. It
// prefers a fenced ```json block, then falls back to the span from the first
// opening brace to the last closing brace.
func extractJSON(text string) string {
	if idx := strings.Index(text, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(text[start:], "```"); end != -1 {
			return strings.TrimSpace(text[start : start+end])
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}

	return text[start : end+1]
}

// snippet truncates a reply for error reporting.
func snippet(s string) string {
	if len(s) <= rawSnippetLimit {
		return s
	}
	return s[:rawSnippetLimit] + "..."
}
