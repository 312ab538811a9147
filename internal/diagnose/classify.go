package diagnose

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/SaranSelva18/CarDiagnosis/internal/gemini"
)

// User-facing messages. Every failure surfaces as exactly one of these
// strings; internal error details never reach the client.
const (
	MsgInvalidKey  = "The configured API key was rejected. Check the GEMINI_API_KEY setting."
	MsgQuota       = "The API quota has been exhausted. Try again later or check the billing plan."
	MsgRateLimited = "Too many requests in a short time. Wait a moment and try again."
	MsgTimeout     = "The diagnosis request timed out. Try again with a smaller file."
	MsgNetwork     = "Could not reach the diagnosis service. Check the network connection."
	MsgBlocked     = "The model declined to analyze this input."
	MsgUnreadable  = "The model reply could not be understood. Try submitting again."
	MsgGeneric     = "Diagnosis failed due to an unexpected error. Try again later."
)

// statusMessages maps HTTP status codes from the API to user messages.
var statusMessages = map[int]string{
	http.StatusUnauthorized:        MsgInvalidKey,
	http.StatusForbidden:           MsgInvalidKey,
	http.StatusTooManyRequests:     MsgRateLimited,
	http.StatusInternalServerError: MsgGeneric,
	http.StatusBadGateway:          MsgNetwork,
	http.StatusServiceUnavailable:  MsgNetwork,
	http.StatusGatewayTimeout:      MsgTimeout,
}

// substringRules maps fragments of transport error strings to user messages.
// First match wins; order is therefore meaningful.
var substringRules = []struct {
	fragment string
	message  string
}{
	{"api key not valid", MsgInvalidKey},
	{"api_key_invalid", MsgInvalidKey},
	{"permission denied", MsgInvalidKey},
	{"quota", MsgQuota},
	{"resource_exhausted", MsgQuota},
	{"rate limit", MsgRateLimited},
	{"deadline exceeded", MsgTimeout},
	{"client.timeout", MsgTimeout},
	{"connection refused", MsgNetwork},
	{"no such host", MsgNetwork},
	{"network is unreachable", MsgNetwork},
	{"safety", MsgBlocked},
}

// Classify maps a failed round trip to the single message shown to the user.
// It is a static lookup keyed on the API status code or on substrings of the
// error text; there is no retry and no state.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var parseErr *ParseError
	var valErr *ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &valErr) {
		return MsgUnreadable
	}
	if errors.Is(err, gemini.ErrEmptyResponse) {
		return MsgUnreadable
	}

	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		// The Gemini status string is more precise than the HTTP code:
		// both 429-rate-limit and quota exhaustion arrive as 429.
		if strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") &&
			strings.Contains(strings.ToLower(apiErr.Message), "quota") {
			return MsgQuota
		}
		if msg, ok := statusMessages[apiErr.StatusCode]; ok {
			return msg
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}

	errStr := strings.ToLower(err.Error())
	for _, rule := range substringRules {
		if strings.Contains(errStr, rule.fragment) {
			return rule.message
		}
	}

	return MsgGeneric
}
