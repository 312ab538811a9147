// Package domain contains the core business entities and value objects.
package domain

import (
	"regexp"
	"strings"
)

// dtcPattern matches the standard five-character OBD-II trouble code format:
// a system letter, a code-set digit, then three hex characters (e.g. P0420).
var dtcPattern = regexp.MustCompile(`^[PBCU][0-3][0-9A-F]{3}$`)

// DTCEntry represents a diagnostic trouble code with its description.
type DTCEntry struct {
	Code        string
	Description string
}

// knownCodes is a small catalog of frequently seen codes. It exists only to
// enrich the prompt with a human-readable hint; unknown codes are still valid.
var knownCodes = map[string]string{
	"P0128": "Coolant thermostat below regulating temperature",
	"P0171": "System too lean (bank 1)",
	"P0174": "System too lean (bank 2)",
	"P0300": "Random/multiple cylinder misfire detected",
	"P0301": "Cylinder 1 misfire detected",
	"P0302": "Cylinder 2 misfire detected",
	"P0401": "Exhaust gas recirculation flow insufficient",
	"P0420": "Catalyst system efficiency below threshold (bank 1)",
	"P0430": "Catalyst system efficiency below threshold (bank 2)",
	"P0442": "Evaporative emission system leak detected (small leak)",
	"P0455": "Evaporative emission system leak detected (large leak)",
	"P0500": "Vehicle speed sensor malfunction",
	"B1342": "ECU internal failure",
	"C1201": "Engine control system malfunction",
	"U0100": "Lost communication with ECM/PCM",
	"U0121": "Lost communication with ABS control module",
}

// NormalizeDTC trims and upper-cases a user-typed trouble code.
func NormalizeDTC(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidDTC reports whether the code matches the OBD-II trouble code format.
// The input is expected to be normalized first.
func ValidDTC(code string) bool {
	return dtcPattern.MatchString(code)
}

// LookupDTC returns the catalog entry for a normalized code.
func LookupDTC(code string) (DTCEntry, bool) {
	desc, ok := knownCodes[code]
	if !ok {
		return DTCEntry{}, false
	}
	return DTCEntry{Code: code, Description: desc}, true
}

// DTCSystem returns the vehicle subsystem a code belongs to, derived from
// its leading letter.
func DTCSystem(code string) string {
	if code == "" {
		return "unknown"
	}
	switch code[0] {
	case 'P':
		return "powertrain"
	case 'B':
		return "body"
	case 'C':
		return "chassis"
	case 'U':
		return "network"
	default:
		return "unknown"
	}
}
