// Package diagnose implements the request/response adapter core: prompt
// templating, response normalization, error classification, and the service
// that ties one diagnosis round trip together.
package diagnose

import (
	"fmt"
	"strings"

	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
	"github.com/SaranSelva18/CarDiagnosis/internal/media"
)

// responseShape declares the exact JSON object the model must return. Every
// prompt ends with it so the normalizer has a fighting chance of getting
// parseable output back.
const responseShape = `Respond ONLY with a JSON object in exactly this shape, with no extra commentary:
{
  "problem": "short description of what is wrong",
  "solution": "recommended repair steps",
  "severity": "low" | "medium" | "high",
  "estimatedCost": "estimated repair cost range in USD, e.g. $150 - $400",
  "additionalNotes": "optional extra advice"
}`

// CodePrompt builds the prompt for a user-typed OBD-II trouble code. When
// the code is in the local catalog its description is included as a hint.
func CodePrompt(code string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an experienced automotive mechanic. A vehicle is showing OBD-II diagnostic trouble code %s", code)
	fmt.Fprintf(&b, " (%s system)", domain.DTCSystem(code))

	if entry, ok := domain.LookupDTC(code); ok {
		fmt.Fprintf(&b, ", commonly described as: %s", entry.Description)
	}

	b.WriteString(".\n\nDiagnose the most likely problem and how to fix it.\n\n")
	b.WriteString(responseShape)

	return b.String()
}

// ImagePrompt builds the prompt for an attached vehicle photo.
func ImagePrompt() string {
	return "You are an experienced automotive mechanic. The attached image shows a vehicle, " +
		"a part of a vehicle, or a dashboard warning. Identify any visible fault and diagnose it.\n\n" +
		responseShape
}

// VideoPrompt builds the prompt for an attached clip or its extracted frame.
func VideoPrompt(reducedToFrame bool) string {
	subject := "video of a vehicle"
	if reducedToFrame {
		subject = "still frame taken from a video of a vehicle"
	}
	return fmt.Sprintf("You are an experienced automotive mechanic. The attached %s shows a suspected fault. "+
		"Diagnose the most likely problem.\n\n%s", subject, responseShape)
}

// SoundPrompt builds the prompt for a sound recording, embedding the
// amplitude profile alongside the attached audio.
func SoundPrompt(profile *media.SoundProfile) string {
	return fmt.Sprintf("You are an experienced automotive mechanic. The attached audio is a recording of a "+
		"vehicle noise. A rough loudness analysis of the clip: %s\n\n"+
		"Diagnose the most likely source of the noise.\n\n%s", profile.Describe(), responseShape)
}
