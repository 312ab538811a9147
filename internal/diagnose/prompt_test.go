package diagnose

import (
	"strings"
	"testing"

	"github.com/SaranSelva18/CarDiagnosis/internal/media"
)

func TestCodePromptEmbedsCatalogHint(t *testing.T) {
	prompt := CodePrompt("P0420")

	if !strings.Contains(prompt, "P0420") {
		t.Error("prompt missing the code itself")
	}
	if !strings.Contains(prompt, "powertrain") {
		t.Error("prompt missing the subsystem name")
	}
	if !strings.Contains(prompt, "Catalyst system efficiency") {
		t.Error("prompt missing the catalog description for a known code")
	}
	if !strings.Contains(prompt, `"severity"`) {
		t.Error("prompt missing the declared response shape")
	}
}

func TestCodePromptUncatalogedCode(t *testing.T) {
	prompt := CodePrompt("P1234")

	if !strings.Contains(prompt, "P1234") {
		t.Error("prompt missing the code")
	}
	if strings.Contains(prompt, "commonly described as") {
		t.Error("prompt invented a catalog description for an unknown code")
	}
}

func TestVideoPromptNamesTheAttachment(t *testing.T) {
	if p := VideoPrompt(true); !strings.Contains(p, "still frame") {
		t.Errorf("reduced prompt = %q, want mention of the still frame", p)
	}
	if p := VideoPrompt(false); !strings.Contains(p, "video") {
		t.Errorf("full-clip prompt = %q, want mention of the video", p)
	}
}

func TestSoundPromptEmbedsProfile(t *testing.T) {
	profile := &media.SoundProfile{QuietShare: 1, DurationSeconds: 2}
	prompt := SoundPrompt(profile)

	if !strings.Contains(prompt, "100% quiet") {
		t.Errorf("prompt = %q, want the amplitude profile text", prompt)
	}
}
