package domain

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Severity
		wantErr bool
	}{
		{name: "lowercase low", input: "low", want: SeverityLow},
		{name: "uppercase high", input: "HIGH", want: SeverityHigh},
		{name: "mixed case medium", input: "Medium", want: SeverityMedium},
		{name: "surrounding whitespace", input: "  high \n", want: SeverityHigh},
		{name: "out of vocabulary", input: "critical", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSeverity(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeverity(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInputKind(t *testing.T) {
	for _, valid := range []string{"image", "VIDEO", " sound "} {
		if _, err := ParseInputKind(valid); err != nil {
			t.Errorf("ParseInputKind(%q) returned error: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "audio", "photo"} {
		if _, err := ParseInputKind(invalid); err == nil {
			t.Errorf("ParseInputKind(%q) succeeded, want error", invalid)
		}
	}
}
