package diagnose

import "testing"

func TestConvertEstimate(t *testing.T) {
	inr := Rate{Code: "INR", PerUSD: 83.0}

	tests := []struct {
		name          string
		cost          string
		rate          Rate
		wantConverted string
	}{
		{
			name:          "single figure",
			cost:          "$100",
			rate:          inr,
			wantConverted: "INR 8300",
		},
		{
			name:          "range",
			cost:          "$150 - $400",
			rate:          inr,
			wantConverted: "INR 12450 - INR 33200",
		},
		{
			name:          "thousands separator",
			cost:          "around $1,250",
			rate:          inr,
			wantConverted: "INR 103750",
		},
		{
			name:          "small amount keeps cents",
			cost:          "$0.50",
			rate:          Rate{Code: "EUR", PerUSD: 0.9},
			wantConverted: "EUR 0.45",
		},
		{
			name:          "no dollar figure passes through",
			cost:          "depends on the workshop",
			rate:          inr,
			wantConverted: "",
		},
		{
			name:          "zero rate disables conversion",
			cost:          "$100",
			rate:          Rate{Code: "INR", PerUSD: 0},
			wantConverted: "",
		},
		{
			name:          "missing code disables conversion",
			cost:          "$100",
			rate:          Rate{PerUSD: 83},
			wantConverted: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertEstimate(tt.cost, tt.rate)
			if got.Amount != tt.cost {
				t.Errorf("Amount = %q, want original text %q", got.Amount, tt.cost)
			}
			if got.Converted != tt.wantConverted {
				t.Errorf("Converted = %q, want %q", got.Converted, tt.wantConverted)
			}
		})
	}
}
