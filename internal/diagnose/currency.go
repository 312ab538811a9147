package diagnose

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
)

// Rate converts the model's primary-currency estimate into a secondary
// currency for display. The rate is static, loaded from config; this is a
// courtesy conversion, not a financial service.
type Rate struct {
	// Code is the ISO currency code shown next to converted figures.
	Code string `mapstructure:"code"`

	// PerUSD is how many units of the currency one USD buys.
	PerUSD float64 `mapstructure:"per_usd"`
}

// amountPattern finds dollar figures inside free text, including figures
// with thousands separators ("$1,250.50").
var amountPattern = regexp.MustCompile(`\$\s*([0-9]+(?:,[0-9]{3})*(?:\.[0-9]+)?)`)

// ConvertEstimate appends a converted secondary-currency figure to the
// model's cost text. Ranges convert figure by figure ("$100 - $300" becomes
// "INR 8300 - INR 24900"). Text with no parseable dollar figure passes
// through with an empty Converted field.
func ConvertEstimate(cost string, rate Rate) domain.CostEstimate {
	estimate := domain.CostEstimate{Amount: cost}

	if rate.Code == "" || rate.PerUSD <= 0 {
		return estimate
	}

	matches := amountPattern.FindAllStringSubmatch(cost, -1)
	if len(matches) == 0 {
		return estimate
	}

	converted := make([]string, 0, len(matches))
	for _, m := range matches {
		value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		converted = append(converted, fmt.Sprintf("%s %s", rate.Code, formatAmount(value*rate.PerUSD)))
	}

	if len(converted) == 0 {
		return estimate
	}

	estimate.Converted = strings.Join(converted, " - ")
	return estimate
}

// formatAmount renders a converted figure with precision appropriate to its
// magnitude: whole units above 100, cents below.
func formatAmount(v float64) string {
	if v >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
