package procurement

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseAmount reads a "$1,234.50" style amount. Anything that does not parse
// as a whole, including trailing text such as "$10 USD", yields NaN, which then
// propagates through sums.
func ParseAmount(amount string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(amount)
	v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormatAmount renders v as "$" followed by comma-grouped digits with at most
// three fraction digits. Negative values render as "$-1,234"; infinities as
// "$∞" and "$-∞".
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "$NaN"
	case math.IsInf(v, 1):
		return "$∞"
	case math.IsInf(v, -1):
		return "$-∞"
	}
	rounded := math.Round(v*1000) / 1000
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return "$" + humanize.CommafWithDigits(rounded, 3)
}

func sumAmounts[T any](items []T, amount func(T) string) float64 {
	var total float64
	for _, item := range items {
		total += ParseAmount(amount(item))
	}
	return total
}
