package recipe

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// First integer-or-decimal token in a quantity string. Unicode and ASCII
// fractions ("1/2", "½") are not recognized; such quantities pass through
// unscaled. Known limitation.
var quantityNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ScaleQuantity rewrites the first numeric token of a quantity string by
// the given factor, leaving the surrounding text untouched. Quantities
// with no numeric token ("a pinch") are returned unchanged. The function
// never fails.
func ScaleQuantity(quantityText string, factor float64) string {
	loc := quantityNumber.FindStringIndex(quantityText)
	if loc == nil {
		return quantityText
	}

	value, err := strconv.ParseFloat(quantityText[loc[0]:loc[1]], 64)
	if err != nil {
		return quantityText
	}

	return quantityText[:loc[0]] + formatQuantity(value*factor) + quantityText[loc[1]:]
}

// formatQuantity renders a scaled amount: whole numbers without a
// fraction, everything else truncated to two decimals with trailing
// zeros and a dangling point stripped.
func formatQuantity(amount float64) string {
	if amount == math.Trunc(amount) {
		return strconv.FormatInt(int64(amount), 10)
	}

	// Round away binary-float artifacts first so a product like 0.29,
	// stored as 0.2899..., still truncates to 0.29 and not 0.28.
	truncated := math.Trunc(math.Round(amount*1e9)/1e7) / 100
	s := strconv.FormatFloat(truncated, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
