package labs

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingOperators = regexp.MustCompile(`^[<>=]+\s*`)

// TryParseNumeric parses a raw lab value as a float, tolerating leading
// comparison operators like "<0.5" or ">=10". Reports false when the
// value has no numeric form.
func TryParseNumeric(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	cleaned := leadingOperators.ReplaceAllString(strings.TrimSpace(value), "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
