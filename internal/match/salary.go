package match

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// SalaryValue normalizes free-form salary text to a number usable as a
// sort key. The first run of digits is scaled by unit suffix: "lpa"
// means lakhs per annum (×100000), "k" means thousands (×1000). It is
// not a currency parser; values are only comparable under this convention.
func SalaryValue(text string) int {
	raw := digitRun.FindString(text)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "lpa"):
		return n * 100000
	case strings.Contains(lower, "k"):
		return n * 1000
	}
	return n
}
