package csvfile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
)

var (
	spaceRun = regexp.MustCompile(`\s+`)

	// Everything that is not a digit, sign or separator is treated
	// as a currency symbol or unit suffix and stripped before
	// price parsing.
	currencyChars = regexp.MustCompile(`[^\d.,\-_ ]`)
)

// absentRatings are literals accepted as "no rating".
var absentRatings = map[string]struct{}{
	"na": {}, "n/a": {}, "none": {}, "null": {},
}

// normalizeBrand canonicalises a brand: trim, collapse inner
// whitespace runs, lower-case. Returns "" when nothing remains.
func normalizeBrand(raw string) string {
	s := strings.TrimSpace(raw)
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// parsePrice parses a human-friendly price. Blank means absent.
// Currency symbols are stripped, thousands separators (space or
// underscore before a three-digit group) removed, and a comma
// decimal separator is accepted. Negative prices are rejected.
func parsePrice(path string, row int, raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	s = currencyChars.ReplaceAllString(s, "")
	s = stripDigitSeparators(s)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, domain.NewDataError(path, row, "price", "invalid price %q", strings.TrimSpace(raw))
	}
	if value < 0 {
		return nil, domain.NewDataError(path, row, "price", "negative price %v", value)
	}
	return &value, nil
}

// parseRating parses a rating in [0, 5]. Blank and the common
// "not available" literals mean absent. A comma decimal separator is
// accepted.
func parseRating(path string, row int, raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if _, ok := absentRatings[strings.ToLower(s)]; ok {
		return nil, nil
	}

	s = strings.ReplaceAll(s, ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, domain.NewDataError(path, row, "rating", "invalid rating %q", strings.TrimSpace(raw))
	}
	if value < 0 || value > 5 {
		return nil, domain.NewDataError(path, row, "rating", "rating %v out of range [0, 5]", value)
	}
	return &value, nil
}

// stripDigitSeparators removes a space or underscore that sits
// between a digit and a complete three-digit group, so "12 345" and
// "12_345" read as 12345 while "1 2" or "12 3456" stay malformed and
// fail parsing instead of silently merging.
func stripDigitSeparators(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if (r == ' ' || r == '_') && i > 0 && isDigit(runes[i-1]) && startsDigitGroup(runes[i+1:]) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// startsDigitGroup reports whether rs begins with exactly three
// digits followed by the end of the input or a non-digit,
// non-underscore rune.
func startsDigitGroup(rs []rune) bool {
	if len(rs) < 3 || !isDigit(rs[0]) || !isDigit(rs[1]) || !isDigit(rs[2]) {
		return false
	}
	if len(rs) == 3 {
		return true
	}
	return !isDigit(rs[3]) && rs[3] != '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
