package vitrine

import (
	"strconv"
	"strings"
	"unicode"
)

// PriceUnavailable is the sentinel emitted when a price cannot be
// resolved. It signals "field intentionally has no data", distinct
// from an extraction error.
const PriceUnavailable = "unavailable"

// Normalize collapses runs of whitespace (including newlines and tabs)
// into single spaces, strips control characters, and trims the result.
// Total: empty input yields an empty string, never an error.
func Normalize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return strings.Join(strings.Fields(cleaned), " ")
}

// NormalizePrice converts a locale-formatted currency string into a
// canonical "symbol amount" form with exactly two fraction digits.
//
// Empty input yields PriceUnavailable. Separator disambiguation follows
// pt-BR conventions: when both "," and "." appear, "." is a thousands
// separator and "," the decimal point; a lone "," is the decimal point.
// Malformed input degrades to the cleaned digit string rather than an
// error; normalization is best-effort and never fails.
func NormalizePrice(symbol, raw string) string {
	raw = Normalize(raw)
	if raw == "" {
		return PriceUnavailable
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return PriceUnavailable
	}

	switch {
	case strings.Contains(cleaned, ",") && strings.Contains(cleaned, "."):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return cleaned
	}

	formatted := strconv.FormatFloat(amount, 'f', 2, 64)
	if symbol == "" {
		return formatted
	}
	return symbol + " " + formatted
}
