package report

import (
	"fmt"
	"regexp"
	"strconv"
)

// CurrencySymbol is the single local symbol every foreign currency token is
// normalized to.
const CurrencySymbol = "₹"

var (
	currencyWordRE   = regexp.MustCompile(`(?i)\b(?:INR|USD)\b\s*`)
	currencySignRE   = regexp.MustCompile(`\$\s*`)
	millionPhraseRE  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*million\b`)
	symbolSpacingRE  = regexp.MustCompile(CurrencySymbol + `\s+`)
	notationReplacer = CurrencySymbol
)

// NormalizeCurrency rewrites INR, USD and $ tokens to the local currency
// symbol, collapsing any whitespace between symbol and amount so that
// "$100", "USD 100" and "INR 100" all normalize to the same form.
func NormalizeCurrency(text string) string {
	text = currencyWordRE.ReplaceAllString(text, notationReplacer)
	text = currencySignRE.ReplaceAllString(text, notationReplacer)
	return symbolSpacingRE.ReplaceAllString(text, notationReplacer)
}

// ConvertMillions rewrites "<n> million" phrases into the Indian numbering
// convention. The parsed quantity is scaled to an absolute value before the
// crore/lakh/thousand thresholds apply.
func ConvertMillions(text string) string {
	return millionPhraseRE.ReplaceAllStringFunc(text, func(match string) string {
		parts := millionPhraseRE.FindStringSubmatch(match)
		n, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return match
		}
		return FormatIndianScale(n * 1_000_000)
	})
}

// FormatIndianScale renders an absolute amount using crore/lakh/thousand
// units, falling back to a plain two-decimal figure below a thousand.
func FormatIndianScale(value float64) string {
	switch {
	case value >= 10_000_000:
		return fmt.Sprintf("%.2f crores", value/10_000_000)
	case value >= 100_000:
		return fmt.Sprintf("%.2f lakhs", value/100_000)
	case value >= 1_000:
		return fmt.Sprintf("%.2f thousand", value/1_000)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}
