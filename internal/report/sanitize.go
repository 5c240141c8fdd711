package report

import (
	"regexp"
	"strings"
)

// Lead-in phrases generative models habitually prepend. Matched at the start
// of the text only, case-insensitively, and stripped until none remain.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:sure|certainly|of course|absolutely|okay)\b[.,!]?\s*`),
	regexp.MustCompile(`(?i)^\s*here(?:'s| is| are)\b[^\n]*?[:.]\s*`),
	regexp.MustCompile(`(?i)^\s*below (?:is|are)\b[^\n]*?[:.]\s*`),
	regexp.MustCompile(`(?i)^\s*based on the (?:information|details|data) provided,?\s*`),
	regexp.MustCompile(`(?i)^\s*as (?:requested|per your request),?\s*`),
	regexp.MustCompile(`(?i)^\s*i(?:'ve| have) (?:prepared|generated|created)\b[^\n]*?[:.]\s*`),
}

var (
	headingMarkerRE = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	boldHeaderRE    = regexp.MustCompile(`(?m)^\s*\*\*([^*\n]+)\*\*:?\s*$`)
	misspellingRE   = regexp.MustCompile(`(?i)buisness`)
)

// Whole lines equal to one of these generic section titles (after trimming,
// case-insensitively) are dropped.
var genericTitleLines = map[string]struct{}{
	"introduction":            {},
	"summary":                 {},
	"conclusion":              {},
	"recommendations":         {},
	"valuation report":        {},
	"executive summary":       {},
	"company profile":         {},
	"business overview":       {},
	"valuation methodologies": {},
	"final opinion":           {},
}

// Sanitize applies the fixed cleanup passes, in order, to raw AI text:
// lead-in boilerplate, markdown headers, generic title lines, a known
// misspelling, currency notation, million-phrase conversion, and a final
// trim. It is a pure transform and is idempotent.
func Sanitize(text string) string {
	text = stripBoilerplate(text)
	text = headingMarkerRE.ReplaceAllString(text, "")
	text = boldHeaderRE.ReplaceAllString(text, "$1")
	text = dropGenericTitleLines(text)
	text = fixMisspellings(text)
	text = NormalizeCurrency(text)
	text = ConvertMillions(text)
	return strings.TrimSpace(text)
}

func stripBoilerplate(text string) string {
	for {
		stripped := text
		for _, pattern := range boilerplatePatterns {
			stripped = pattern.ReplaceAllString(stripped, "")
		}
		if stripped == text {
			return stripped
		}
		text = stripped
	}
}

func dropGenericTitleLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if _, drop := genericTitleLines[trimmed]; drop {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func fixMisspellings(text string) string {
	return misspellingRE.ReplaceAllStringFunc(text, func(match string) string {
		switch {
		case match == strings.ToUpper(match):
			return "BUSINESS"
		case match[0] == 'B':
			return "Business"
		default:
			return "business"
		}
	})
}
