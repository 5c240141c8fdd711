package report

import (
	"regexp"
	"strings"

	"github.com/numberleader/reportgen/internal/common"
)

const methodCount = 4

// recommendationMarker prefixes the one-line recommendation in composed
// methodology markdown.
const recommendationMarker = "\U0001F449"

var (
	fullMethodRE = regexp.MustCompile(`## Method (\d+): ([^\n]+)\s+- \*\*Description:\*\*\s+([^-]+)- \*\*Valuation:\*\* ([^\n]+)\s+` + recommendationMarker + ` ([^\n]+)`)

	methodBoundaryRE = regexp.MustCompile(`## Method \d+:`)
	segmentNameRE    = regexp.MustCompile(`^([^\n]+)`)
	segmentDescRE    = regexp.MustCompile(`\*\*Description:\*\*\s+([^*]+)`)
	segmentValueRE   = regexp.MustCompile(`\*\*Valuation:\*\*\s+([^\n]+)`)
	segmentRecRE     = regexp.MustCompile(recommendationMarker + `\s+([^\n]+)`)
)

// extractStrategy attempts to pull method entries out of methodology text.
// ok reports whether the strategy met the four-entry contract.
type extractStrategy struct {
	name string
	run  func(text string) (entries []MethodEntry, ok bool)
}

var extractStrategies = []extractStrategy{
	{name: "full_pattern", run: extractFullPattern},
	{name: "segment_scan", run: extractSegments},
}

// ExtractMethods parses AI-composed methodology text into exactly four
// method entries. Strategies are tried in order and the first one meeting
// the four-entry contract wins; when none does, partial results are
// discarded and the provided synthesized entries are returned instead.
// Fixed-template documents already carry structured entries and must not be
// routed through extraction.
func ExtractMethods(text string, synthesized []MethodEntry) []MethodEntry {
	logger := common.Logger()
	for _, strategy := range extractStrategies {
		entries, ok := strategy.run(text)
		if ok {
			logger.Debug("report: method extraction succeeded", "strategy", strategy.name, "entries", len(entries))
			return entries
		}
		logger.Debug("report: method extraction fell through", "strategy", strategy.name, "entries", len(entries))
	}
	logger.Warn("report: method extraction exhausted, synthesizing from form fields")
	return synthesized
}

func extractFullPattern(text string) ([]MethodEntry, bool) {
	matches := fullMethodRE.FindAllStringSubmatch(text, -1)
	if len(matches) < methodCount {
		return nil, false
	}
	entries := make([]MethodEntry, 0, methodCount)
	for i, match := range matches[:methodCount] {
		entries = append(entries, MethodEntry{
			Index:          i + 1,
			Name:           strings.TrimSpace(match[2]),
			Description:    strings.TrimSpace(match[3]),
			Valuation:      strings.TrimSpace(match[4]),
			Recommendation: strings.TrimSpace(match[5]),
		})
	}
	return entries, true
}

func extractSegments(text string) ([]MethodEntry, bool) {
	sections := methodBoundaryRE.Split(text, -1)
	// sections[0] is whatever preceded the first method heading.
	entries := make([]MethodEntry, 0, methodCount)
	for i := 1; i <= methodCount && i < len(sections); i++ {
		section := sections[i]
		entry := MethodEntry{Index: i}
		if m := segmentNameRE.FindStringSubmatch(strings.TrimLeft(section, " \t")); m != nil {
			entry.Name = strings.TrimSpace(m[1])
		}
		if m := segmentDescRE.FindStringSubmatch(section); m != nil {
			// The capture stops at the next bold marker, so the leading
			// hyphen of the following bullet may ride along.
			desc := strings.TrimSpace(m[1])
			entry.Description = strings.TrimSpace(strings.TrimSuffix(desc, "-"))
		}
		if m := segmentValueRE.FindStringSubmatch(section); m != nil {
			entry.Valuation = strings.TrimSpace(m[1])
		}
		if m := segmentRecRE.FindStringSubmatch(section); m != nil {
			entry.Recommendation = strings.TrimSpace(m[1])
		}
		entries = append(entries, entry)
	}
	return entries, len(entries) == methodCount
}
