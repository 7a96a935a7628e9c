package assembler

import (
	"regexp"
	"sort"
	"strings"
)

const highlightOpen = `<strong class="cuot-keyword">`

var boldMarkerRe = regexp.MustCompile(`\*\*`)

// HighlightKeywords strips leftover markdown emphasis markers from text
// and wraps every occurrence of the supplied comma-separated keywords in
// the brand highlight marker.
//
// Keywords of three characters or more are matched case-insensitively as
// plain substrings, longest phrase first so that "houten kaart" wins
// before "houten" can split it. Matching is deliberately not
// word-boundary aware: the site's audience writes compound words, so
// "kaart" is expected to hit inside "kaartjes". Text inside an existing
// highlight span is never wrapped again, which keeps the function
// idempotent under repeated application.
func HighlightKeywords(text, keywordsCsv string) string {
	if text == "" {
		return ""
	}

	// The AI occasionally emits "**keyword**" despite instructions.
	clean := boldMarkerRe.ReplaceAllString(text, "")

	if keywordsCsv == "" {
		return clean
	}

	var keys []string
	for _, k := range strings.Split(keywordsCsv, ",") {
		k = strings.TrimSpace(k)
		if len(k) > 2 {
			keys = append(keys, k)
		}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})

	highlighted := clean
	for _, key := range keys {
		// The alternation consumes whole existing spans first, so
		// occurrences inside an earlier (or longer) match are skipped.
		re, err := regexp.Compile(`(?is)` + regexp.QuoteMeta(highlightOpen) + `.*?</strong>|` + regexp.QuoteMeta(key))
		if err != nil {
			continue
		}
		highlighted = re.ReplaceAllStringFunc(highlighted, func(m string) string {
			if strings.HasPrefix(m, highlightOpen) {
				return m
			}
			return highlightOpen + m + `</strong>`
		})
	}
	return highlighted
}
