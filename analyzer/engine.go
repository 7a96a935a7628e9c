package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AnalyzeHTML parses an HTML document back into plain text and
// structural signals and computes a 0-100 on-page SEO score with
// categorized diagnostics. Scoring starts at 100 and each triggered
// condition subtracts a fixed penalty, applied at most once.
//
// The function is pure: no I/O, no shared state. Malformed input never
// produces an error; at worst it parses to an empty document and scores
// accordingly.
func AnalyzeHTML(htmlContent, targetKeywordsCsv string) *SeoAnalysis {
	result := &SeoAnalysis{
		Score: 100,
		Issues: IssueList{
			Critical: []string{},
			Warning:  []string{},
			Good:     []string{},
		},
	}

	if htmlContent == "" {
		return result
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	}

	// Style and script subtrees would pollute word counts and keyword
	// matching, so they go first.
	doc.Find("style").Remove()
	doc.Find("script").Remove()

	plainText := doc.Find("body").Text()
	words := strings.Fields(plainText)
	result.WordCount = len(words)
	result.ReadingTimeMinutes = int(math.Ceil(float64(result.WordCount) / 200.0))

	// Keyword analysis. Only the first comma-separated keyword counts
	// for density and placement; the rest are advisory.
	primary := strings.ToLower(strings.TrimSpace(strings.Split(targetKeywordsCsv, ",")[0]))
	if primary != "" {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(primary))
		result.KeywordCount = len(re.FindAllStringIndex(plainText, -1))
		if result.WordCount > 0 {
			result.KeywordDensityPercent = round2(float64(result.KeywordCount) / float64(result.WordCount) * 100)
		}

		switch {
		case result.KeywordCount == 0:
			result.Issues.Critical = append(result.Issues.Critical, fmt.Sprintf("Zoekwoord %q niet gevonden in tekst.", primary))
			result.Score -= 20
		case result.KeywordDensityPercent > 3.5:
			result.Issues.Warning = append(result.Issues.Warning, fmt.Sprintf("Keyword density is hoog (%.2f%%). Pas op voor keyword stuffing.", result.KeywordDensityPercent))
			result.Score -= 5
		default:
			result.Issues.Good = append(result.Issues.Good, fmt.Sprintf("Zoekwoord komt %d keer voor (%.2f%%).", result.KeywordCount, result.KeywordDensityPercent))
		}

		// Placement check against the main title. The assembler wraps
		// content in a div without an H1, so fall back to the first H2.
		title := doc.Find("h1").First()
		if title.Length() == 0 {
			title = doc.Find("h2").First()
		}
		if title.Length() > 0 {
			if !strings.Contains(strings.ToLower(title.Text()), primary) {
				result.Issues.Warning = append(result.Issues.Warning, "Zoekwoord niet gevonden in de hoofd titel (H1/H2).")
				result.Score -= 10
			} else {
				result.Issues.Good = append(result.Issues.Good, "Zoekwoord aanwezig in de titel.")
			}
		}
	} else {
		result.Issues.Warning = append(result.Issues.Warning, "Geen zoekwoord opgegeven voor analyse.")
	}

	// Length.
	switch {
	case result.WordCount < 300:
		result.Issues.Critical = append(result.Issues.Critical, "Tekst is te kort (< 300 woorden) voor goede ranking.")
		result.Score -= 20
	case result.WordCount < 600:
		result.Issues.Warning = append(result.Issues.Warning, "Tekst is aan de korte kant (< 600 woorden).")
		result.Score -= 5
	default:
		result.Issues.Good = append(result.Issues.Good, fmt.Sprintf("Goede lengte (%d woorden).", result.WordCount))
	}

	// Structure.
	if doc.Find("h1, h2, h3, h4, h5, h6").Length() < 2 {
		result.Issues.Warning = append(result.Issues.Warning, "Gebruik meer tussenkoppen (H2/H3) voor structuur.")
		result.Score -= 10
	} else {
		result.Issues.Good = append(result.Issues.Good, "Goede structuur met tussenkoppen.")
	}

	// Readability: one combined message for all long paragraphs.
	longParagraphs := 0
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if len(strings.Fields(p.Text())) > 150 {
			longParagraphs++
		}
	})
	if longParagraphs > 0 {
		result.Issues.Warning = append(result.Issues.Warning, fmt.Sprintf("%d alinea's zijn te lang (>150 woorden).", longParagraphs))
		result.Score -= 5
	}

	// Images.
	images := doc.Find("img")
	missingAlt := 0
	images.Each(func(_ int, img *goquery.Selection) {
		if alt, exists := img.Attr("alt"); !exists || alt == "" {
			missingAlt++
		}
	})
	if missingAlt > 0 {
		result.Issues.Warning = append(result.Issues.Warning, fmt.Sprintf("%d afbeeldingen missen een ALT tekst.", missingAlt))
		result.Score -= 5
	} else if images.Length() > 0 {
		result.Issues.Good = append(result.Issues.Good, "Alle afbeeldingen hebben ALT teksten.")
	}

	// Links.
	linkCount := doc.Find("a").Length()
	if linkCount == 0 {
		result.Issues.Warning = append(result.Issues.Warning, "Geen interne of externe links gevonden.")
		result.Score -= 5
	} else {
		result.Issues.Good = append(result.Issues.Good, fmt.Sprintf("%d links gevonden.", linkCount))
	}

	// A noindex directive anywhere overrules everything else; people
	// sometimes paste page metadata into the body.
	noindex := false
	doc.Find(`meta[name="robots"]`).Each(func(_ int, meta *goquery.Selection) {
		content, _ := meta.Attr("content")
		if strings.Contains(strings.ToLower(content), "noindex") {
			noindex = true
		}
	})
	if noindex {
		result.Issues.Critical = append(result.Issues.Critical, "LET OP: Er staat een 'noindex' tag in je code. Google zal dit NIET indexeren.")
		result.Score -= 50
	}

	result.Score = clampScore(result.Score)
	return result
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
