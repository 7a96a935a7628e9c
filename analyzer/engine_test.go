package analyzer

import (
	"strings"
	"testing"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/assembler"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

// wellFormedDoc builds a document that triggers no penalties for the
// keyword "lamp": long enough, keyword in the title at sane density,
// multiple headings, short paragraphs, alt texts and a link.
func wellFormedDoc() string {
	var b strings.Builder
	b.WriteString("<h1>De beste houten lamp</h1> <h2>Tussenkop</h2>")
	para := strings.Repeat("woord ", 120) + "lamp."
	for i := 0; i < 5; i++ {
		b.WriteString("<p>" + para + "</p>")
	}
	b.WriteString(`<a href="https://example.com">meer info</a><img src="x.jpg" alt="Een lamp">`)
	return b.String()
}

func TestAnalyzeWellFormed(t *testing.T) {
	result := AnalyzeHTML(wellFormedDoc(), "lamp")

	if result.Score != 100 {
		t.Errorf("score = %d, want 100 (critical: %v, warning: %v)", result.Score, result.Issues.Critical, result.Issues.Warning)
	}
	if len(result.Issues.Critical) != 0 || len(result.Issues.Warning) != 0 {
		t.Errorf("unexpected issues: critical=%v warning=%v", result.Issues.Critical, result.Issues.Warning)
	}
	if result.WordCount < 600 {
		t.Errorf("word count = %d, want >= 600", result.WordCount)
	}
	if result.KeywordCount < 5 {
		t.Errorf("keyword count = %d, want >= 5", result.KeywordCount)
	}
	if result.KeywordDensityPercent <= 0 || result.KeywordDensityPercent > 3.5 {
		t.Errorf("density = %.2f, want within (0, 3.5]", result.KeywordDensityPercent)
	}
	if len(result.Issues.Good) == 0 {
		t.Error("expected positive findings")
	}
}

// The assembler's output round-trips cleanly: a long post with the
// keyword in the first heading scores a clean 100.
func TestAnalyzeAssembledDocument(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("woord ", 160)) + " en de lamp."
	content := &blog.Content{
		Title:           "Houten lamp",
		MetaDescription: "Over lampen.",
		Sections: []blog.Section{
			{Heading: "De houten lamp", Content: para},
			{Heading: "Materialen", Content: para},
			{Heading: "Onderhoud", Content: para},
			{Heading: "Bestellen", Content: para + ` <a href="https://example.com/shop">Bekijk de lamp</a>`},
		},
	}
	content.Normalize()

	html := assembler.New().Assemble(content, nil, nil, "", "lamp")
	result := AnalyzeHTML(html, "lamp")

	if result.Score != 100 {
		t.Errorf("score = %d, want 100 (critical: %v, warning: %v)", result.Score, result.Issues.Critical, result.Issues.Warning)
	}
	if len(result.Issues.Critical) != 0 || len(result.Issues.Warning) != 0 {
		t.Errorf("unexpected issues: critical=%v warning=%v", result.Issues.Critical, result.Issues.Warning)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	result := AnalyzeHTML("", "lamp")

	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if result.WordCount != 0 {
		t.Errorf("word count = %d, want 0", result.WordCount)
	}
}

func TestAnalyzeShortTextMissingKeyword(t *testing.T) {
	result := AnalyzeHTML("<p>kort stukje tekst</p>", "lamp")

	// Missing keyword (-20), too short (-20), too few headings (-10),
	// no links (-5).
	if result.Score != 45 {
		t.Errorf("score = %d, want 45 (critical: %v, warning: %v)", result.Score, result.Issues.Critical, result.Issues.Warning)
	}
	if len(result.Issues.Critical) != 2 {
		t.Errorf("expected 2 critical issues, got %v", result.Issues.Critical)
	}
	if result.KeywordCount != 0 {
		t.Errorf("keyword count = %d, want 0", result.KeywordCount)
	}
}

func TestAnalyzeNoindexAppliedOnce(t *testing.T) {
	html := `<h2>Kop</h2><p>tekst</p>` +
		`<meta name="robots" content="noindex, nofollow">` +
		`<meta name="robots" content="NOINDEX">`

	result := AnalyzeHTML(html, "")

	// No keyword given (warning only), too short (-20), one heading
	// (-10), no links (-5), noindex (-50) exactly once.
	if result.Score != 15 {
		t.Errorf("score = %d, want 15 (critical: %v, warning: %v)", result.Score, result.Issues.Critical, result.Issues.Warning)
	}
	noindexMsgs := 0
	for _, msg := range result.Issues.Critical {
		if strings.Contains(msg, "noindex") {
			noindexMsgs++
		}
	}
	if noindexMsgs != 1 {
		t.Errorf("noindex must be reported once, got %d messages", noindexMsgs)
	}
}

func TestAnalyzeKeywordStuffing(t *testing.T) {
	html := "<h2>lamp</h2><p>" + strings.TrimSpace(strings.Repeat("lamp ", 9)) + "</p>"

	result := AnalyzeHTML(html, "lamp, hout")

	if result.KeywordDensityPercent <= 3.5 {
		t.Fatalf("density = %.2f, expected stuffing levels", result.KeywordDensityPercent)
	}
	found := false
	for _, msg := range result.Issues.Warning {
		if strings.Contains(msg, "keyword stuffing") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a stuffing warning, got %v", result.Issues.Warning)
	}
}

func TestAnalyzeKeywordNotInTitle(t *testing.T) {
	html := "<h1>Over ons atelier</h1><h2>Meer</h2><p>De lamp staat centraal.</p>"

	result := AnalyzeHTML(html, "lamp")

	found := false
	for _, msg := range result.Issues.Warning {
		if strings.Contains(msg, "hoofd titel") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a title placement warning, got %v", result.Issues.Warning)
	}
}

func TestAnalyzeIgnoresStyleAndScript(t *testing.T) {
	html := `<style>.lamp { color: red; }</style><script>var lamp = 1;</script><h2>Kop</h2> <p>tekst hier</p>`

	result := AnalyzeHTML(html, "lamp")

	if result.KeywordCount != 0 {
		t.Errorf("keyword matches inside style/script must not count, got %d", result.KeywordCount)
	}
	if result.WordCount != 3 {
		t.Errorf("word count = %d, want 3", result.WordCount)
	}
}

func TestAnalyzeReadingTime(t *testing.T) {
	html := "<p>" + strings.TrimSpace(strings.Repeat("woord ", 450)) + "</p>"

	result := AnalyzeHTML(html, "")

	if result.ReadingTimeMinutes != 3 {
		t.Errorf("reading time = %d, want 3", result.ReadingTimeMinutes)
	}
}

func TestAnalyzeMalformedHTML(t *testing.T) {
	result := AnalyzeHTML("<div><p>onafgesloten", "lamp")

	if result.WordCount != 1 {
		t.Errorf("word count = %d, want 1", result.WordCount)
	}
	if result.Score <= 0 || result.Score > 100 {
		t.Errorf("score out of range: %d", result.Score)
	}
}
