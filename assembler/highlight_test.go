package assembler

import (
	"strings"
	"testing"
)

func TestHighlightKeywords(t *testing.T) {
	t.Run("WrapsKeyword", func(t *testing.T) {
		got := HighlightKeywords("Een houten lamp is sfeervol.", "lamp")
		want := `Een houten <strong class="cuot-keyword">lamp</strong> is sfeervol.`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		got := HighlightKeywords("Lamp en LAMP en lamp.", "lamp")
		if strings.Count(got, highlightOpen) != 3 {
			t.Errorf("expected 3 highlights, got: %q", got)
		}
	})

	t.Run("LongestPhraseWins", func(t *testing.T) {
		got := HighlightKeywords("De houten kaart hangt mooi.", "houten kaart, houten")
		want := `De <strong class="cuot-keyword">houten kaart</strong> hangt mooi.`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := HighlightKeywords("De houten kaart hangt mooi.", "houten kaart, houten, kaart")
		twice := HighlightKeywords(once, "houten kaart, houten, kaart")
		if once != twice {
			t.Errorf("second application changed output:\n once: %q\ntwice: %q", once, twice)
		}
	})

	t.Run("ShortKeywordsIgnored", func(t *testing.T) {
		got := HighlightKeywords("De os at op de mat.", "de, os, at")
		if strings.Contains(got, highlightOpen) {
			t.Errorf("keywords of two characters or less must be ignored, got %q", got)
		}
	})

	t.Run("StripsBoldMarkers", func(t *testing.T) {
		got := HighlightKeywords("Dit is **belangrijk** nieuws.", "")
		if got != "Dit is belangrijk nieuws." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("SubstringMatch", func(t *testing.T) {
		// Compound words are intentionally matched inside larger words.
		got := HighlightKeywords("Mooie kaartjes bestellen.", "kaart")
		if !strings.Contains(got, highlightOpen+"kaart</strong>jes") {
			t.Errorf("expected substring match inside compound word, got %q", got)
		}
	})

	t.Run("EmptyInputs", func(t *testing.T) {
		if got := HighlightKeywords("", "lamp"); got != "" {
			t.Errorf("empty text should stay empty, got %q", got)
		}
		if got := HighlightKeywords("tekst", ""); got != "tekst" {
			t.Errorf("empty keywords should leave text untouched, got %q", got)
		}
	})
}
