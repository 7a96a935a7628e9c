package blog

import "testing"

func TestParseLayout(t *testing.T) {
	cases := []struct {
		input string
		want  SectionLayout
	}{
		{"hero", LayoutHero},
		{"full_width", LayoutFullWidth},
		{"two_column_image_left", LayoutTwoColumnImageLeft},
		{"two_column_image_right", LayoutTwoColumnImageRight},
		{"cta_block", LayoutCTABlock},
		{"feature_highlight", LayoutFeatureHighlight},
		{"quote_block", LayoutQuoteBlock},
		{"", LayoutFullWidth},
		{"three_column", LayoutFullWidth},
		{"HERO", LayoutFullWidth},
	}

	for _, c := range cases {
		if got := ParseLayout(c.input); got != c.want {
			t.Errorf("ParseLayout(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestHasCTA(t *testing.T) {
	if (Section{CTAText: "Bestel nu"}).HasCTA() {
		t.Error("CTA without URL should not render")
	}
	if (Section{CTAUrl: "https://example.com"}).HasCTA() {
		t.Error("CTA without text should not render")
	}
	if !(Section{CTAText: "Bestel nu", CTAUrl: "https://example.com"}).HasCTA() {
		t.Error("complete CTA should render")
	}
}

func TestNormalize(t *testing.T) {
	c := &Content{Title: "Test"}
	c.Normalize()

	if c.Sections == nil {
		t.Error("Sections should not be nil after Normalize")
	}
	if c.KeywordsUsed == nil {
		t.Error("KeywordsUsed should not be nil after Normalize")
	}
	if c.InternalLinks == nil {
		t.Error("InternalLinks should not be nil after Normalize")
	}
	if c.FAQ == nil {
		t.Error("FAQ should not be nil after Normalize")
	}
	if c.ImageAltMap == nil {
		t.Error("ImageAltMap should not be nil after Normalize")
	}

	// Existing data survives.
	c2 := &Content{Sections: []Section{{Heading: "Intro"}}}
	c2.Normalize()
	if len(c2.Sections) != 1 || c2.Sections[0].Heading != "Intro" {
		t.Error("Normalize should not touch populated collections")
	}
}
