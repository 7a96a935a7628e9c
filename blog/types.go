package blog

// SectionLayout identifies how a content section is rendered.
type SectionLayout string

const (
	LayoutHero                SectionLayout = "hero"
	LayoutFullWidth           SectionLayout = "full_width"
	LayoutTwoColumnImageLeft  SectionLayout = "two_column_image_left"
	LayoutTwoColumnImageRight SectionLayout = "two_column_image_right"
	LayoutCTABlock            SectionLayout = "cta_block"
	LayoutFeatureHighlight    SectionLayout = "feature_highlight"
	LayoutQuoteBlock          SectionLayout = "quote_block"
)

// ParseLayout maps a raw layout string onto a known layout.
// Unrecognized or empty values fall back to full width.
func ParseLayout(s string) SectionLayout {
	switch SectionLayout(s) {
	case LayoutHero, LayoutFullWidth, LayoutTwoColumnImageLeft,
		LayoutTwoColumnImageRight, LayoutCTABlock,
		LayoutFeatureHighlight, LayoutQuoteBlock:
		return SectionLayout(s)
	default:
		return LayoutFullWidth
	}
}

// Section is a single block of generated blog content.
type Section struct {
	Layout  string `json:"layout"`
	Heading string `json:"heading"`
	Content string `json:"content"`
	Snippet string `json:"snippet,omitempty"`
	CTAText string `json:"ctaText,omitempty"`
	CTAUrl  string `json:"ctaUrl,omitempty"`
}

// HasCTA reports whether the section carries a complete call to action.
// A CTA renders only when both the text and the URL are present.
func (s Section) HasCTA() bool {
	return s.CTAText != "" && s.CTAUrl != ""
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SemanticEntity is a concept/definition pair for the entity list section.
type SemanticEntity struct {
	Concept    string `json:"concept"`
	Definition string `json:"definition"`
}

// Content is the structured blog object produced by the AI collaborator
// and consumed by the assembler, the Elementor exporter and the draft store.
type Content struct {
	Title            string            `json:"title"`
	MetaDescription  string            `json:"metaDescription"`
	CanonicalURL     string            `json:"canonicalUrl,omitempty"`
	GeoStrategy      string            `json:"geoStrategy,omitempty"`
	HeaderImageAlt   string            `json:"headerImageAlt,omitempty"`
	KeywordsUsed     []string          `json:"keywordsUsed"`
	InternalLinks    []string          `json:"internalLinksUsed,omitempty"`
	SemanticEntities []SemanticEntity  `json:"semanticEntities,omitempty"`
	SchemaMarkup     string            `json:"schemaMarkup,omitempty"`
	FAQ              []FAQItem         `json:"faq,omitempty"`
	ImageAltMap      map[string]string `json:"imageAltMap,omitempty"`
	Sections         []Section         `json:"sections"`
}

// Normalize fills in nil collections so downstream code can iterate
// without nil checks. The AI collaborator regularly omits empty arrays.
func (c *Content) Normalize() {
	if c.Sections == nil {
		c.Sections = []Section{}
	}
	if c.KeywordsUsed == nil {
		c.KeywordsUsed = []string{}
	}
	if c.InternalLinks == nil {
		c.InternalLinks = []string{}
	}
	if c.FAQ == nil {
		c.FAQ = []FAQItem{}
	}
	if c.ImageAltMap == nil {
		c.ImageAltMap = map[string]string{}
	}
}

// ImageAsset is a pre-optimized image handed in at render time.
// Assets are positionally associated with sections by index.
type ImageAsset struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mimeType"`
}

// ProductEntry is a page discovered through the sitemap fetcher.
type ProductEntry struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// TocEntry is a table-of-contents link derived from a section heading.
// The anchor id is position-derived so edits to heading text never
// break in-document links.
type TocEntry struct {
	Heading  string `json:"heading"`
	AnchorID string `json:"anchorId"`
}
