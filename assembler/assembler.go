package assembler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

const (
	// WrapperID scopes all generated markup so a host page can sandbox it.
	WrapperID = "cuot-blog-wrapper"

	defaultHeaderAlt      = "Creative Use of Technology Header"
	defaultVideoThumbnail = "https://creativeuseoftechnology.com/wp-content/uploads/placeholder-video.jpg"

	entityAnchorID = "entity-section"
	faqAnchorID    = "faq-section"

	siteHomeURL = "https://creativeuseoftechnology.com/"
	siteBlogURL = "https://creativeuseoftechnology.com/blog/"
)

// Assembler composes a complete styled HTML document from structured
// blog content, render-time images, a video URL and the active keyword
// set. It performs no I/O; the only time-dependent output is the video
// upload timestamp, which is why the clock is injectable.
type Assembler struct {
	Now func() time.Time
}

// New returns an Assembler using the wall clock.
func New() *Assembler {
	return &Assembler{Now: time.Now}
}

// AnchorID returns the stable anchor for the section at the given index.
func AnchorID(index int) string {
	return "section-" + strconv.Itoa(index)
}

// TocEntries lists the table-of-contents entries for the given sections:
// one per non-empty heading, carrying its position-derived anchor.
func TocEntries(sections []blog.Section) []blog.TocEntry {
	var entries []blog.TocEntry
	for i, s := range sections {
		if s.Heading != "" {
			entries = append(entries, blog.TocEntry{Heading: s.Heading, AnchorID: AnchorID(i)})
		}
	}
	return entries
}

// Assemble renders the full document. Missing optional fields degrade by
// omitting their fragment; an empty section list yields a document with
// header and breadcrumb only. Output is deterministic for identical
// inputs apart from the video schema upload timestamp.
func (a *Assembler) Assemble(content *blog.Content, contentImages []blog.ImageAsset, headerImage *blog.ImageAsset, videoURL, activeKeywordsCsv string) string {
	var b strings.Builder

	// 1. Style block, emitted once.
	b.WriteString(BlogCSS)

	// 2. Brand wrapper.
	b.WriteString(`<div id="` + WrapperID + `">`)

	// 3. Audit comment. Not meant for display.
	fmt.Fprintf(&b, `<!--
         POST TITLE: %s
         META DESC: %s
         KEYWORDS: %s
         STRATEGY: %s
      -->`, content.Title, content.MetaDescription, strings.Join(content.KeywordsUsed, ", "), content.GeoStrategy)

	// 4. Header with optional hero image.
	b.WriteString(`<header class="cuot-section">`)
	fmt.Fprintf(&b, `<p style="font-style: italic; color: #888; margin-bottom: 1.5rem;">%s</p>`, content.MetaDescription)
	if headerImage != nil {
		alt := content.HeaderImageAlt
		if alt == "" {
			alt = content.Title
		}
		if alt == "" {
			alt = defaultHeaderAlt
		}
		src := dataURI(*headerImage)
		fmt.Fprintf(&b, `<img src="%s" alt="%s" title="%s" class="cuot-header-image" width="1200" height="600" />`, src, alt, alt)
	}
	b.WriteString(`</header>`)

	// 5. Video structured data and deferred embed fragment.
	video := ResolveVideo(videoURL)
	videoHTML := ""
	if video != nil {
		b.WriteString(a.videoSchemaScript(content, video))
		videoHTML = buildVideoEmbed(video)
	}

	// 6. TOC entries; the block itself is injected inside the intro
	// section, and only when there is more than one heading to link.
	tocItems := TocEntries(content.Sections)

	// 7. Sections in order.
	for idx, section := range content.Sections {
		imgHTML := ""
		hasImage := false
		if alt := content.ImageAltMap[strconv.Itoa(idx)]; alt != "" && idx < len(contentImages) {
			hasImage = true
			imgHTML = fmt.Sprintf(`<img src="%s" alt="%s" title="%s" class="cuot-img-responsive" width="600" height="400" loading="lazy" />`,
				dataURI(contentImages[idx]), alt, alt)
		}

		ctaHTML := ""
		if section.HasCTA() {
			ctaHTML = fmt.Sprintf(`<div class="cuot-btn-wrapper"><a href="%s" class="cuot-btn">%s</a></div>`, section.CTAUrl, section.CTAText)
		}

		processed := HighlightKeywords(section.Content, activeKeywordsCsv)

		snippetHTML := ""
		if section.Snippet != "" {
			snippetHTML = fmt.Sprintf(`<div class="cuot-snippet">%s</div>`, section.Snippet)
		}

		fmt.Fprintf(&b, `<section class="cuot-section" id="%s">`, AnchorID(idx))

		if idx == 0 {
			// Intro section keeps a fixed order: heading, floated
			// image, snippet, content, TOC, CTA. The image only
			// renders for the hero layout.
			writeHeading(&b, "h2", section.Heading)
			if hasImage && blog.ParseLayout(section.Layout) == blog.LayoutHero {
				b.WriteString(`<div style="margin-bottom: 1.5rem; float: right; margin-left: 2rem; max-width: 40%;">` + imgHTML + `</div>`)
			}
			b.WriteString(snippetHTML)
			b.WriteString(processed)
			if len(tocItems) >= 2 {
				b.WriteString(buildToc(tocItems))
			}
			b.WriteString(ctaHTML)
		} else {
			if idx == 1 && videoHTML != "" {
				b.WriteString(videoHTML)
			}

			switch blog.ParseLayout(section.Layout) {
			case blog.LayoutFeatureHighlight:
				b.WriteString(`<div class="cuot-feature-highlight">`)
				writeHeading(&b, "h3", section.Heading)
				b.WriteString(snippetHTML)
				b.WriteString(processed)
				b.WriteString(`</div>`)

			case blog.LayoutQuoteBlock:
				b.WriteString(`<div class="cuot-quote-block">`)
				quote := strings.ReplaceAll(processed, `"`, "")
				b.WriteString(`<div class="cuot-quote-text">“` + quote + `”</div>`)
				if section.Heading != "" {
					b.WriteString(`<div class="cuot-quote-author">- ` + section.Heading + `</div>`)
				}
				b.WriteString(`</div>`)

			case blog.LayoutTwoColumnImageRight:
				if hasImage {
					b.WriteString(`<div class="cuot-grid"><div class="cuot-col">`)
					writeHeading(&b, "h2", section.Heading)
					b.WriteString(snippetHTML)
					b.WriteString(processed)
					b.WriteString(ctaHTML)
					b.WriteString(`</div><div class="cuot-col">` + imgHTML + `</div></div>`)
				} else {
					writeFullWidth(&b, section.Heading, snippetHTML, processed, ctaHTML, "")
				}

			case blog.LayoutTwoColumnImageLeft:
				if hasImage {
					b.WriteString(`<div class="cuot-grid"><div class="cuot-col">` + imgHTML + `</div><div class="cuot-col">`)
					writeHeading(&b, "h2", section.Heading)
					b.WriteString(snippetHTML)
					b.WriteString(processed)
					b.WriteString(ctaHTML)
					b.WriteString(`</div></div>`)
				} else {
					writeFullWidth(&b, section.Heading, snippetHTML, processed, ctaHTML, "")
				}

			case blog.LayoutCTABlock:
				b.WriteString(`<div class="cuot-cta-block">`)
				writeHeading(&b, "h2", section.Heading)
				b.WriteString(snippetHTML)
				b.WriteString(processed)
				b.WriteString(ctaHTML)
				b.WriteString(`</div>`)

			default:
				// full_width, hero and anything unrecognized: single
				// column with the image floated right when available.
				float := ""
				if hasImage {
					float = `<div style="margin-bottom: 1.5rem; float: right; margin-left: 2rem; max-width: 40%;">` + imgHTML + `</div>`
				}
				writeFullWidth(&b, section.Heading, snippetHTML, processed, ctaHTML, float)
			}
		}

		b.WriteString(`</section>`)
	}

	// 8. Semantic entity definition list.
	if len(content.SemanticEntities) > 0 {
		fmt.Fprintf(&b, `<section class="cuot-section cuot-entity-list" id="%s"><h2 style="margin-bottom: 1rem;">Kernbegrippen &amp; Definities</h2><dl>`, entityAnchorID)
		for _, e := range content.SemanticEntities {
			fmt.Fprintf(&b, `<dt>%s</dt><dd>%s</dd>`, e.Concept, e.Definition)
		}
		b.WriteString(`</dl></section>`)
	}

	// 9. FAQ display block and its JSON-LD twin, produced from the same
	// list in one pass so the two representations cannot drift.
	if len(content.FAQ) > 0 {
		display, schema := buildFAQ(content.FAQ, activeKeywordsCsv)
		b.WriteString(display)
		b.WriteString(schema)
	}

	// 10. Opaque passthrough of AI-provided schema markup.
	if content.SchemaMarkup != "" {
		b.WriteString(`<script type="application/ld+json">` + content.SchemaMarkup + `</script>`)
	}

	// 11. Breadcrumb trail, always present.
	b.WriteString(breadcrumbScript(content.Title))

	// 12. Close wrapper.
	b.WriteString(`</div>`)
	return b.String()
}

func dataURI(img blog.ImageAsset) string {
	return "data:" + img.MimeType + ";base64," + img.Base64
}

func writeHeading(b *strings.Builder, tag, heading string) {
	if heading != "" {
		fmt.Fprintf(b, "<%s>%s</%s>", tag, heading, tag)
	}
}

func writeFullWidth(b *strings.Builder, heading, snippetHTML, contentHTML, ctaHTML, floatHTML string) {
	writeHeading(b, "h2", heading)
	b.WriteString(floatHTML)
	b.WriteString(snippetHTML)
	b.WriteString(contentHTML)
	b.WriteString(ctaHTML)
}

func buildToc(items []blog.TocEntry) string {
	var b strings.Builder
	b.WriteString(`<div class="cuot-toc"><span class="cuot-toc-title">Inhoudsopgave</span><ul class="cuot-toc-list">`)
	// The intro's own heading is skipped; the entity and FAQ anchors
	// always trail the list.
	for _, item := range items[1:] {
		fmt.Fprintf(&b, `<li><a href="#%s">%s</a></li>`, item.AnchorID, item.Heading)
	}
	fmt.Fprintf(&b, `<li><a href="#%s">Kernbegrippen</a></li>`, entityAnchorID)
	fmt.Fprintf(&b, `<li><a href="#%s">Veelgestelde Vragen</a></li>`, faqAnchorID)
	b.WriteString(`</ul></div>`)
	return b.String()
}

func buildVideoEmbed(v *VideoReference) string {
	if v.Provider == ProviderYouTube {
		thumb := v.ThumbnailURL
		if thumb == "" {
			thumb = "https://img.youtube.com/vi/" + v.ID + "/hqdefault.jpg"
		}
		// Lite embed: the iframe srcdoc shows a static thumbnail with a
		// play glyph so the third-party player only loads on click.
		return `<div class="cuot-video-container"><iframe src="` + v.EmbedURL() + `" srcdoc="<style>*{padding:0;margin:0;overflow:hidden}html,body{height:100%}img,span{position:absolute;width:100%;top:0;bottom:0;margin:auto}span{height:1.5em;text-align:center;font:48px/1.5 sans-serif;color:white;text-shadow:0 0 0.5em black}</style><a href=` + v.EmbedURL() + `?autoplay=1><img src=` + thumb + ` alt='Video'><span>▶</span></a>" title="YouTube video player" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen loading="lazy"></iframe></div>`
	}
	return `<div class="cuot-video-container"><iframe src="` + v.EmbedURL() + `" title="Vimeo video player" frameborder="0" allow="autoplay; fullscreen" allowfullscreen loading="lazy"></iframe></div>`
}

type videoSchema struct {
	Context      string `json:"@context"`
	Type         string `json:"@type"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	UploadDate   string `json:"uploadDate"`
	EmbedURL     string `json:"embedUrl"`
	ContentURL   string `json:"contentUrl"`
}

func (a *Assembler) videoSchemaScript(content *blog.Content, v *VideoReference) string {
	desc := content.Title
	if len(content.KeywordsUsed) > 0 {
		desc = strings.Join(content.KeywordsUsed, ", ")
	}
	thumb := v.ThumbnailURL
	if thumb == "" {
		thumb = defaultVideoThumbnail
	}
	schema := videoSchema{
		Context:      "https://schema.org",
		Type:         "VideoObject",
		Name:         "Video: " + content.Title,
		Description:  "Video over " + desc + ". " + content.MetaDescription,
		ThumbnailURL: thumb,
		UploadDate:   a.Now().UTC().Format(time.RFC3339),
		EmbedURL:     v.EmbedURL(),
		ContentURL:   v.CanonicalLink,
	}
	return jsonLDScript(schema)
}

type faqQuestion struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer faqAnswer `json:"acceptedAnswer"`
}

type faqAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type faqSchema struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []faqQuestion `json:"mainEntity"`
}

// buildFAQ renders both FAQ representations from the one source list:
// a details/summary block with microdata for readers and screen
// readers, and a JSON-LD script for machine consumption.
func buildFAQ(items []blog.FAQItem, activeKeywordsCsv string) (display, schema string) {
	var b strings.Builder
	fmt.Fprintf(&b, `<section class="cuot-section cuot-faq-container" id="%s" itemscope itemtype="https://schema.org/FAQPage"><h2 style="margin-bottom: 2rem; text-align: center;">Veelgestelde Vragen</h2>`, faqAnchorID)
	entity := make([]faqQuestion, 0, len(items))
	for _, item := range items {
		fmt.Fprintf(&b, `<details class="cuot-faq-item" itemscope itemprop="mainEntity" itemtype="https://schema.org/Question"><summary class="cuot-faq-question" itemprop="name">%s</summary><div class="cuot-faq-answer" itemscope itemprop="acceptedAnswer" itemtype="https://schema.org/Answer"><div itemprop="text">%s</div></div></details>`,
			item.Question, HighlightKeywords(item.Answer, activeKeywordsCsv))
		entity = append(entity, faqQuestion{
			Type:           "Question",
			Name:           item.Question,
			AcceptedAnswer: faqAnswer{Type: "Answer", Text: item.Answer},
		})
	}
	b.WriteString(`</section>`)

	return b.String(), jsonLDScript(faqSchema{
		Context:    "https://schema.org",
		Type:       "FAQPage",
		MainEntity: entity,
	})
}

type breadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

type breadcrumbSchema struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []breadcrumbItem `json:"itemListElement"`
}

func breadcrumbScript(title string) string {
	return jsonLDScript(breadcrumbSchema{
		Context: "https://schema.org",
		Type:    "BreadcrumbList",
		ItemListElement: []breadcrumbItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: siteHomeURL},
			{Type: "ListItem", Position: 2, Name: "Blog", Item: siteBlogURL},
			{Type: "ListItem", Position: 3, Name: title},
		},
	})
}

func jsonLDScript(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return `<script type="application/ld+json">` + string(data) + `</script>`
}
