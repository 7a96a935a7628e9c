// Package elementor restructures generated blog content into the
// section/column/widget tree the Elementor page builder imports.
// Images are exported as deterministic placeholder URLs rather than
// real image data: Elementor requires a manual media re-upload anyway,
// so the template stays small and the editor swaps the placeholders.
package elementor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

// Widget is a leaf node in an Elementor template.
type Widget struct {
	ID         string         `json:"id"`
	ElType     string         `json:"elType"`
	Settings   map[string]any `json:"settings"`
	Elements   []any          `json:"elements"`
	WidgetType string         `json:"widgetType"`
}

// Column holds widgets inside a section.
type Column struct {
	ID       string         `json:"id"`
	ElType   string         `json:"elType"`
	Settings map[string]any `json:"settings"`
	Elements []Widget       `json:"elements"`
}

// Section is a top-level row in an Elementor template.
type Section struct {
	ID       string         `json:"id"`
	ElType   string         `json:"elType"`
	Settings map[string]any `json:"settings"`
	Elements []Column       `json:"elements"`
}

// Template is the importable Elementor page document.
type Template struct {
	Version string    `json:"version"`
	Title   string    `json:"title"`
	Type    string    `json:"type"`
	Content []Section `json:"content"`
}

func elementID() string {
	// Elementor wants short alphanumeric ids, not full UUIDs.
	return uuid.NewString()[:8]
}

// PlaceholderImageURL returns the deterministic placeholder for the
// image slot of the section at the given index.
func PlaceholderImageURL(index int) string {
	return fmt.Sprintf("https://placehold.co/800x600/ec7b5d/ffffff.png?text=Afbeelding+%d", index+1)
}

// CreateTemplate converts blog content into an Elementor template: a
// combined header block (import instructions, schema, title, intro),
// then one block per remaining section. Sections with an alt-map entry
// become two-column text+placeholder blocks, alternating the image side
// by index parity; the rest are single-column text blocks.
func CreateTemplate(content *blog.Content) *Template {
	var sections []Section

	headerWidgets := []Widget{
		alertWidget(),
		schemaWidget(content),
		headingWidget(content.Title, "h1"),
	}
	if len(content.Sections) > 0 {
		intro := content.Sections[0]
		if intro.Heading != "" {
			headerWidgets = append(headerWidgets, headingWidget(intro.Heading, "h2"))
		}
		headerWidgets = append(headerWidgets, textWidget(intro.Content))
	}
	sections = append(sections, singleColumnSection(headerWidgets))

	for i := 1; i < len(content.Sections); i++ {
		sectionData := content.Sections[i]
		altText := content.ImageAltMap[strconv.Itoa(i)]

		var textWidgets []Widget
		if sectionData.Heading != "" {
			textWidgets = append(textWidgets, headingWidget(sectionData.Heading, "h2"))
		}
		textWidgets = append(textWidgets, textWidget(sectionData.Content))

		if altText != "" {
			image := imageWidget(altText, PlaceholderImageURL(i))
			// Alternate image side by parity for visual rhythm.
			sections = append(sections, twoColumnSection(textWidgets, []Widget{image}, i%2 == 0))
		} else {
			sections = append(sections, singleColumnSection(textWidgets))
		}
	}

	return &Template{
		Version: "0.4",
		Title:   content.Title,
		Type:    "page",
		Content: sections,
	}
}

func singleColumnSection(widgets []Widget) Section {
	return Section{
		ID:       elementID(),
		ElType:   "section",
		Settings: map[string]any{"margin": map[string]any{"unit": "px", "top": 20, "bottom": 20, "left": 0, "right": 0}},
		Elements: []Column{{
			ID:       elementID(),
			ElType:   "column",
			Settings: map[string]any{"_column_size": 100},
			Elements: widgets,
		}},
	}
}

func twoColumnSection(left, right []Widget, reverse bool) Section {
	col1 := Column{
		ID:       elementID(),
		ElType:   "column",
		Settings: map[string]any{"_column_size": 50, "widget_space": map[string]any{"unit": "px", "size": 20}},
		Elements: left,
	}
	col2 := Column{
		ID:       elementID(),
		ElType:   "column",
		Settings: map[string]any{"_column_size": 50},
		Elements: right,
	}

	columns := []Column{col1, col2}
	if reverse {
		columns = []Column{col2, col1}
	}

	return Section{
		ID:       elementID(),
		ElType:   "section",
		Settings: map[string]any{"margin": map[string]any{"unit": "px", "top": 40, "bottom": 40, "left": 0, "right": 0}},
		Elements: columns,
	}
}

func alertWidget() Widget {
	return Widget{
		ID:         elementID(),
		ElType:     "widget",
		WidgetType: "alert",
		Settings: map[string]any{
			"alert_title":       "⚠️ IMPORT INSTRUCTIES",
			"alert_description": "1. Upload afbeeldingen uit ZIP naar Media bieb.\n2. Klik op oranje vlakken en vervang foto's.\n3. Verwijder dit blok.",
			"alert_type":        "warning",
		},
		Elements: []any{},
	}
}

func headingWidget(text, tag string) Widget {
	return Widget{
		ID:         elementID(),
		ElType:     "widget",
		WidgetType: "heading",
		Settings:   map[string]any{"title": text, "header_size": tag},
		Elements:   []any{},
	}
}

func textWidget(content string) Widget {
	return Widget{
		ID:         elementID(),
		ElType:     "widget",
		WidgetType: "text-editor",
		Settings:   map[string]any{"editor": content},
		Elements:   []any{},
	}
}

func imageWidget(altText, placeholderURL string) Widget {
	return Widget{
		ID:         elementID(),
		ElType:     "widget",
		WidgetType: "image",
		Settings: map[string]any{
			"image": map[string]any{"url": placeholderURL, "id": "", "alt": altText},
		},
		Elements: []any{},
	}
}

func schemaWidget(content *blog.Content) Widget {
	schema := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      content.Title,
		"description":   content.MetaDescription,
		"datePublished": time.Now().UTC().Format(time.RFC3339),
		"author":        map[string]any{"@type": "Organization", "name": "Creative Use of Technology"},
	}
	data, _ := json.Marshal(schema)

	return Widget{
		ID:         elementID(),
		ElType:     "widget",
		WidgetType: "html",
		Settings:   map[string]any{"html": `<script type="application/ld+json">` + string(data) + `</script>`},
		Elements:   []any{},
	}
}
