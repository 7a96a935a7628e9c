package generator

import (
	"fmt"
	"strings"
)

const brandVoice = `MERK IDENTITEIT (Creative Use of Technology):
- Kleuren: Oranje (#ec7b5d), Grijs (#575756).
- Sfeer: Innovatief, warm, persoonlijk, technisch vakmanschap maar toegankelijk.
- Doelgroep: Bedrijven (B2B) op zoek naar unieke relatiegeschenken en consumenten (B2C) voor custom interieur.
- Toon: Professionele marketeer. Overtuigend, SEO-sterk, activerend. Gebruik 'je' en 'jij'.`

const sitemapContext = `KNOWLEDGE BASE - SITE STRUCTUUR:
1. **Algemeen:** /shop/, /diensten/, /over-ons/, /contact/, /portfolio/
2. **Categorieën:** /product-categorie/wereldkaarten/, /product-categorie/verlichting/, /product-categorie/relatiegeschenken/`

const imageDescriptionPrompt = "Beschrijf deze afbeelding voor Creative Use of Technology. Focus op materialen, kleuren en techniek."

// blogJSONShape documents the expected response object. It mirrors
// blog.Content so the response unmarshals directly.
const blogJSONShape = `{
  "title": "H1 titel (max 12 woorden)",
  "metaDescription": "Meta omschrijving (max 160 karakters)",
  "geoStrategy": "korte strategienotitie",
  "headerImageAlt": "SEO ALT tekst voor de header foto",
  "keywordsUsed": ["..."],
  "internalLinksUsed": ["..."],
  "semanticEntities": [{"concept": "...", "definition": "..."}],
  "faq": [{"question": "korte vraag, 1 zin, geen enters", "answer": "beknopt antwoord, geen enters"}],
  "schemaMarkup": "optioneel JSON-LD als string",
  "imageAltMap": {"0": "SEO ALT sectie 1", "1": "SEO ALT sectie 2"},
  "sections": [{"layout": "hero|full_width|two_column_image_left|two_column_image_right|cta_block|feature_highlight|quote_block", "heading": "...", "content": "...", "snippet": "kort direct antwoord", "ctaText": "...", "ctaUrl": "..."}]
}`

func buildGeneratePrompt(req *GenerateRequest) string {
	var b strings.Builder

	b.WriteString("ROLE: Senior Content Marketeer for 'Creative Use of Technology'.\n\n")
	b.WriteString(brandVoice + "\n\n")
	b.WriteString(sitemapContext + "\n\n")
	b.WriteString("TASK: Write a visually engaging, SEO-optimized blog post in valid JSON format.\n\n")

	b.WriteString("=== INPUT DATA ===\n")
	fmt.Fprintf(&b, "TOPIC/KEYWORDS: %s\n", req.Keywords)
	fmt.Fprintf(&b, "USER INTENT: %s\n", req.UserIntent)
	if req.Framework != "" {
		fmt.Fprintf(&b, "FRAMEWORK: %s\n", req.Framework)
	}
	fmt.Fprintf(&b, "USER INSTRUCTIONS: %q\n\n", req.ExtraInstructions)

	fmt.Fprintf(&b, "HEADER IMAGE CONTEXT: %s\n", req.HeaderImageContext)
	b.WriteString("CONTENT IMAGES CONTEXT:\n")
	for i, ctx := range req.ImageContexts {
		fmt.Fprintf(&b, "Image %d: %s\n", i, ctx)
	}
	b.WriteString("\n")

	if len(req.Products) > 0 {
		b.WriteString("=== PRODUCT CONTEXT (SOURCE MATERIAL) ===\n")
		for i, detail := range req.ProductDetails {
			if i < len(req.Products) {
				fmt.Fprintf(&b, "[PRODUCT INFO START: %s]\n%s\n[PRODUCT INFO END]\n", req.Products[i].Name, detail)
			}
		}
		b.WriteString("\nLINKING RULES (STRICT):\n1. ONLY link to the URLs listed below in the \"AVAILABLE LINKS\" section.\n2. Do NOT invent new URLs.\n\nAVAILABLE LINKS:\n")
		for _, p := range req.Products {
			fmt.Fprintf(&b, "- LINK TARGET: %q -> URL: %q\n", p.Name, p.URL)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Use sitemap structure for general linking.\n\n")
	}

	b.WriteString(`=== WRITING GUIDELINES ===
1. **Headings:** Use Sentence case. Include keywords naturally. No repetition in H1.
2. **Content:** Write converting copy. If a section has an image, reference the image content in the text.
3. **Geo-Targeting:** Subtly mention 'Dutch craftsmanship' or 'Made in Breda' where appropriate.
4. **Formatting:** NO markdown bolding (**) in the JSON strings.
5. **JSON SYNTAX (CRITICAL):**
   - Do NOT use newlines inside JSON string values.
   - Keep "question" and "answer" fields on a single line.
   - Do not add trailing commas.
6. **CTA Buttons:** Use descriptive anchor text (e.g. "Ontwerp jouw lamp" instead of "Klik hier").

=== LAYOUT TYPES ===
- hero: Intro section.
- two_column_image_left/right: Use when content images are available.
- full_width: Text only.
- cta_block: Call to action.
- feature_highlight: Emphasized info box.
- quote_block: Customer quote with attribution in the heading field.

OUTPUT: JSON ONLY, matching this shape exactly:
`)
	b.WriteString(blogJSONShape)

	return b.String()
}

func buildModifyPrompt(currentJSON, instruction string) string {
	return fmt.Sprintf(`Modify the following blog post based on the instruction. Keep exact JSON structure.

CURRENT BLOG: %s
INSTRUCTION: %q

RULES:
- Keep 'Sentence case' in titles.
- NO markdown bolding (**).
- NO newlines inside JSON strings.
- Ensure valid JSON output.`, currentJSON, instruction)
}

func buildKeywordSuggestionPrompt(currentTopic string) string {
	existing := []string{}
	for _, k := range strings.Split(currentTopic, ",") {
		if k = strings.TrimSpace(k); k != "" {
			existing = append(existing, k)
		}
	}

	topic := "duurzaam design"
	exclusion := ""
	if len(existing) > 0 {
		topic = existing[0]
		exclusion = fmt.Sprintf("Avoid these used keywords: %s.\n", strings.Join(existing, ", "))
	}

	return fmt.Sprintf(`Role: SEO Specialist.
Task: Provide 5 NEW, relevant long-tail keyword suggestions for: %q.
%s
Criteria:
1. High search volume, reasonable competition.
2. Commercial or Informational intent.
3. Unique suggestions.

Output a JSON array of objects with fields: keyword, volume, competition, rationale. JSON ONLY.`, topic, exclusion)
}

func buildIntentSuggestionPrompt(keywords string) string {
	return fmt.Sprintf(`Role: SEO Specialist.
Task: Suggest 5 user questions (search intents) worth answering in a blog post about: %q.
Write them in Dutch, one short sentence each.

Output a JSON array of strings. JSON ONLY.`, keywords)
}
