package assembler

import (
	"fmt"
	"strings"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

// robotsDirective permits indexing with maximal preview sizes. The
// publishing platform expects exactly this directive in exports.
const robotsDirective = "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1"

// CompleteDocument wraps an assembled (possibly user-edited) HTML
// fragment in a standalone document shell. The head tag order is a
// format-exact contract with the target publishing platform: charset,
// viewport, title, description, keywords, canonical, robots, style.
func CompleteDocument(html string, content *blog.Content) string {
	title := content.Title
	if title == "" {
		title = "Blog Post"
	}
	canonical := content.CanonicalURL
	if canonical == "" {
		canonical = siteBlogURL
	}

	// The style block moves from the fragment into the head.
	body := strings.Replace(html, BlogCSS, "", 1)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="nl">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <meta name="description" content="%s">
    <meta name="keywords" content="%s">
    <link rel="canonical" href="%s" />
    <meta name="robots" content="%s">
    %s
</head>
<body>
    %s
</body>
</html>`, title, content.MetaDescription, strings.Join(content.KeywordsUsed, ", "), canonical, robotsDirective, BlogCSS, body)
}

// ClipboardFragment prepares an edited fragment for pasting into a CMS
// body field: the style block is re-prepended if an edit removed it.
func ClipboardFragment(html string) string {
	if html == "" {
		return ""
	}
	if !strings.Contains(html, "<style>") {
		return BlogCSS + html
	}
	return html
}
