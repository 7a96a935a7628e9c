// Package sitemap discovers linkable pages on the shop site. The blog
// generator offers these as focus products so the model links to real
// URLs instead of inventing them.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

const userAgent = "CUT-BlogGenerator/1.0"

// Fetcher retrieves and parses sitemap indexes and page content.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a pooled HTTP client.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type sitemapIndex struct {
	XMLName  xml.Name `xml:"sitemapindex"`
	Sitemaps []struct {
		Loc string `xml:"loc"`
	} `xml:"sitemap"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

// FetchSiteProducts loads a sitemap index, walks the relevant
// sub-sitemaps in parallel, and returns the deduplicated entries with a
// category derived from the sub-sitemap filename. A URL that points
// directly at a single sitemap instead of an index still works.
func (f *Fetcher) FetchSiteProducts(ctx context.Context, indexURL string) ([]blog.ProductEntry, error) {
	data, err := f.get(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sitemap index: %w", err)
	}

	var index sitemapIndex
	if err := xml.Unmarshal(data, &index); err != nil || len(index.Sitemaps) == 0 {
		if strings.Contains(indexURL, "sitemap") {
			found, err := f.fetchSubSitemap(ctx, indexURL, "Divers")
			if err != nil {
				return nil, err
			}
			return dedupe(filterEntries(found)), nil
		}
		return nil, fmt.Errorf("no sitemaps found in index %s", indexURL)
	}

	type job struct {
		url      string
		category string
	}
	var jobs []job
	for _, sm := range index.Sitemaps {
		loc := strings.TrimSpace(sm.Loc)
		switch {
		case strings.Contains(loc, "product_cat-sitemap"), strings.Contains(loc, "category-sitemap"):
			jobs = append(jobs, job{loc, "Categorie"})
		case strings.Contains(loc, "product-sitemap"):
			jobs = append(jobs, job{loc, "Product"})
		case strings.Contains(loc, "post-sitemap"):
			jobs = append(jobs, job{loc, "Blog"})
		case strings.Contains(loc, "page-sitemap"):
			jobs = append(jobs, job{loc, "Pagina"})
		}
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		entries []blog.ProductEntry
	)
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			// A failing sub-sitemap degrades to an empty slice.
			found, err := f.fetchSubSitemap(ctx, j.url, j.category)
			if err != nil {
				return
			}
			mu.Lock()
			entries = append(entries, found...)
			mu.Unlock()
		}(j)
	}
	wg.Wait()

	return dedupe(filterEntries(entries)), nil
}

func (f *Fetcher) fetchSubSitemap(ctx context.Context, sitemapURL, category string) ([]blog.ProductEntry, error) {
	data, err := f.get(ctx, sitemapURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sub-sitemap: %w", err)
	}

	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse sub-sitemap %s: %w", sitemapURL, err)
	}

	entries := make([]blog.ProductEntry, 0, len(set.URLs))
	for _, u := range set.URLs {
		loc := strings.TrimSpace(u.Loc)
		if loc == "" {
			continue
		}
		entries = append(entries, blog.ProductEntry{
			Name:     formatURLToName(loc),
			URL:      loc,
			Category: category,
		})
	}
	return entries, nil
}

// filterEntries drops system pages and asset URLs that should never be
// offered as link targets.
func filterEntries(entries []blog.ProductEntry) []blog.ProductEntry {
	out := entries[:0]
	for _, e := range entries {
		if strings.Contains(e.URL, "/my-account/") ||
			strings.Contains(e.URL, "/cart/") ||
			strings.Contains(e.URL, "/checkout/") ||
			strings.Contains(e.URL, "/feed/") ||
			strings.Contains(e.URL, "/wp-json/") ||
			strings.HasSuffix(e.URL, ".jpg") ||
			strings.HasSuffix(e.URL, ".png") ||
			strings.HasSuffix(e.URL, ".xml") {
			continue
		}
		out = append(out, e)
	}
	return out
}

func dedupe(entries []blog.ProductEntry) []blog.ProductEntry {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if seen[e.URL] {
			continue
		}
		seen[e.URL] = true
		out = append(out, e)
	}
	return out
}

// formatURLToName turns a page URL into a human-readable name: the slug
// without CMS prefixes, dashes replaced and words capitalized.
func formatURLToName(raw string) string {
	slug := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		slug = strings.TrimPrefix(u.Path, "/")
	}

	for _, prefix := range []string{"product/", "diensten/", "product-categorie/", "categorie/", "blog/"} {
		slug = strings.Replace(slug, prefix, "", 1)
	}
	slug = strings.TrimSuffix(slug, "/")

	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// FetchPageContent scrapes a product or content page into a compact
// plain-text summary fed to the AI as source material. It knows the
// WooCommerce/WordPress selectors the shop uses and caps the result so
// prompts stay within budget.
func (f *Fetcher) FetchPageContent(ctx context.Context, pageURL string) (string, error) {
	data, err := f.get(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse page %s: %w", pageURL, err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = "Naam onbekend"
	}

	shortDesc := firstText(doc, ".woocommerce-product-details__short-description", ".term-description")
	longDesc := firstText(doc, "#tab-description", ".woocommerce-Tabs-panel--description")

	// Top reviews only, to avoid token overflow.
	var reviews []string
	doc.Find(".commentlist li .description, .comment-content, .review-text").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := whitespaceRe.ReplaceAllString(strings.TrimSpace(s.Text()), " ")
		if len(text) > 10 {
			reviews = append(reviews, `"`+text+`"`)
		}
		return len(reviews) < 3
	})
	reviewText := "Geen reviews gevonden op deze pagina."
	if len(reviews) > 0 {
		reviewText = strings.Join(reviews, "\n- ")
	}

	generalContent := ""
	if shortDesc == "" && longDesc == "" {
		container := doc.Find(".entry-content").First()
		if container.Length() == 0 {
			container = doc.Find(".elementor-widget-text-editor").First()
		}
		var paragraphs []string
		container.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
			return len(paragraphs) < 5
		})
		generalContent = strings.Join(paragraphs, " ")
	}

	full := fmt.Sprintf("TYPE: Pagina/Product/Blog TITEL: %s URL: %s KORTE OMSCHRIJVING: %s DETAILS: %s KLANT REVIEWS: - %s INHOUD: %s",
		title, pageURL, shortDesc, longDesc, reviewText, generalContent)
	full = whitespaceRe.ReplaceAllString(full, " ")
	if len(full) > 4000 {
		full = full[:4000]
	}
	return full, nil
}

func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	return io.ReadAll(resp.Body)
}
