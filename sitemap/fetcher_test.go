package sitemap

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/sitemap_index.xml", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%[1]s/product-sitemap.xml</loc></sitemap>
  <sitemap><loc>%[1]s/page-sitemap.xml</loc></sitemap>
  <sitemap><loc>%[1]s/author-sitemap.xml</loc></sitemap>
</sitemapindex>`, srv.URL)
	})
	mux.HandleFunc("/product-sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/product/houten-wereldkaart/</loc></url>
  <url><loc>%[1]s/product/houten-wereldkaart/</loc></url>
  <url><loc>%[1]s/cart/</loc></url>
  <url><loc>%[1]s/wp-content/uploads/foto.jpg</loc></url>
</urlset>`, srv.URL)
	})
	mux.HandleFunc("/page-sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/over-ons/</loc></url>
  <url><loc>%[1]s/wp-json/wp/v2/</loc></url>
</urlset>`, srv.URL)
	})
	mux.HandleFunc("/product/houten-wereldkaart/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>
<h1>Houten wereldkaart XL</h1>
<div class="woocommerce-product-details__short-description">Een kaart van duurzaam berkenhout.</div>
<div id="tab-description">Gefreesd   in ons atelier in Breda.</div>
<ol class="commentlist"><li><div class="description">Prachtig ding, snel geleverd!</div></li></ol>
</body></html>`)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSiteProducts(t *testing.T) {
	srv := testSite(t)
	f := NewFetcher()

	entries, err := f.FetchSiteProducts(context.Background(), srv.URL+"/sitemap_index.xml")
	require.NoError(t, err)

	// Duplicates, cart pages, media files and wp-json URLs are gone;
	// sub-sitemaps run in parallel so order is not guaranteed.
	require.Len(t, entries, 2)
	byName := map[string]string{}
	for _, e := range entries {
		byName[e.Name] = e.Category
	}
	assert.Equal(t, "Product", byName["Houten Wereldkaart"])
	assert.Equal(t, "Pagina", byName["Over Ons"])
}

func TestFetchSiteProductsDirectSitemap(t *testing.T) {
	srv := testSite(t)
	f := NewFetcher()

	// A URL pointing at a single sitemap instead of an index still
	// yields entries, categorized as miscellaneous. Filtering and
	// dedupe apply the same as on the index path: the duplicate, the
	// cart page and the media file all drop out.
	entries, err := f.FetchSiteProducts(context.Background(), srv.URL+"/product-sitemap.xml")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Houten Wereldkaart", entries[0].Name)
	assert.Equal(t, "Divers", entries[0].Category)
}

func TestFetchSiteProductsBadIndex(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewFetcher().FetchSiteProducts(context.Background(), srv.URL+"/sitemap_index.xml")
	assert.Error(t, err)
}

func TestFetchPageContent(t *testing.T) {
	srv := testSite(t)
	f := NewFetcher()

	content, err := f.FetchPageContent(context.Background(), srv.URL+"/product/houten-wereldkaart/")
	require.NoError(t, err)

	assert.Contains(t, content, "TITEL: Houten wereldkaart XL")
	assert.Contains(t, content, "Een kaart van duurzaam berkenhout.")
	assert.Contains(t, content, "Gefreesd in ons atelier in Breda.", "whitespace should be collapsed")
	assert.Contains(t, content, `"Prachtig ding, snel geleverd!"`)
	assert.NotContains(t, content, "\n")
	assert.LessOrEqual(t, len(content), 4000)
}

func TestFormatURLToName(t *testing.T) {
	cases := map[string]string{
		"https://example.com/product/houten-wereldkaart/":      "Houten Wereldkaart",
		"https://example.com/product-categorie/verlichting/":   "Verlichting",
		"https://example.com/blog/cadeaus-voor-reizigers/":     "Cadeaus Voor Reizigers",
		"https://example.com/diensten/laser-graveren/":         "Laser Graveren",
		"https://example.com/over-ons/":                        "Over Ons",
		"https://example.com/":                                 "",
	}

	for input, want := range cases {
		if got := formatURLToName(input); got != want {
			t.Errorf("formatURLToName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFetchPageContentMissingSelectors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/kale-pagina/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><div class="entry-content"><p>Eerste alinea.</p><p>Tweede alinea.</p></div></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	content, err := NewFetcher().FetchPageContent(context.Background(), srv.URL+"/kale-pagina/")
	require.NoError(t, err)

	assert.Contains(t, content, "TITEL: Naam onbekend")
	assert.Contains(t, content, "Geen reviews gevonden")
	assert.True(t, strings.Contains(content, "Eerste alinea. Tweede alinea."))
}
