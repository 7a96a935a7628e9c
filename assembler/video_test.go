package assembler

import "testing"

func TestResolveVideoYouTube(t *testing.T) {
	urls := []string{
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=abc&v=dQw4w9WgXcQ",
	}

	for _, url := range urls {
		v := ResolveVideo(url)
		if v == nil {
			t.Errorf("ResolveVideo(%q) = nil", url)
			continue
		}
		if v.Provider != ProviderYouTube {
			t.Errorf("ResolveVideo(%q) provider = %q", url, v.Provider)
		}
		if v.ID != "dQw4w9WgXcQ" {
			t.Errorf("ResolveVideo(%q) id = %q", url, v.ID)
		}
		if v.ThumbnailURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
			t.Errorf("ResolveVideo(%q) thumbnail = %q", url, v.ThumbnailURL)
		}
		if v.EmbedURL() != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
			t.Errorf("ResolveVideo(%q) embed = %q", url, v.EmbedURL())
		}
	}
}

func TestResolveVideoVimeo(t *testing.T) {
	v := ResolveVideo("https://vimeo.com/123456789")
	if v == nil {
		t.Fatal("expected a vimeo reference")
	}
	if v.Provider != ProviderVimeo || v.ID != "123456789" {
		t.Errorf("got provider=%q id=%q", v.Provider, v.ID)
	}
	if v.ThumbnailURL != "" {
		t.Errorf("vimeo thumbnail should be empty, got %q", v.ThumbnailURL)
	}
	if v.EmbedURL() != "https://player.vimeo.com/video/123456789" {
		t.Errorf("embed = %q", v.EmbedURL())
	}
}

func TestResolveVideoUnrecognized(t *testing.T) {
	for _, url := range []string{"", "not a url", "https://example.com/watch?v=abc", "https://vimeo.com/channel"} {
		if v := ResolveVideo(url); v != nil {
			t.Errorf("ResolveVideo(%q) = %+v, want nil", url, v)
		}
	}
}
