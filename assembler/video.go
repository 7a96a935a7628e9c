package assembler

import "regexp"

// VideoProvider identifies the hosting platform of an embeddable video.
type VideoProvider string

const (
	ProviderYouTube VideoProvider = "youtube"
	ProviderVimeo   VideoProvider = "vimeo"
)

// VideoReference is a typed, embeddable reference derived from a raw URL.
type VideoReference struct {
	Provider      VideoProvider `json:"provider"`
	ID            string        `json:"id"`
	ThumbnailURL  string        `json:"thumbnailUrl,omitempty"`
	CanonicalLink string        `json:"canonicalLink"`
}

var (
	youtubeRe = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:embed/|v/|watch\?v=|watch\?.+&v=))([^&?]+)`)
	vimeoRe   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// ResolveVideo parses a free-form video URL into a VideoReference.
// It returns nil when the URL matches neither YouTube nor Vimeo;
// callers treat nil as "omit the video embed". No network calls are
// made: the Vimeo thumbnail would require an API lookup, so it is
// left empty.
func ResolveVideo(url string) *VideoReference {
	if url == "" {
		return nil
	}
	if m := youtubeRe.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
		return &VideoReference{
			Provider:      ProviderYouTube,
			ID:            m[1],
			ThumbnailURL:  "https://img.youtube.com/vi/" + m[1] + "/maxresdefault.jpg",
			CanonicalLink: "https://www.youtube.com/watch?v=" + m[1],
		}
	}
	if m := vimeoRe.FindStringSubmatch(url); len(m) > 1 {
		return &VideoReference{
			Provider:      ProviderVimeo,
			ID:            m[1],
			CanonicalLink: "https://vimeo.com/" + m[1],
		}
	}
	return nil
}

// EmbedURL returns the player URL used for iframes and structured data.
func (v *VideoReference) EmbedURL() string {
	if v.Provider == ProviderYouTube {
		return "https://www.youtube.com/embed/" + v.ID
	}
	return "https://player.vimeo.com/video/" + v.ID
}
