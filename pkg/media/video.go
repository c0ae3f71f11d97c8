package media

import (
	"regexp"
	"strings"
)

var watchURL = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`)

// IsVideoURL reports whether raw points at a recognized video host.
func IsVideoURL(raw string) bool {
	return strings.Contains(raw, "youtube.com") || strings.Contains(raw, "youtu.be")
}

// EmbedURL rewrites a recognized video-host watch URL to its embeddable
// form. Anything unrecognized passes through untouched: the model accepts
// any non-empty payload and rendering decides what to do with it.
func EmbedURL(raw string) string {
	m := watchURL.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return "https://www.youtube.com/embed/" + m[1]
}
