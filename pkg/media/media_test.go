package media

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"watch url with extras", "https://www.youtube.com/watch?v=abc123&t=42s", "https://www.youtube.com/embed/abc123"},
		{"short url", "https://youtu.be/abc123", "https://www.youtube.com/embed/abc123"},
		{"already embed", "https://www.youtube.com/embed/abc123", "https://www.youtube.com/embed/abc123"},
		{"unrelated url", "https://example.com/video.mp4", "https://example.com/video.mp4"},
		{"data uri", "data:video/mp4;base64,AAAA", "data:video/mp4;base64,AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmbedURL(tt.in); got != tt.want {
				t.Errorf("EmbedURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsVideoURL(t *testing.T) {
	if !IsVideoURL("https://youtu.be/abc") {
		t.Error("expected short url to be recognized")
	}
	if IsVideoURL("https://vimeo.com/123") {
		t.Error("vimeo is not a recognized host")
	}
}

// pngHeader is the magic prefix http.DetectContentType sniffs for image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestIngestFile_Image(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	if err := os.WriteFile(path, pngHeader, 0644); err != nil {
		t.Fatal(err)
	}

	uri, err := IngestFile(path)
	if err != nil {
		t.Fatalf("IngestFile failed: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %.40s", uri)
	}
}

func TestIngestFile_RejectsNonMedia(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just some text"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := IngestFile(path)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestIngestFile_MissingFile(t *testing.T) {
	_, err := IngestFile(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
