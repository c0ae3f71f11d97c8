package course

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		elements []ContentElement
		want     int
	}{
		{"empty", nil, 0},
		{"empty payloads", []ContentElement{{Type: TypeParagraph}, {Type: TypeCode}}, 0},
		{"single paragraph", []ContentElement{{Type: TypeParagraph, Payload: "one two three"}}, 3},
		{"whitespace only", []ContentElement{{Type: TypeParagraph, Payload: "   \n\t "}}, 0},
		{"mixed types", []ContentElement{
			{Type: TypeHeading1, Payload: "Intro to Go"},
			{Type: TypeCode, Payload: "x := 1"},
		}, 6},
		// A media URL counts as one word. Accepted, not corrected.
		{"media url", []ContentElement{{Type: TypeImage, Payload: "https://example.com/a.png"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.elements); got != tt.want {
				t.Errorf("WordCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimatedReadingMinutes(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty floors at one", 0, 1},
		{"sixty words", 60, 1},
		{"exactly one page", 200, 1},
		{"just over", 201, 2},
		{"five minutes", 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var elements []ContentElement
			if tt.words > 0 {
				elements = []ContentElement{{Type: TypeParagraph, Payload: words(tt.words)}}
			}
			if got := EstimatedReadingMinutes(elements); got != tt.want {
				t.Errorf("EstimatedReadingMinutes(%d words) = %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}

func TestAutoDescription_FallbackWithoutParagraph(t *testing.T) {
	elements := []ContentElement{
		{Type: TypeHeading1, Payload: "A Heading"},
		{Type: TypeCode, Payload: "console.log('hi')"},
	}
	if got := AutoDescription(elements); got != DescriptionFallback {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestAutoDescription_FirstNonBlankParagraph(t *testing.T) {
	elements := []ContentElement{
		{Type: TypeHeading1, Payload: "Heading"},
		{Type: TypeParagraph, Payload: "   "},
		{Type: TypeParagraph, Payload: "  The real description.  "},
		{Type: TypeParagraph, Payload: "A later paragraph."},
	}
	if got := AutoDescription(elements); got != "The real description." {
		t.Errorf("expected trimmed first non-blank paragraph, got %q", got)
	}
}

func TestAutoDescription_Truncates(t *testing.T) {
	long := words(60) // 60 * 5 = 300 chars, well over the limit
	got := AutoDescription([]ContentElement{{Type: TypeParagraph, Payload: long}})
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncation marker, got %q", got)
	}
	if n := len([]rune(got)); n != 153 {
		t.Errorf("expected 150 runes plus marker, got %d", n)
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(got, "...")) {
		t.Error("truncated description is not a prefix of the source paragraph")
	}
}
