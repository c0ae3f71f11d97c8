package course

import "strings"

const (
	// wordsPerMinute is the assumed reading speed for the time estimate.
	wordsPerMinute = 200

	// descriptionLimit caps the auto-generated description, in runes.
	descriptionLimit = 150

	// DescriptionFallback is used when no paragraph qualifies as a
	// description source.
	DescriptionFallback = "No description provided."
)

// WordCount sums the whitespace-separated tokens of every element payload.
// It applies uniformly to all element types; a media payload holding a URL
// counts as one word. Accepted, not corrected.
func WordCount(elements []ContentElement) int {
	total := 0
	for _, el := range elements {
		total += len(strings.Fields(el.Payload))
	}
	return total
}

// EstimatedReadingMinutes returns ceil(words/200) with a floor of one
// minute, so a document with very little text never reports zero.
func EstimatedReadingMinutes(elements []ContentElement) int {
	minutes := (WordCount(elements) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// AutoDescription derives a course description from the first paragraph
// element with a non-blank payload, truncated to 150 runes with a "..."
// marker. Headings, code and media are never used as the source; without a
// qualifying paragraph the fixed fallback is returned.
func AutoDescription(elements []ContentElement) string {
	for _, el := range elements {
		if el.Type != TypeParagraph {
			continue
		}
		text := strings.TrimSpace(el.Payload)
		if text == "" {
			continue
		}
		if runes := []rune(text); len(runes) > descriptionLimit {
			return string(runes[:descriptionLimit]) + "..."
		}
		return text
	}
	return DescriptionFallback
}
