// Package export renders published courses for consumption outside the
// catalog store.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avaldes/coursehub/pkg/course"
	"github.com/avaldes/coursehub/pkg/media"
)

// frontmatter is the YAML header of an exported course.
type frontmatter struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	Author        string `yaml:"author"`
	CreatedAt     string `yaml:"createdAt"`
	EstimatedTime int    `yaml:"estimatedTime"`
	Views         int    `yaml:"views"`
}

// Markdown renders a published course as a Markdown document with YAML
// frontmatter. Elements with a blank payload render nothing, matching the
// published (non-edit) view.
func Markdown(c course.Course) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontmatter{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Author:        c.Author,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		EstimatedTime: c.EstimatedTime,
		Views:         c.Views,
	}); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	encoder.Close()
	buf.WriteString("---\n")

	for _, el := range c.Content {
		if strings.TrimSpace(el.Payload) == "" {
			continue
		}
		switch el.Type {
		case course.TypeHeading1:
			fmt.Fprintf(&buf, "\n# %s\n", el.Payload)
		case course.TypeHeading2:
			fmt.Fprintf(&buf, "\n## %s\n", el.Payload)
		case course.TypeParagraph:
			fmt.Fprintf(&buf, "\n%s\n", el.Payload)
		case course.TypeCode:
			fmt.Fprintf(&buf, "\n```\n%s\n```\n", el.Payload)
		case course.TypeImage:
			fmt.Fprintf(&buf, "\n![](%s)\n", el.Payload)
		case course.TypeVideo:
			fmt.Fprintf(&buf, "\n[video](%s)\n", media.EmbedURL(el.Payload))
		default:
			// Unknown types are skipped rather than guessed at.
		}
	}

	return buf.Bytes(), nil
}
