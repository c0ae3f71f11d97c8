package course

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ElementType identifies the kind of content a ContentElement holds.
// The constant values are the persisted short forms; external readers of the
// shared catalog file depend on them, so they must not change.
type ElementType string

const (
	TypeHeading1  ElementType = "h1"
	TypeHeading2  ElementType = "h2"
	TypeParagraph ElementType = "p"
	TypeCode      ElementType = "code"
	TypeImage     ElementType = "image"
	TypeVideo     ElementType = "video"
)

// ElementTypes lists the closed variant set in display order.
func ElementTypes() []ElementType {
	return []ElementType{TypeHeading1, TypeHeading2, TypeParagraph, TypeCode, TypeImage, TypeVideo}
}

// Valid reports whether t belongs to the closed variant set.
func (t ElementType) Valid() bool {
	switch t {
	case TypeHeading1, TypeHeading2, TypeParagraph, TypeCode, TypeImage, TypeVideo:
		return true
	}
	return false
}

// ParseElementType resolves a user-facing type name. Both the persisted short
// forms ("h1", "p") and the long names ("heading1", "paragraph") are accepted.
func ParseElementType(name string) (ElementType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "h1", "heading1", "title":
		return TypeHeading1, nil
	case "h2", "heading2", "subtitle":
		return TypeHeading2, nil
	case "p", "paragraph", "text":
		return TypeParagraph, nil
	case "code":
		return TypeCode, nil
	case "image", "img":
		return TypeImage, nil
	case "video":
		return TypeVideo, nil
	}
	return "", fmt.Errorf("unknown element type %q", name)
}

// ContentElement is a single typed unit of course content.
//
// Payload holds display text for the text-like types and a resource reference
// (data URI or external URL) for image and video. An empty payload is legal:
// it renders as a placeholder in edit mode and as nothing once published.
// The JSON tags mirror the persisted catalog shape.
type ContentElement struct {
	ID      string      `json:"id"`
	Type    ElementType `json:"type"`
	Payload string      `json:"content"`
}

// NewElement creates an element of the given type with a fresh id and an
// empty payload.
func NewElement(t ElementType) ContentElement {
	return ContentElement{ID: NewID(), Type: t}
}

// WithPayload returns a copy of e with the payload replaced.
func (e ContentElement) WithPayload(payload string) ContentElement {
	e.Payload = payload
	return e
}

// WithType returns a copy of e with the type replaced. The payload is kept;
// reinterpreting it under the new type is a presentation concern.
func (e ContentElement) WithType(t ElementType) ContentElement {
	e.Type = t
	return e
}

// NewID returns a short opaque alphanumeric identifier. Ids carry no
// structure; uniqueness is all callers may rely on.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
