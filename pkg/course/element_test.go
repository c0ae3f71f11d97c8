package course

import "testing"

func TestNewElement(t *testing.T) {
	el := NewElement(TypeParagraph)
	if el.ID == "" {
		t.Error("expected a fresh id")
	}
	if el.Type != TypeParagraph {
		t.Errorf("expected paragraph, got %s", el.Type)
	}
	if el.Payload != "" {
		t.Errorf("expected empty payload, got %q", el.Payload)
	}

	other := NewElement(TypeParagraph)
	if other.ID == el.ID {
		t.Error("two elements share an id")
	}
}

func TestElement_WithPayloadAndType(t *testing.T) {
	el := NewElement(TypeHeading1)
	updated := el.WithPayload("Intro")
	if el.Payload != "" {
		t.Error("WithPayload mutated the receiver")
	}
	if updated.Payload != "Intro" || updated.ID != el.ID {
		t.Errorf("unexpected copy: %+v", updated)
	}

	retyped := updated.WithType(TypeHeading2)
	if retyped.Payload != "Intro" {
		t.Error("WithType did not preserve payload")
	}
	if retyped.Type != TypeHeading2 {
		t.Errorf("expected h2, got %s", retyped.Type)
	}
}

func TestElementType_Valid(t *testing.T) {
	for _, typ := range ElementTypes() {
		if !typ.Valid() {
			t.Errorf("%s should be valid", typ)
		}
	}
	if ElementType("pdf").Valid() {
		t.Error("pdf is outside the closed variant set")
	}
}

func TestParseElementType(t *testing.T) {
	tests := []struct {
		in   string
		want ElementType
	}{
		{"h1", TypeHeading1},
		{"Heading1", TypeHeading1},
		{"p", TypeParagraph},
		{"paragraph", TypeParagraph},
		{"CODE", TypeCode},
		{"img", TypeImage},
		{"video", TypeVideo},
		{" h2 ", TypeHeading2},
	}
	for _, tt := range tests {
		got, err := ParseElementType(tt.in)
		if err != nil {
			t.Errorf("ParseElementType(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseElementType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseElementType("quiz"); err == nil {
		t.Error("expected error for unknown type")
	}
}
