package course

import (
	"reflect"
	"testing"
)

func TestDraft_AddAssignsUniqueIDs(t *testing.T) {
	d := NewDraft()
	d = d.Add(TypeHeading1)
	d = d.Add(TypeParagraph)
	d = d.Add(TypeCode)
	d = d.Remove(d.Elements[1].ID)
	d = d.Add(TypeParagraph)
	d = d.Duplicate(d.Elements[0].ID)

	seen := make(map[string]bool)
	for _, el := range d.Elements {
		if el.ID == "" {
			t.Fatal("element with empty id")
		}
		if seen[el.ID] {
			t.Fatalf("duplicate id %q", el.ID)
		}
		seen[el.ID] = true
	}
	if len(d.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(d.Elements))
	}
}

func TestDraft_MutationsArePure(t *testing.T) {
	orig := NewDraft().Add(TypeParagraph)
	id := orig.Elements[0].ID

	updated := orig.Update(id, "hello")
	if orig.Elements[0].Payload != "" {
		t.Error("Update mutated the original draft")
	}
	if updated.Elements[0].Payload != "hello" {
		t.Errorf("expected updated payload 'hello', got %q", updated.Elements[0].Payload)
	}

	retyped := orig.Retype(id, TypeCode)
	if orig.Elements[0].Type != TypeParagraph {
		t.Error("Retype mutated the original draft")
	}
	if retyped.Elements[0].Type != TypeCode {
		t.Errorf("expected retyped element to be code, got %s", retyped.Elements[0].Type)
	}
	if retyped.Elements[0].Payload != orig.Elements[0].Payload {
		t.Error("Retype did not preserve the payload")
	}

	removed := orig.Remove(id)
	if len(orig.Elements) != 1 || len(removed.Elements) != 0 {
		t.Error("Remove did not produce an independent copy")
	}
}

func TestDraft_MissingIDIsNoop(t *testing.T) {
	d := NewDraft().Add(TypeHeading1).Add(TypeParagraph)
	d = d.Update(d.Elements[1].ID, "some text")

	for name, got := range map[string]Draft{
		"update":    d.Update("missing", "x"),
		"retype":    d.Retype("missing", TypeCode),
		"remove":    d.Remove("missing"),
		"duplicate": d.Duplicate("missing"),
	} {
		if !reflect.DeepEqual(got, d) {
			t.Errorf("%s with missing id changed the draft", name)
		}
	}
}

func TestDraft_Duplicate(t *testing.T) {
	d := NewDraft().Add(TypeCode)
	src := d.Elements[0]
	d = d.Update(src.ID, "fmt.Println(42)")
	d = d.Add(TypeParagraph)

	dup := d.Duplicate(src.ID)
	if len(dup.Elements) != 3 {
		t.Fatalf("expected 3 elements after duplicate, got %d", len(dup.Elements))
	}

	// Duplicates land at the end, never adjacent to the source.
	last := dup.Elements[2]
	if last.Type != TypeCode {
		t.Errorf("expected duplicated type code, got %s", last.Type)
	}
	if last.Payload != "fmt.Println(42)" {
		t.Errorf("expected duplicated payload, got %q", last.Payload)
	}
	if last.ID == src.ID {
		t.Error("duplicate kept the source id")
	}
}

func TestDraft_Rename(t *testing.T) {
	d := NewDraft().Rename("Working Title")
	if d.Title != "Working Title" {
		t.Errorf("expected title to be set, got %q", d.Title)
	}
	// No constraints at this layer: blank titles are rejected at publish.
	if got := d.Rename("  ").Title; got != "  " {
		t.Errorf("expected blank title to be kept verbatim, got %q", got)
	}
}

func TestDraft_Find(t *testing.T) {
	d := NewDraft().Add(TypeImage)
	if _, ok := d.Find(d.Elements[0].ID); !ok {
		t.Error("expected to find existing element")
	}
	if _, ok := d.Find("missing"); ok {
		t.Error("expected missing id to not be found")
	}
}
