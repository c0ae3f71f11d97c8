package course

// Draft is the in-progress, unpublished course document held by an editing
// session. All mutation methods are pure: they return a new Draft and leave
// the receiver untouched, so a failed publish can never corrupt the working
// copy.
//
// Mutations address elements by id only. Addressing an id that is not in the
// draft is a deliberate no-op, not an error: callers only ever hold ids they
// obtained from the draft itself.
type Draft struct {
	Title    string           `json:"title"`
	Elements []ContentElement `json:"elements"`
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{}
}

func (d Draft) clone() Draft {
	elements := make([]ContentElement, len(d.Elements))
	copy(elements, d.Elements)
	d.Elements = elements
	return d
}

// Add appends a new element of the given type to the end of the draft.
func (d Draft) Add(t ElementType) Draft {
	out := d.clone()
	out.Elements = append(out.Elements, NewElement(t))
	return out
}

// Update replaces the payload of the element with the given id.
func (d Draft) Update(id, payload string) Draft {
	out := d.clone()
	for i, el := range out.Elements {
		if el.ID == id {
			out.Elements[i] = el.WithPayload(payload)
			return out
		}
	}
	return d
}

// Retype changes the type of the element with the given id. The payload is
// preserved.
func (d Draft) Retype(id string, t ElementType) Draft {
	out := d.clone()
	for i, el := range out.Elements {
		if el.ID == id {
			out.Elements[i] = el.WithType(t)
			return out
		}
	}
	return d
}

// Remove deletes the element with the given id.
func (d Draft) Remove(id string) Draft {
	out := d.clone()
	for i, el := range out.Elements {
		if el.ID == id {
			out.Elements = append(out.Elements[:i], out.Elements[i+1:]...)
			return out
		}
	}
	return d
}

// Duplicate appends a copy of the element with the given id, carrying the
// same type and payload under a fresh id. Duplicates always land at the end
// of the sequence, never adjacent to their source.
func (d Draft) Duplicate(id string) Draft {
	for _, el := range d.Elements {
		if el.ID == id {
			out := d.clone()
			dup := el
			dup.ID = NewID()
			out.Elements = append(out.Elements, dup)
			return out
		}
	}
	return d
}

// Rename replaces the working title. No constraints apply here; the title is
// validated at publish time.
func (d Draft) Rename(title string) Draft {
	out := d.clone()
	out.Title = title
	return out
}

// Find returns the element with the given id, if present.
func (d Draft) Find(id string) (ContentElement, bool) {
	for _, el := range d.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return ContentElement{}, false
}
