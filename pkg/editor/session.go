// Package editor holds the mutable working copy of a course and the one-way
// publish workflow that turns it into an immutable catalog record.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avaldes/coursehub/pkg/catalog"
	"github.com/avaldes/coursehub/pkg/course"
)

// State of the publish workflow. Validating and Publishing are transient:
// they are only observable from within Publish itself, but they are modeled
// explicitly so a failed validation demonstrably returns to Drafting.
type State int

const (
	StateDrafting State = iota
	StateValidating
	StatePublishing
	StatePublished
)

func (s State) String() string {
	switch s {
	case StateDrafting:
		return "drafting"
	case StateValidating:
		return "validating"
	case StatePublishing:
		return "publishing"
	case StatePublished:
		return "published"
	}
	return "unknown"
}

// ErrSessionPublished is returned by every operation on a session that has
// already published. A session is one-way: after publish the draft is
// discarded and editing does not resume.
var ErrSessionPublished = errors.New("session already published")

// Session owns a draft and applies the editing operations to it before
// publication. Draft operations are synchronous and complete atomically with
// respect to the caller; the only asynchronous boundary is the catalog store.
type Session struct {
	store  catalog.Store
	logger *slog.Logger
	clock  func() time.Time
	newID  func() string
	draft  course.Draft
	state  State
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDraft starts the session from an existing working copy instead of an
// empty draft.
func WithDraft(d course.Draft) Option {
	return func(s *Session) { s.draft = d }
}

// WithClock overrides the publish timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// WithIDGenerator overrides the course id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) { s.newID = gen }
}

// NewSession starts an editing session against the given store.
func NewSession(store catalog.Store, opts ...Option) *Session {
	s := &Session{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		clock:  time.Now,
		newID:  course.NewID,
		draft:  course.NewDraft(),
		state:  StateDrafting,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current workflow state.
func (s *Session) State() State {
	return s.state
}

// Draft returns a copy of the working document.
func (s *Session) Draft() course.Draft {
	return s.draft.Rename(s.draft.Title) // Rename clones
}

func (s *Session) mutate(fn func(course.Draft) course.Draft) error {
	if s.state == StatePublished {
		return ErrSessionPublished
	}
	s.draft = fn(s.draft)
	return nil
}

// AddElement appends a new element of the given type to the draft.
func (s *Session) AddElement(t course.ElementType) error {
	if !t.Valid() {
		return fmt.Errorf("invalid element type %q", t)
	}
	return s.mutate(func(d course.Draft) course.Draft { return d.Add(t) })
}

// UpdateElement replaces the payload of the addressed element. A missing id
// is a silent no-op.
func (s *Session) UpdateElement(id, payload string) error {
	return s.mutate(func(d course.Draft) course.Draft { return d.Update(id, payload) })
}

// RetypeElement changes the type of the addressed element, preserving its
// payload. A missing id is a silent no-op.
func (s *Session) RetypeElement(id string, t course.ElementType) error {
	if !t.Valid() {
		return fmt.Errorf("invalid element type %q", t)
	}
	return s.mutate(func(d course.Draft) course.Draft { return d.Retype(id, t) })
}

// RemoveElement deletes the addressed element. A missing id is a silent no-op.
func (s *Session) RemoveElement(id string) error {
	return s.mutate(func(d course.Draft) course.Draft { return d.Remove(id) })
}

// DuplicateElement appends a copy of the addressed element under a fresh id.
func (s *Session) DuplicateElement(id string) error {
	return s.mutate(func(d course.Draft) course.Draft { return d.Duplicate(id) })
}

// Rename replaces the working title.
func (s *Session) Rename(title string) error {
	return s.mutate(func(d course.Draft) course.Draft { return d.Rename(title) })
}

// Publish validates the draft, finalizes it into an immutable course record
// and appends it to the catalog, as one logical step.
//
// Validation failures (course.ErrEmptyTitle, course.ErrEmptyContent,
// course.ErrAuthorNotConfigured) leave the draft untouched and return the
// session to Drafting so the caller can correct and retry. On success the
// session transitions to Published and the draft is discarded.
func (s *Session) Publish(ctx context.Context) (course.Course, error) {
	if s.state == StatePublished {
		return course.Course{}, ErrSessionPublished
	}

	s.state = StateValidating
	author, err := s.validate(ctx)
	if err != nil {
		s.state = StateDrafting
		return course.Course{}, err
	}

	s.state = StatePublishing
	c := s.finalize(author)
	if err := s.store.AppendCourse(ctx, c); err != nil {
		s.state = StateDrafting
		return course.Course{}, fmt.Errorf("failed to append course: %w", err)
	}

	s.state = StatePublished
	s.draft = course.NewDraft()
	s.logger.Info("course published", "id", c.ID, "title", c.Title, "author", c.Author)
	return c, nil
}

func (s *Session) validate(ctx context.Context) (string, error) {
	if strings.TrimSpace(s.draft.Title) == "" {
		return "", course.ErrEmptyTitle
	}
	if len(s.draft.Elements) == 0 {
		return "", course.ErrEmptyContent
	}
	profile, ok, err := s.store.LoadAuthorProfile(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load author profile: %w", err)
	}
	if !ok || strings.TrimSpace(profile.Name) == "" {
		return "", course.ErrAuthorNotConfigured
	}
	return profile.Name, nil
}

func (s *Session) finalize(author string) course.Course {
	content := make([]course.ContentElement, len(s.draft.Elements))
	copy(content, s.draft.Elements)

	return course.Course{
		ID:            s.newID(),
		Title:         s.draft.Title,
		Description:   course.AutoDescription(content),
		Content:       content,
		CreatedAt:     s.clock(),
		Author:        author,
		EstimatedTime: course.EstimatedReadingMinutes(content),
		Views:         0,
	}
}
