package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/avaldes/coursehub/pkg/course"
)

// ErrCourseNotFound is returned by by-id lookups when the id matches no
// published course. Callers should treat the course as absent, not retry.
var ErrCourseNotFound = errors.New("course not found")

// Catalog is the persisted shape of the shared store. The field names are
// the wire contract: any external reader or writer of the same store must
// see exactly "courses" and "authorName". There is no schema version and no
// migration path.
type Catalog struct {
	Courses    []course.Course `json:"courses"`
	AuthorName string          `json:"authorName"`
}

// Store is the shared persistence collaborator holding the published course
// list and the author profile.
//
// AppendCourse and IncrementViews are read-modify-write: implementations
// load the full collection, apply the change and write the full collection
// back. The contract gives no atomicity or locking across concurrent
// writers; when two writers race, the one that commits last wins and the
// other update is silently lost.
type Store interface {
	// LoadAll returns every published course in publish order.
	LoadAll(ctx context.Context) ([]course.Course, error)

	// AppendCourse adds a newly published course to the end of the catalog.
	AppendCourse(ctx context.Context, c course.Course) error

	// FindCourse returns the course with the given id, or ErrCourseNotFound.
	FindCourse(ctx context.Context, id string) (course.Course, error)

	// LoadAuthorProfile returns the configured profile. ok is false when no
	// profile has ever been configured.
	LoadAuthorProfile(ctx context.Context) (profile course.AuthorProfile, ok bool, err error)

	// SaveAuthorProfile stores the profile, overwriting any previous one.
	SaveAuthorProfile(ctx context.Context, profile course.AuthorProfile) error

	// IncrementViews adds exactly one view to the course with the given id,
	// or returns ErrCourseNotFound without writing.
	IncrementViews(ctx context.Context, id string) error
}

// EventType classifies a change observed on the shared catalog.
type EventType string

const (
	// EventPublish signals a course id that was not present before.
	EventPublish EventType = "PUBLISH"
	// EventChange signals an existing course whose record changed
	// (in practice: its view counter).
	EventChange EventType = "CHANGE"
)

// Event describes one observed catalog change.
type Event struct {
	Type      EventType
	CourseID  string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.CourseID)
}

// Watchable is implemented by stores that can report external changes to the
// shared catalog, such as another process publishing or recording a view.
// The pattern is a glob matched against course ids.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
