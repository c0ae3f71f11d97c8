package coursehub

import (
	"log/slog"

	"github.com/avaldes/coursehub/internal/platform"
	"github.com/avaldes/coursehub/pkg/catalog"
	"github.com/avaldes/coursehub/pkg/course"
	"github.com/avaldes/coursehub/pkg/editor"
)

// Version of the library.
const Version = "0.3.0"

// --- Types ---

// Course is a published, catalog-visible course record.
type Course = course.Course

// ContentElement is a single typed block of course content.
type ContentElement = course.ContentElement

// ElementType identifies the kind of content an element holds.
type ElementType = course.ElementType

// Draft is the in-progress course document of an editing session.
type Draft = course.Draft

// AuthorProfile is the process-wide author identity.
type AuthorProfile = course.AuthorProfile

// Store is the shared catalog persistence contract.
type Store = catalog.Store

// Service is the catalog service.
type Service = catalog.Service

// Tracker records viewer loads.
type Tracker = catalog.Tracker

// Session is an editing session.
type Session = editor.Session

// Event is an observed catalog change.
type Event = catalog.Event

// Element types.
const (
	TypeHeading1  = course.TypeHeading1
	TypeHeading2  = course.TypeHeading2
	TypeParagraph = course.TypeParagraph
	TypeCode      = course.TypeCode
	TypeImage     = course.TypeImage
	TypeVideo     = course.TypeVideo
)

// Errors.
var (
	ErrEmptyTitle          = course.ErrEmptyTitle
	ErrEmptyContent        = course.ErrEmptyContent
	ErrAuthorNotConfigured = course.ErrAuthorNotConfigured
	ErrCourseNotFound      = catalog.ErrCourseNotFound
	ErrSessionPublished    = editor.ErrSessionPublished
)

// --- Configuration ---

// Option defines a functional option for configuring CourseHub.
type Option = platform.Option

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore injects a custom catalog store.
func WithStore(store catalog.Store) Option {
	return platform.WithStore(store)
}

// WithSeed overrides the demonstration courses loaded into an empty catalog.
// Passing nil disables seeding.
func WithSeed(seed []course.Course) Option {
	return platform.WithSeed(seed)
}

// --- Factories ---

// New wires a catalog service backed by the catalog file at path.
func New(path string, opts ...Option) (*catalog.Service, error) {
	return platform.New(path, opts...)
}

// Init prepares and returns just the catalog store at path.
func Init(path string, opts ...Option) (catalog.Store, error) {
	return platform.Init(path, opts...)
}

// NewSession starts an editing session against the given store.
func NewSession(store catalog.Store, opts ...editor.Option) *editor.Session {
	return editor.NewSession(store, opts...)
}

// NewTracker creates a view-count tracker against the given store.
func NewTracker(store catalog.Store, logger *slog.Logger) *catalog.Tracker {
	return catalog.NewTracker(store, logger)
}
