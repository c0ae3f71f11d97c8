package platform

import (
	"log/slog"

	"github.com/avaldes/coursehub/pkg/catalog"
	"github.com/avaldes/coursehub/pkg/course"
)

// options holds the internal configuration for the CourseHub service.
type options struct {
	store   catalog.Store
	logger  *slog.Logger
	seed    []course.Course
	seedSet bool
}

// Option defines a functional option for configuring CourseHub.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a custom catalog store (e.g. a mock or a remote-backed
// implementation). If provided, the default file adapter is skipped.
func WithStore(store catalog.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSeed overrides the demonstration courses loaded into an empty catalog
// on first access. Passing nil disables seeding entirely.
func WithSeed(seed []course.Course) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}
