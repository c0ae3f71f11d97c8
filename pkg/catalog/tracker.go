package catalog

import (
	"context"
	"log/slog"

	"github.com/avaldes/coursehub/pkg/course"
)

// Tracker records viewer loads against the shared store.
type Tracker struct {
	store  Store
	logger *slog.Logger
}

// NewTracker creates a new Tracker. A nil logger discards output.
func NewTracker(store Store, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{store: store, logger: logger}
}

// RecordView increments the view counter of the course by exactly one and
// returns the course as stored after the increment. It runs once per
// viewer-load event and is not deduplicated: a page refresh counts again.
// Returns ErrCourseNotFound, leaving the store untouched, when the id does
// not match.
func (t *Tracker) RecordView(ctx context.Context, id string) (course.Course, error) {
	if err := t.store.IncrementViews(ctx, id); err != nil {
		return course.Course{}, err
	}
	c, err := t.store.FindCourse(ctx, id)
	if err != nil {
		return course.Course{}, err
	}
	t.logger.Debug("view recorded", "id", id, "views", c.Views)
	return c, nil
}
