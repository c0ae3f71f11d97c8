package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avaldes/coursehub/pkg/course"
)

// Service handles catalog-level logic on top of a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger discards output.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// Store exposes the underlying store, for wiring sessions and trackers
// against the same collaborator.
func (s *Service) Store() Store {
	return s.store
}

// Courses returns every published course in publish order.
func (s *Service) Courses(ctx context.Context) ([]course.Course, error) {
	return s.store.LoadAll(ctx)
}

// Course returns a single course by id without recording a view.
func (s *Service) Course(ctx context.Context, id string) (course.Course, error) {
	if id == "" {
		return course.Course{}, ErrCourseNotFound
	}
	return s.store.FindCourse(ctx, id)
}

// Search filters the catalog by a case-insensitive substring match on title
// and description. An empty term returns the full catalog.
func (s *Service) Search(ctx context.Context, term string) ([]course.Course, error) {
	courses, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return courses, nil
	}
	var matched []course.Course
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Description), term) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// TotalViews sums the view counters of the whole catalog.
func (s *Service) TotalViews(ctx context.Context) (int, error) {
	courses, err := s.store.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range courses {
		total += c.Views
	}
	return total, nil
}

// AuthorProfile returns the configured author profile, if any.
func (s *Service) AuthorProfile(ctx context.Context) (course.AuthorProfile, bool, error) {
	return s.store.LoadAuthorProfile(ctx)
}

// SetAuthor configures the author profile used by every subsequent publish.
func (s *Service) SetAuthor(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("author name cannot be empty")
	}
	if err := s.store.SaveAuthorProfile(ctx, course.AuthorProfile{Name: name}); err != nil {
		return fmt.Errorf("save author profile: %w", err)
	}
	s.logger.Info("author profile configured", "name", name)
	return nil
}

// Watch observes external changes to the catalog if the store supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}
