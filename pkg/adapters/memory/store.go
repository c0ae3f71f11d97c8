// Package memory implements the catalog store in process memory. It backs
// tests and embedded usage; nothing is shared across processes.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avaldes/coursehub/pkg/catalog"
	"github.com/avaldes/coursehub/pkg/course"
)

// Store implements catalog.Store in memory.
type Store struct {
	mu  sync.Mutex
	cat catalog.Catalog
}

// NewStore creates an in-memory store preloaded with the given courses.
func NewStore(seed []course.Course) *Store {
	s := &Store{}
	s.cat.Courses = append(s.cat.Courses, seed...)
	return s
}

// LoadAll implements catalog.Store.
func (s *Store) LoadAll(ctx context.Context) ([]course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]course.Course, len(s.cat.Courses))
	copy(out, s.cat.Courses)
	return out, nil
}

// AppendCourse implements catalog.Store.
func (s *Store) AppendCourse(ctx context.Context, c course.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.cat.Courses {
		if existing.ID == c.ID {
			return fmt.Errorf("duplicate course id %q", c.ID)
		}
	}
	s.cat.Courses = append(s.cat.Courses, c)
	return nil
}

// FindCourse implements catalog.Store.
func (s *Store) FindCourse(ctx context.Context, id string) (course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cat.Courses {
		if c.ID == id {
			return c, nil
		}
	}
	return course.Course{}, fmt.Errorf("%w: %s", catalog.ErrCourseNotFound, id)
}

// LoadAuthorProfile implements catalog.Store.
func (s *Store) LoadAuthorProfile(ctx context.Context) (course.AuthorProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cat.AuthorName == "" {
		return course.AuthorProfile{}, false, nil
	}
	return course.AuthorProfile{Name: s.cat.AuthorName}, true, nil
}

// SaveAuthorProfile implements catalog.Store.
func (s *Store) SaveAuthorProfile(ctx context.Context, profile course.AuthorProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat.AuthorName = profile.Name
	return nil
}

// IncrementViews implements catalog.Store.
func (s *Store) IncrementViews(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cat.Courses {
		if s.cat.Courses[i].ID == id {
			s.cat.Courses[i].Views++
			return nil
		}
	}
	return fmt.Errorf("%w: %s", catalog.ErrCourseNotFound, id)
}

var _ catalog.Store = (*Store)(nil)
