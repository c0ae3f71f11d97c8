// Package fs implements the catalog store on a single shared JSON file.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/avaldes/coursehub/pkg/catalog"
	"github.com/avaldes/coursehub/pkg/course"
)

// Store persists the catalog as one JSON document on disk.
//
// Each write replaces the file atomically (temp file + rename), so readers
// never observe a torn document. The read-modify-write cycle itself is NOT
// synchronized across processes: two processes updating the same catalog can
// still lose one writer's change, matching the documented last-writer-wins
// contract of the shared store. Within a single process a mutex serializes
// writers.
type Store struct {
	Path   string
	config Config

	mu sync.Mutex // serializes in-process read-modify-write cycles

	stateMu       sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the file-backed store.
type Config struct {
	// Path of the catalog JSON file.
	Path string

	Logger *slog.Logger

	// Seed is loaded into an empty or missing catalog on first access.
	// Nil disables seeding.
	Seed []course.Course
}

// NewStore creates a file-backed catalog store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{Path: config.Path, config: config}
}

// Initialize ensures the directory holding the catalog file exists.
func (s *Store) Initialize(ctx context.Context) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	return nil
}

// load reads the catalog file. A missing or empty file yields the seeded
// catalog, which is persisted immediately so every browsing context sees the
// same bootstrap state.
func (s *Store) load() (catalog.Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) || (err == nil && len(data) == 0) {
		cat := catalog.Catalog{Courses: s.config.Seed}
		if err := s.save(cat); err != nil {
			return catalog.Catalog{}, err
		}
		s.config.Logger.Debug("seeded empty catalog", "path", s.Path, "courses", len(cat.Courses))
		return cat, nil
	}
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cat catalog.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return catalog.Catalog{}, fmt.Errorf("invalid catalog file %s: %w", s.Path, err)
	}
	return cat, nil
}

func (s *Store) save(cat catalog.Catalog) error {
	if cat.Courses == nil {
		cat.Courses = []course.Course{}
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return writeFileAtomic(s.Path, data, 0644)
}

// LoadAll implements catalog.Store.
func (s *Store) LoadAll(ctx context.Context) ([]course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, err := s.load()
	if err != nil {
		return nil, err
	}
	return cat.Courses, nil
}

// AppendCourse implements catalog.Store. Read-modify-write.
func (s *Store) AppendCourse(ctx context.Context, c course.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range cat.Courses {
		if existing.ID == c.ID {
			return fmt.Errorf("duplicate course id %q", c.ID)
		}
	}
	cat.Courses = append(cat.Courses, c)
	if err := s.save(cat); err != nil {
		return err
	}
	s.config.Logger.Info("course appended", "id", c.ID, "title", c.Title)
	return nil
}

// FindCourse implements catalog.Store.
func (s *Store) FindCourse(ctx context.Context, id string) (course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, err := s.load()
	if err != nil {
		return course.Course{}, err
	}
	for _, c := range cat.Courses {
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
	cat, err := s.load()
	if err != nil {
		return course.AuthorProfile{}, false, err
	}
	if cat.AuthorName == "" {
		return course.AuthorProfile{}, false, nil
	}
	return course.AuthorProfile{Name: cat.AuthorName}, true, nil
}

// SaveAuthorProfile implements catalog.Store. Read-modify-write.
func (s *Store) SaveAuthorProfile(ctx context.Context, profile course.AuthorProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, err := s.load()
	if err != nil {
		return err
	}
	cat.AuthorName = profile.Name
	return s.save(cat)
}

// IncrementViews implements catalog.Store. Read-modify-write; when the id is
// absent nothing is written.
func (s *Store) IncrementViews(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, err := s.load()
	if err != nil {
		return err
	}
	for i := range cat.Courses {
		if cat.Courses[i].ID == id {
			cat.Courses[i].Views++
			return s.save(cat)
		}
	}
	return fmt.Errorf("%w: %s", catalog.ErrCourseNotFound, id)
}

var _ catalog.Store = (*Store)(nil)
