package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaldes/coursehub/pkg/adapters/memory"
	"github.com/avaldes/coursehub/pkg/catalog"
	"github.com/avaldes/coursehub/pkg/course"
)

func seedCourse(views int) course.Course {
	return course.Course{
		ID:            "go-basics-001",
		Title:         "Go Basics",
		Description:   "An introduction.",
		Content:       []course.ContentElement{{ID: "p1", Type: course.TypeParagraph, Payload: "Go is simple."}},
		CreatedAt:     time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Author:        "Ana",
		EstimatedTime: 1,
		Views:         views,
	}
}

func TestTracker_RecordView(t *testing.T) {
	store := memory.NewStore([]course.Course{seedCourse(5)})
	tracker := catalog.NewTracker(store, nil)

	viewed, err := tracker.RecordView(context.Background(), "go-basics-001")
	require.NoError(t, err)
	assert.Equal(t, 6, viewed.Views, "exactly one view per load")

	// Everything except the counter stays frozen.
	want := seedCourse(6)
	assert.Equal(t, want.Title, viewed.Title)
	assert.Equal(t, want.Description, viewed.Description)
	assert.Equal(t, want.Author, viewed.Author)
	assert.Equal(t, want.EstimatedTime, viewed.EstimatedTime)
	assert.True(t, want.CreatedAt.Equal(viewed.CreatedAt))
	assert.Equal(t, want.Content, viewed.Content)
}

func TestTracker_RepeatedLoadsCount(t *testing.T) {
	store := memory.NewStore([]course.Course{seedCourse(0)})
	tracker := catalog.NewTracker(store, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := tracker.RecordView(ctx, "go-basics-001")
		require.NoError(t, err)
	}

	stored, err := store.FindCourse(ctx, "go-basics-001")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Views, "views are not deduplicated per viewer")
}

func TestTracker_CourseNotFound(t *testing.T) {
	store := memory.NewStore([]course.Course{seedCourse(5)})
	tracker := catalog.NewTracker(store, nil)

	_, err := tracker.RecordView(context.Background(), "missing")
	require.ErrorIs(t, err, catalog.ErrCourseNotFound)

	stored, err := store.FindCourse(context.Background(), "go-basics-001")
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Views, "a failed lookup must not write")
}
