package fs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaldes/coursehub/pkg/catalog"
)

// waitForEvent drains events until one matches the wanted course id, so the
// tests stay robust against duplicate filesystem notifications.
func waitForEvent(t *testing.T, ctx context.Context, events <-chan catalog.Event, courseID string) catalog.Event {
	t.Helper()
	for {
		select {
		case e, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before the expected event")
			}
			if e.CourseID == courseID {
				return e
			}
		case <-ctx.Done():
			t.Fatalf("timed out waiting for event on %q", courseID)
		}
	}
}

func TestWatch_ExternalPublishAndViews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writer := NewStore(Config{Path: path})
	reader := NewStore(Config{Path: path})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	events, err := reader.Watch(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, events)

	// Wait a bit to ensure watcher is ready (naive)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, writer.AppendCourse(ctx, testCourse("go-basics-001", "Go Basics")))
	event := waitForEvent(t, ctx, events, "go-basics-001")
	assert.Equal(t, catalog.EventPublish, event.Type)

	require.NoError(t, writer.IncrementViews(ctx, "go-basics-001"))
	event = waitForEvent(t, ctx, events, "go-basics-001")
	assert.Equal(t, catalog.EventChange, event.Type)
}

func TestWatch_PatternFiltersCourseIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writer := NewStore(Config{Path: path})
	reader := NewStore(Config{Path: path})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	events, err := reader.Watch(ctx, "css-*")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, writer.AppendCourse(ctx, testCourse("go-basics-001", "Go Basics")))
	require.NoError(t, writer.AppendCourse(ctx, testCourse("css-flexbox-001", "CSS Flexbox")))

	event := waitForEvent(t, ctx, events, "css-flexbox-001")
	assert.Equal(t, catalog.EventPublish, event.Type)
}

func TestWatch_RejectsInvalidPattern(t *testing.T) {
	store := NewStore(Config{Path: filepath.Join(t.TempDir(), "catalog.json")})
	_, err := store.Watch(context.Background(), "[")
	assert.Error(t, err)
}
