package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/avaldes/coursehub/pkg/catalog"
)

// Watch implements catalog.Watchable.
//
// It observes the catalog file for writes by any browsing or editing context
// (including this process) and emits one event per course that appeared or
// changed, matched against a doublestar pattern over course ids. The channel
// is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan catalog.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	events := make(chan catalog.Event, 16)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	// Stop the worker when the caller's context ends.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return w.Stop(stopCtx)
	})

	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store    *Store
	pattern  string
	events   chan<- catalog.Event
	watcher  *fsnotify.Watcher
	reload   chan struct{}
	debounce *debouncer
	cancel   context.CancelFunc

	// known maps course id -> last observed view count, for diffing
	// full-catalog rewrites into per-course events.
	known map[string]int
}

func newWatchWorker(store *Store, pattern string, events chan<- catalog.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("catalog-watcher"),
		store:      store,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic writes replace the catalog
	// via rename, which would silently detach a file-level watch.
	if err := watcher.Add(filepath.Dir(w.store.Path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	known, err := w.snapshot(ctx)
	if err != nil {
		_ = watcher.Close()
		return err
	}

	w.known = known
	w.watcher = watcher
	w.reload = make(chan struct{}, 1)
	w.debounce = newDebouncer(50*time.Millisecond, func() {
		select {
		case w.reload <- struct{}{}:
		default:
		}
	})
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *watchWorker) snapshot(ctx context.Context) (map[string]int, error) {
	courses, err := w.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot catalog: %w", err)
	}
	known := make(map[string]int, len(courses))
	for _, c := range courses {
		known[c.ID] = c.Views
	}
	return known, nil
}

// isCatalogEvent filters directory noise down to writes of the catalog file.
func (w *watchWorker) isCatalogEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.store.Path) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}

// diffAndEmit reloads the catalog and emits one event per new or changed
// course matching the pattern.
func (w *watchWorker) diffAndEmit(ctx context.Context) {
	courses, err := w.store.LoadAll(ctx)
	if err != nil {
		w.store.config.Logger.Error("failed to reload catalog", "error", err)
		return
	}

	now := time.Now().Unix()
	for _, c := range courses {
		views, seen := w.known[c.ID]
		w.known[c.ID] = c.Views

		var eType catalog.EventType
		switch {
		case !seen:
			eType = catalog.EventPublish
		case views != c.Views:
			eType = catalog.EventChange
		default:
			continue
		}

		if ok, _ := doublestar.Match(w.pattern, c.ID); !ok {
			continue
		}

		select {
		case w.events <- catalog.Event{Type: eType, CourseID: c.ID, Timestamp: now}:
		case <-ctx.Done():
			return
		}
	}
}

func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()
	defer w.debounce.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.isCatalogEvent(event) {
				continue
			}
			w.store.config.Logger.Debug("catalog change detected", "op", event.Op.String())
			w.debounce.trigger()

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.config.Logger.Error("fsnotify error", "error", wErr)

		case <-w.reload:
			w.diffAndEmit(ctx)
		}
	}
}

// debouncer coalesces bursts of filesystem events into a single reload.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fire    func()
	timer   *time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration, fire func()) *debouncer {
	return &debouncer{delay: delay, fire: fire}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
