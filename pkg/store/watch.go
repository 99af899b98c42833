package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventNoteChanged indicates the watched note was written.
	EventNoteChanged EventType = iota

	// EventNoteRemoved indicates the watched note was erased.
	EventNoteRemoved
)

// Event is emitted by Persistence.Watch when the watched note changes.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams change events for one key until ctx is cancelled. Callers
// should drain the returned channel. The channel is closed once ctx is done or
// the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context, key string) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	target := filepath.Clean(p.pathFor(key))
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure note directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	// diskv writes through a temp file and renames into place, so the
	// directory is watched rather than the file itself.
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop if the consumer lags; the next event re-reads the note.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventNoteChanged, Key: key}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				switch {
				case evt.Op&fsnotify.Remove == fsnotify.Remove:
					throttle.Enqueue(Event{Type: EventNoteRemoved, Key: key}, send)
				case evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0:
					throttle.Enqueue(Event{Type: EventNoteChanged, Key: key}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a follower re-reads
// once per burst of filesystem activity instead of on every single write.
// The last event type wins.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending = &ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush sends under the lock so Stop cannot return while a send is in
// flight. send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	if pending != nil && !t.stopped {
		send(*pending)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
