package store

import (
	"context"
	"sort"
	"sync"

	"tableflip.dev/daybook/pkg/daykey"
)

// Memory is an in-process Persistence. The editor falls back to it when the
// data directory is unusable, and tests use it with injected failures.
type Memory struct {
	mu    sync.Mutex
	notes map[string]string

	// ReadErr, WriteErr and EraseErr, when set, are returned by the
	// corresponding operation instead of touching the map.
	ReadErr  error
	WriteErr error
	EraseErr error

	writes int
}

// NewMemory returns an empty Memory seeded with the given key/value pairs.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{notes: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.notes[k] = v
	}
	return m
}

func (m *Memory) Read(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	v, ok := m.notes[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Write(key, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.notes[key] = text
	m.writes++
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EraseErr != nil {
		return m.EraseErr
	}
	delete(m.notes, key)
	return nil
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.notes[key]
	return ok
}

func (m *Memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	parsed := make([]daykey.Key, 0, len(m.notes))
	for key := range m.notes {
		if k, err := daykey.Parse(key); err == nil {
			parsed = append(parsed, k)
		}
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Less(parsed[j]) })
	keys := make([]string, len(parsed))
	for i, k := range parsed {
		keys[i] = k.String()
	}
	return keys
}

// Watch returns a channel that closes with ctx; Memory has no external writers.
func (m *Memory) Watch(ctx context.Context, _ string) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// Writes counts successful Write calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
