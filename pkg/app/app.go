package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"tableflip.dev/daybook/pkg/daykey"
	"tableflip.dev/daybook/pkg/store"
)

// Service provides the daily note operations shared by the editor and the CLI.
type Service struct {
	Persistence store.Persistence
	Clock       daykey.Clock
}

// ErrNoPersistence is returned when the service has no store configured.
var ErrNoPersistence = errors.New("app: no persistence configured")

const previewRunes = 60

// Day summarises one stored note.
type Day struct {
	Key     daykey.Key `json:"-"`
	Date    string     `json:"date"`
	ID      string     `json:"key"`
	Bytes   int        `json:"bytes"`
	Lines   int        `json:"lines"`
	Preview string     `json:"preview"`
}

// Today returns the key for the current local date.
func (s *Service) Today() daykey.Key {
	return daykey.Today(s.Clock)
}

// Load reads the note for key. store.ErrNotFound is returned when absent.
func (s *Service) Load(key daykey.Key) (string, error) {
	if s.Persistence == nil {
		return "", ErrNoPersistence
	}
	return s.Persistence.Read(key.String())
}

// Save writes text verbatim under key.
func (s *Service) Save(key daykey.Key, text string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Write(key.String(), text); err != nil {
		return fmt.Errorf("app: save %s: %w", key, err)
	}
	return nil
}

// Clear removes the note for key. Clearing a missing note is not an error.
func (s *Service) Clear(key daykey.Key) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Erase(key.String()); err != nil {
		return fmt.Errorf("app: clear %s: %w", key, err)
	}
	return nil
}

// Days lists stored notes newest first. A positive window limits the list to
// days no older than today minus window, counted in whole calendar days.
func (s *Service) Days(ctx context.Context, window time.Duration) ([]Day, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	var cutoff time.Time
	if window > 0 {
		cutoff = s.Today().Time().AddDate(0, 0, -int(window/(24*time.Hour)))
	}

	days := make([]Day, 0)
	for _, raw := range s.Persistence.Keys(ctx) {
		key, err := daykey.Parse(raw)
		if err != nil {
			continue
		}
		if !cutoff.IsZero() && key.Time().Before(cutoff) {
			continue
		}
		text, err := s.Persistence.Read(raw)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("app: read %s: %w", raw, err)
		}
		days = append(days, summarize(key, text))
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[j].Key.Less(days[i].Key)
	})
	return days, nil
}

// Watch subscribes to changes of the note for key.
func (s *Service) Watch(ctx context.Context, key daykey.Key) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx, key.String())
}

func summarize(key daykey.Key, text string) Day {
	d := Day{Key: key, Date: key.ISO(), ID: key.String(), Bytes: len(text)}
	if text != "" {
		d.Lines = strings.Count(text, "\n") + 1
	}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			d.Preview = truncate(line, previewRunes)
			break
		}
	}
	return d
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
