package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/daykey"
	"tableflip.dev/daybook/pkg/store"
)

func fixedClock(t time.Time) daykey.Clock {
	return func() time.Time { return t }
}

func newService(seed map[string]string) (*Service, *store.Memory) {
	mem := store.NewMemory(seed)
	return &Service{
		Persistence: mem,
		Clock:       fixedClock(time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)),
	}, mem
}

func TestServiceTodayKey(t *testing.T) {
	svc, _ := newService(nil)
	if got := svc.Today().String(); got != "2024-2-15" {
		t.Fatalf("expected 2024-2-15, got %q", got)
	}
}

func TestServiceSaveLoadRoundTrip(t *testing.T) {
	svc, _ := newService(nil)
	key := svc.Today()
	for _, text := range []string{"hello", "", "a\n\nb", "\n\n\n\nleading newlines stay"} {
		if err := svc.Save(key, text); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := svc.Load(key)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got != text {
			t.Fatalf("expected %q, got %q", text, got)
		}
	}
}

func TestServiceSaveWrapsError(t *testing.T) {
	svc, mem := newService(nil)
	mem.WriteErr = errors.New("quota exceeded")
	err := svc.Save(svc.Today(), "hello")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if !errors.Is(err, mem.WriteErr) {
		t.Fatalf("expected errors.Is to match the store error")
	}
}

func TestServiceClearRemovesNote(t *testing.T) {
	svc, mem := newService(map[string]string{"2024-2-15": "hello"})
	if err := svc.Clear(svc.Today()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mem.Has("2024-2-15") {
		t.Fatalf("expected note to be removed")
	}
	if _, err := svc.Load(svc.Today()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestServiceDaysNewestFirstWithWindow(t *testing.T) {
	svc, _ := newService(map[string]string{
		"2024-2-15": "today\nsecond line",
		"2024-2-10": "\n\n   earlier note   ",
		"2024-1-1":  "old",
		"junk":      "ignored",
	})

	days, err := svc.Days(context.Background(), 0)
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].ID != "2024-2-15" || days[2].ID != "2024-1-1" {
		t.Fatalf("expected newest first, got %v, %v", days[0].ID, days[2].ID)
	}
	if days[0].Lines != 2 || days[0].Preview != "today" {
		t.Fatalf("unexpected summary %+v", days[0])
	}
	if days[1].Preview != "earlier note" || days[1].Date != "2024-03-10" {
		t.Fatalf("unexpected summary %+v", days[1])
	}

	recent, err := svc.Days(context.Background(), 7*24*time.Hour)
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 days within a week, got %d", len(recent))
	}
}

func TestServiceDaysWindowAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("zoneinfo not available: %v", err)
	}
	local := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = local })

	// Clocks fell back on 2024-11-03, so that day lasted 25 hours.
	svc := &Service{
		Persistence: store.NewMemory(map[string]string{
			"2024-10-3": "two days ago",
			"2024-10-2": "too old",
		}),
		Clock: fixedClock(time.Date(2024, time.November, 5, 8, 0, 0, 0, loc)),
	}
	days, err := svc.Days(context.Background(), 2*24*time.Hour)
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	if len(days) != 1 || days[0].ID != "2024-10-3" {
		t.Fatalf("expected only the note from two days ago, got %+v", days)
	}
}

func TestServiceWithoutPersistence(t *testing.T) {
	svc := &Service{}
	if err := svc.Save(daykey.Key{Year: 2024, Month: 2, Day: 15}, "x"); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestTruncatePreview(t *testing.T) {
	long := strings.Repeat("é", 80)
	got := truncate(long, 10)
	if got != strings.Repeat("é", 9)+"…" {
		t.Fatalf("unexpected truncation %q", got)
	}
}
