package ui

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/daybook/pkg/app"
)

func TestModelRestoresDemoNote(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.March, 15, 7, 0, 0, 0, time.Local) }
	u := &UI{
		Service: &app.Service{Persistence: StaticDemo(clock), Clock: clock},
		Log:     zerolog.Nop(),
	}
	m, err := u.Model()
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	if m.Key().String() != "2024-2-15" {
		t.Fatalf("unexpected key %s", m.Key())
	}
	if m.Text() != demoNote {
		t.Fatalf("expected demo note restored, got %q", m.Text())
	}
}

func TestModelWithoutService(t *testing.T) {
	if _, err := (&UI{}).Model(); err == nil {
		t.Fatalf("expected error without service")
	}
}

func TestStaticDemoSpansThreeDays(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.March, 1, 7, 0, 0, 0, time.Local) }
	mem := StaticDemo(clock)
	for _, key := range []string{"2024-2-1", "2024-1-29", "2024-1-28"} {
		if !mem.Has(key) {
			t.Fatalf("expected demo note for %s", key)
		}
	}
}
