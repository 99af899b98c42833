package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseWindowEmptyMeansAll(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 0 || label != "all" {
		t.Fatalf("expected no window, got %v %q", dur, label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1y2mo1w3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (365 + 60 + 7 + 3) * day
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1y2mo1w3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowNormalizesLabel(t *testing.T) {
	_, label, err := ParseWindow("14 days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "2w" {
		t.Fatalf("expected 2w, got %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseWindowTooLarge(t *testing.T) {
	for _, in := range []string{"99999999y", "200y200y", "9223372036854775807d"} {
		d, _, err := ParseWindow(in)
		if err == nil {
			t.Fatalf("expected error for %q, got %s", in, d)
		}
		if !strings.Contains(err.Error(), "too large") {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
	}
	if _, _, err := ParseWindow("200y"); err != nil {
		t.Fatalf("expected 200y to fit, got %v", err)
	}
}

func TestFormatWindowDropsPartialDays(t *testing.T) {
	if got := FormatWindow(36 * time.Hour); got != "1d" {
		t.Fatalf("expected 1d, got %s", got)
	}
}
