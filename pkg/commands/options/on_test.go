package options

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/daykey"
)

func march15() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
}

func TestDayResolvesFormats(t *testing.T) {
	cases := map[string]DayOptions{
		"2024-2-15":  {},
		"2024-2-1":   {OnString: "2024-3-1"},
		"2024-1-29":  {OnString: "2024-02-29"},
		"2024-2-14":  {OnString: "yesterday"},
		"2024-2-10":  {OnString: "3/10"},
		"2023-11-25": {OnString: "12/25"},
		"2023-4-2":   {KeyString: "2023-4-2"},
	}
	for want, o := range cases {
		o := o
		got, err := o.Day(march15)
		if err != nil {
			t.Fatalf("%+v: unexpected error %v", o, err)
		}
		if got.String() != want {
			t.Fatalf("%+v: expected %s, got %s", o, want, got)
		}
	}
}

func TestDayRejectsBadInput(t *testing.T) {
	if _, err := (&DayOptions{OnString: "someday"}).Day(march15); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
	if _, err := (&DayOptions{KeyString: "2024-12-1"}).Day(march15); !errors.Is(err, daykey.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := (&DayOptions{OnString: "3/1", KeyString: "2024-2-1"}).Day(march15); err == nil {
		t.Fatalf("expected error when both flags are set")
	}
}
