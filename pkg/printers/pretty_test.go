package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/daykey"
)

func init() {
	color.NoColor = true
}

func TestNotePlaceholderWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Note("")
	if !strings.Contains(buf.String(), "nothing written") {
		t.Fatalf("expected placeholder, got %q", buf.String())
	}
}

func TestNoteEndsWithBlankLine(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Note("dear diary")
	if buf.String() != "dear diary\n\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestDaysTable(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Days(app.Day{Date: "2024-03-15", ID: "2024-2-15", Lines: 3, Preview: "hello"})
	out := buf.String()
	for _, want := range []string{"Date", "2024-03-15", "2024-2-15", "hello"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestCalendarListsMonthsOldestFirst(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Calendar(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local),
		app.Day{Key: daykey.Key{Year: 2024, Month: 2, Day: 15}},
		app.Day{Key: daykey.Key{Year: 2024, Month: 1, Day: 3}},
	)
	out := buf.String()
	feb, mar := strings.Index(out, "February 2024"), strings.Index(out, "March 2024")
	if feb < 0 || mar < 0 || feb > mar {
		t.Fatalf("expected February before March in %q", out)
	}
	if !strings.Contains(out, "31") {
		t.Fatalf("expected March to have 31 days")
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local)); got != 29 {
		t.Fatalf("expected 29 days in February 2024, got %d", got)
	}
}
