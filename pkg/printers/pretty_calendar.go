package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints one month grid per month touched by days, oldest first.
// Days with a note are bold; today is underlined.
func (pp *PrettyPrint) Calendar(today time.Time, days ...app.Day) {
	if len(days) == 0 {
		pp.Month(today, today, nil)
		return
	}
	written := make(map[time.Time][]int)
	var months []time.Time
	for _, d := range days {
		t := d.Key.Time()
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
		if _, ok := written[first]; !ok {
			written[first] = make([]int, DaysIn(first))
			months = append(months, first)
		}
		written[first][t.Day()-1]++
	}
	for i := len(months) - 1; i >= 0; i-- {
		pp.Month(months[i], today, written[months[i]])
	}
}

// Month prints the grid for the month containing then. count holds one slot
// per day of the month; non-zero slots are highlighted.
func (pp *PrettyPrint) Month(then, today time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	now := color.New(color.Underline)

	for i := 0; i < DaysIn(then); i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if today.Year() == then.Year() && today.Month() == then.Month() && today.Day() == i+1 {
			printer = now
			if i < len(count) && count[i] > 0 {
				printer = color.New(color.Underline, color.Bold)
			}
		}
		_, _ = printer.Fprintf(out, "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
