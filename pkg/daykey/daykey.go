// Package daykey names daily notes. A key is "{year}-{monthIndex}-{day}" with
// a zero-based month and no padding, so 15 March 2024 is "2024-2-15".
package daykey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidKey is returned when a string is not a well formed day key.
var ErrInvalidKey = errors.New("daykey: invalid key")

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// Key identifies one calendar day.
type Key struct {
	Year  int
	Month int // zero-based
	Day   int
}

// For returns the key for t's calendar date in t's location.
func For(t time.Time) Key {
	return Key{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

// Today returns the key for the clock's current local date.
func Today(clock Clock) Key {
	if clock == nil {
		clock = time.Now
	}
	return For(clock().Local())
}

// Parse reads a key in "Y-M-D" form with a zero-based month.
func Parse(s string) (Key, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" || (len(p) > 1 && p[0] == '0') {
			return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
		nums[i] = n
	}
	k := Key{Year: nums[0], Month: nums[1], Day: nums[2]}
	if k.Month > 11 || k.Day < 1 || k.Day > daysIn(k.Year, k.Month) {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return k, nil
}

// String renders the storage form of the key.
func (k Key) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Year, k.Month, k.Day)
}

// Time returns local midnight of the key's date.
func (k Key) Time() time.Time {
	return time.Date(k.Year, time.Month(k.Month+1), k.Day, 0, 0, 0, 0, time.Local)
}

// Label is the header form, e.g. "March 15".
func (k Key) Label() string {
	return k.Time().Format("January 2")
}

// ISO renders the date as 2006-01-02 for humans.
func (k Key) ISO() string {
	return k.Time().Format("2006-01-02")
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// Less orders keys chronologically.
func (k Key) Less(o Key) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Month != o.Month {
		return k.Month < o.Month
	}
	return k.Day < o.Day
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}
