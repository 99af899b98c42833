// Package timeutil parses the day-granular windows accepted by --since.
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":      day,
		"day":    day,
		"days":   day,
		"w":      7 * day,
		"wk":     7 * day,
		"wks":    7 * day,
		"week":   7 * day,
		"weeks":  7 * day,
		"mo":     30 * day,
		"month":  30 * day,
		"months": 30 * day,
		"y":      365 * day,
		"yr":     365 * day,
		"year":   365 * day,
		"years":  365 * day,
	}
)

// ParseWindow parses a window such as "3d", "2w" or "1y2mo" and returns the
// duration along with a canonical label. An empty input means no window and
// yields zero with the label "all".
func ParseWindow(input string) (time.Duration, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" || remaining == "all" {
		return 0, "all", nil
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		if value > int64(math.MaxInt64-total)/int64(base) {
			return 0, "", fmt.Errorf("window %q is too large", strings.TrimSpace(input))
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be at least one day")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a window using year/month/week/day tokens. Partial
// days are dropped.
func FormatWindow(d time.Duration) string {
	if d < day {
		return "all"
	}

	units := []struct {
		label string
		value time.Duration
	}{
		{"y", 365 * day},
		{"mo", 30 * day},
		{"w", 7 * day},
		{"d", day},
	}

	var b strings.Builder
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		fmt.Fprintf(&b, "%d%s", count, u.label)
	}
	return b.String()
}
