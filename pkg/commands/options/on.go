// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/daykey"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// DayOptions select the day a command works on.
type DayOptions struct {
	OnString  string
	KeyString string
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28" or --on=yesterday.`)
	cmd.Flags().StringVar(&o.KeyString, "key", "",
		`Specify a raw storage key (zero-based month), example: --key="2020-1-28".`)
}

// Day resolves the flags against clock. No flags means today.
func (o *DayOptions) Day(clock daykey.Clock) (daykey.Key, error) {
	if clock == nil {
		clock = time.Now
	}
	if o.OnString != "" && o.KeyString != "" {
		return daykey.Key{}, errors.New("--on and --key are mutually exclusive")
	}
	if o.KeyString != "" {
		return daykey.Parse(o.KeyString)
	}

	now := clock().Local()
	switch strings.ToLower(strings.TrimSpace(o.OnString)) {
	case "", "today":
		return daykey.For(now), nil
	case "yesterday":
		return daykey.For(now.AddDate(0, 0, -1)), nil
	}

	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err == nil {
		return daykey.For(t), nil
	}
	t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
	if err != nil {
		return daykey.Key{}, fmt.Errorf("invalid date %q", o.OnString)
	}
	// Let the year be the same, unless that lands in the future: a journal
	// only looks back.
	t = t.AddDate(now.Year(), 0, 0)
	if t.After(now) {
		t = t.AddDate(-1, 0, 0)
	}
	return daykey.For(t), nil
}
