package ui

import (
	"time"

	"tableflip.dev/daybook/pkg/daykey"
	"tableflip.dev/daybook/pkg/store"
)

const demoNote = `Woke before the alarm. Coffee, then the long walk by the river.

Things I want to remember:
- the heron standing perfectly still
- how quiet the town is at six

`

// StaticDemo returns an in-memory store holding a note for today and the
// two days before it.
func StaticDemo(clock daykey.Clock) *store.Memory {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	return store.NewMemory(map[string]string{
		daykey.For(now).String():                   demoNote,
		daykey.For(now.AddDate(0, 0, -1)).String(): "Rain all day. Read on the porch.\n",
		daykey.For(now.AddDate(0, 0, -2)).String(): "First entry.\n",
	})
}
