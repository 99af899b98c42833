// Package list prints the days that have a stored note.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/timeutil"
)

type List struct {
	Service *app.Service
	// Window limits the listing to recent days; zero lists everything.
	Window   time.Duration
	JSON     bool
	Calendar bool
	Out      io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list, no service")
	}
	days, err := l.Service.Days(ctx, l.Window)
	if err != nil {
		return err
	}

	out := l.Out
	if out == nil {
		out = color.Output
	}
	if l.JSON {
		b, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.TitleWithCount("Days ("+timeutil.FormatWindow(l.Window)+")", len(days))
	if l.Calendar {
		pp.Calendar(l.Service.Today().Time(), days...)
		return nil
	}
	pp.Days(days...)
	return nil
}
