// Package erase removes a day's note after confirmation.
package erase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/daykey"
)

// ErrDeclined is returned when the user does not confirm.
var ErrDeclined = errors.New("clear declined")

type Erase struct {
	Service *app.Service
	Day     daykey.Key
	// Yes skips the confirmation prompt.
	Yes bool
	// Confirm asks the user; it defaults to a promptui confirmation.
	Confirm func(label string) (bool, error)
	Out     io.Writer
}

func (c *Erase) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not clear, no service")
	}
	if c.Day.IsZero() {
		c.Day = c.Service.Today()
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}

	if !c.Yes {
		confirm := c.Confirm
		if confirm == nil {
			confirm = promptConfirm
		}
		ok, err := confirm(fmt.Sprintf("Delete the note for %s (%s)", c.Day.Label(), c.Day.ISO()))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(out, "Nothing deleted.")
			return ErrDeclined
		}
	}

	if err := c.Service.Clear(c.Day); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(out, "Deleted %s.\n", c.Day)
	return nil
}

func promptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
