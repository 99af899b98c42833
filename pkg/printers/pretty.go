package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/app"
)

// PrettyPrint writes notes and day listings for humans.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints title followed by a faint day count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " day")
	default:
		_, _ = c.Fprintln(pp.out(), " days")
	}
}

// Note prints one note body, or a faint placeholder when it is empty.
func (pp *PrettyPrint) Note(text string) {
	if text == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " nothing written\n\n")
		return
	}
	_, _ = fmt.Fprint(pp.out(), text)
	if !strings.HasSuffix(text, "\n") {
		_, _ = fmt.Fprintln(pp.out())
	}
	_, _ = fmt.Fprintln(pp.out())
}

// Days prints a table of stored days.
func (pp *PrettyPrint) Days(days ...app.Day) {
	if len(days) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 72
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Key"), bold.Sprint("Lines"), bold.Sprint("Preview"))
	for _, d := range days {
		tbl.AddRow(d.Date, y.Sprint(d.ID), d.Lines, faint.Sprint(d.Preview))
	}
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}
