// Package show prints a day's note, optionally following it as it changes.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/daykey"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

const defaultWidth = 80

type Show struct {
	Service *app.Service
	Day     daykey.Key
	// Render formats the note as markdown.
	Render bool
	// Follow re-prints the note whenever it changes until ctx is done.
	Follow bool
	Width  int
	Out    io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not show, no service")
	}
	if s.Day.IsZero() {
		s.Day = s.Service.Today()
	}
	pp := printers.PrettyPrint{Out: s.Out}

	if err := s.print(pp); err != nil {
		return err
	}
	if !s.Follow {
		return nil
	}
	return s.follow(ctx, pp)
}

func (s *Show) print(pp printers.PrettyPrint) error {
	text, err := s.Service.Load(s.Day)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	body, err := s.format(text)
	if err != nil {
		return err
	}
	pp.Title(fmt.Sprintf("%s (%s)", s.Day.Label(), s.Day.ISO()))
	pp.Note(body)
	return nil
}

func (s *Show) format(text string) (string, error) {
	if !s.Render || strings.TrimSpace(text) == "" {
		return text, nil
	}
	width := s.Width
	if width <= 0 {
		width = defaultWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("show: markdown renderer: %w", err)
	}
	out, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("show: render %s: %w", s.Day, err)
	}
	return out, nil
}

// follow reads the note on every change in one goroutine and prints it in
// another, so a slow terminal never stalls the watcher.
func (s *Show) follow(ctx context.Context, pp printers.PrettyPrint) error {
	changes, err := s.Service.Watch(ctx, s.Day)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	updates := make(chan struct{}, 1)

	g.Go(func() error {
		defer close(updates)
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}
				select {
				case updates <- struct{}{}:
				default:
				}
			}
		}
	})
	g.Go(func() error {
		for range updates {
			if err := s.print(pp); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}
