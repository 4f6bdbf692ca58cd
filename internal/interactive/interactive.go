package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/eiannone/keyboard"

	"hanfind/internal/catalog"
	"hanfind/internal/index"
)

// ErrAborted is returned when the user leaves without choosing an entry.
var ErrAborted = errors.New("search aborted")

type Options struct {
	Layout Layout
	Limit  int
}

// Run reads keys from the terminal until Enter, Esc or Ctrl-C. On Enter it
// returns the first matching candidate.
func Run(ctx context.Context, ix *index.Index, w io.Writer, opts Options) (catalog.Candidate, error) {
	if err := keyboard.Open(); err != nil {
		return catalog.Candidate{}, fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	keys, err := keyboard.GetKeys(16)
	if err != nil {
		return catalog.Candidate{}, fmt.Errorf("read keyboard: %w", err)
	}

	session := NewSession(opts.Layout)
	results, err := ix.Filter(ctx, "")
	if err != nil {
		return catalog.Candidate{}, err
	}
	Render(w, session, results, opts.Limit)

	for {
		select {
		case <-ctx.Done():
			return catalog.Candidate{}, ctx.Err()
		case ev, ok := <-keys:
			if !ok {
				return catalog.Candidate{}, ErrAborted
			}
			if ev.Err != nil {
				return catalog.Candidate{}, fmt.Errorf("read keyboard: %w", ev.Err)
			}
			switch ev.Key {
			case keyboard.KeyEsc, keyboard.KeyCtrlC, keyboard.KeyCtrlD:
				return catalog.Candidate{}, ErrAborted
			case keyboard.KeyEnter:
				if len(results) == 0 {
					return catalog.Candidate{}, ErrAborted
				}
				return results[0], nil
			case keyboard.KeyBackspace, keyboard.KeyBackspace2:
				session.Backspace()
			case keyboard.KeyCtrlU:
				session.Clear()
			case keyboard.KeyTab:
				session.ToggleLayout()
			case keyboard.KeySpace:
				session.Space()
			default:
				if ev.Rune == 0 {
					continue
				}
				session.Type(ev.Rune)
			}
		}

		results, err = ix.Filter(ctx, session.Query())
		if err != nil {
			return catalog.Candidate{}, err
		}
		slog.Debug("live filter", "query", session.Query(), "hits", len(results))
		Render(w, session, results, opts.Limit)
	}
}

// Render redraws the prompt and up to limit results. A limit below one shows
// every result.
func Render(w io.Writer, s *Session, results []catalog.Candidate, limit int) {
	fmt.Fprint(w, "\033[H\033[2J")
	fmt.Fprintf(w, "[%s] > %s\r\n", s.Layout(), s.Query())
	shown := results
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, c := range shown {
		fmt.Fprintf(w, "  %s\r\n", c.Label)
	}
	if hidden := len(results) - len(shown); hidden > 0 {
		fmt.Fprintf(w, "  ... and %d more\r\n", hidden)
	}
}
