// Package index filters a candidate list against a search query. It is the
// predicate loop a search box re-runs on every keystroke.
package index

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"hanfind/internal/catalog"
	"hanfind/pkg/search"
)

// chunkSize is the number of candidates one worker evaluates at a time.
// Lists shorter than this are filtered inline.
const chunkSize = 256

type Index struct {
	matcher    *search.Matcher
	candidates []catalog.Candidate
	workers    int
	log        *slog.Logger
}

type Option func(*Index)

// WithWorkers bounds the number of goroutines used by Filter. Values below
// one select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(ix *Index) {
		if n > 0 {
			ix.workers = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(ix *Index) {
		if l != nil {
			ix.log = l
		}
	}
}

func New(m *search.Matcher, candidates []catalog.Candidate, opts ...Option) *Index {
	ix := &Index{
		matcher:    m,
		candidates: candidates,
		workers:    runtime.GOMAXPROCS(0),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

func (ix *Index) Len() int {
	return len(ix.candidates)
}

// Filter returns the candidates matching query in catalog order.
func (ix *Index) Filter(ctx context.Context, query string) ([]catalog.Candidate, error) {
	hits := make([]bool, len(ix.candidates))

	if len(ix.candidates) <= chunkSize || ix.workers == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ix.evaluate(query, 0, len(ix.candidates), hits)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(ix.workers)
		for start := 0; start < len(ix.candidates); start += chunkSize {
			end := min(start+chunkSize, len(ix.candidates))
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				ix.evaluate(query, start, end, hits)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	var out []catalog.Candidate
	for i, hit := range hits {
		if hit {
			out = append(out, ix.candidates[i])
		}
	}
	ix.log.Debug("filtered candidates", "query", query, "candidates", len(ix.candidates), "hits", len(out))
	return out, nil
}

func (ix *Index) evaluate(query string, start, end int, hits []bool) {
	for i := start; i < end; i++ {
		for _, key := range ix.candidates[i].Keys() {
			if ix.matcher.Match(query, key) {
				hits[i] = true
				break
			}
		}
	}
}
