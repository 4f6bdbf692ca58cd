package index

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanfind/internal/catalog"
	"hanfind/pkg/search"
)

func newBooksIndex(t *testing.T, opts ...Option) *Index {
	t.Helper()
	books, err := catalog.Builtin()
	require.NoError(t, err)
	m, err := search.NewMatcher(search.Options{})
	require.NoError(t, err)
	return New(m, books, opts...)
}

func labels(cands []catalog.Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Label)
	}
	return out
}

func TestFilterBooks(t *testing.T) {
	ix := newBooksIndex(t)
	require.Equal(t, 66, ix.Len())

	cases := []struct {
		query string
		want  []string
	}{
		{"ㅊㅅ", []string{"창세기"}},
		{"차", []string{"창세기"}},
		{"요한", []string{"요한복음", "요한일서", "요한이서", "요한삼서", "요한계시록"}},
		{"ㄱㄹㄷ", []string{"고린도전서", "고린도후서", "갈라디아서"}},
		{"Gen", []string{"창세기"}},
		{"삼상", []string{"사무엘상"}},
		{"ㅋㅋ", nil},
	}
	for _, tc := range cases {
		got, err := ix.Filter(context.Background(), tc.query)
		require.NoError(t, err)
		if tc.want == nil {
			assert.Empty(t, got, tc.query)
			continue
		}
		assert.Equal(t, tc.want, labels(got), tc.query)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	ix := newBooksIndex(t)
	got, err := ix.Filter(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, got, 66)
}

func TestFilterParallelKeepsOrder(t *testing.T) {
	var cands []catalog.Candidate
	var want []string
	for i := 0; i < 5000; i++ {
		label := fmt.Sprintf("항목%04d", i)
		if i%7 == 0 {
			label = fmt.Sprintf("시편%04d", i)
			want = append(want, label)
		}
		cands = append(cands, catalog.Candidate{Label: label})
	}
	m, err := search.NewMatcher(search.Options{})
	require.NoError(t, err)
	ix := New(m, cands, WithWorkers(4))

	got, err := ix.Filter(context.Background(), "ㅅㅍ")
	require.NoError(t, err)
	assert.Equal(t, want, labels(got))
}

func TestFilterCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ix := newBooksIndex(t)
	_, err := ix.Filter(ctx, "ㅊ")
	assert.ErrorIs(t, err, context.Canceled)
}
