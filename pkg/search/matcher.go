package search

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used when Options.CacheSize is not positive.
const DefaultCacheSize = 4096

// Options configures a Matcher.
type Options struct {
	// Normalize runs over both query and target before matching.
	Normalize func(string) string
	// StrictPartial only lets a syllable match by initial+medial when the
	// query syllable has no final consonant, so "찻" no longer finds "창".
	StrictPartial bool
	// CacheSize bounds the number of cached initial-consonant skeletons.
	CacheSize int
}

// Matcher is a configurable Matches. It is safe for concurrent use.
type Matcher struct {
	normalize func(string) string
	strict    bool
	skeletons *lru.Cache[string, string]
}

// NewMatcher builds a Matcher from opts.
func NewMatcher(opts Options) (*Matcher, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("skeleton cache: %w", err)
	}
	return &Matcher{
		normalize: opts.Normalize,
		strict:    opts.StrictPartial,
		skeletons: cache,
	}, nil
}

// Match reports whether query matches target under the matcher's options.
func (m *Matcher) Match(query, target string) bool {
	if m.normalize != nil {
		query = m.normalize(query)
		target = m.normalize(target)
	}
	return match(query, target, m.skeleton, m.strict)
}

// Initials returns the initial-consonant skeleton of text after
// normalization.
func (m *Matcher) Initials(text string) string {
	if m.normalize != nil {
		text = m.normalize(text)
	}
	return m.skeleton(text)
}

func (m *Matcher) skeleton(text string) string {
	if s, ok := m.skeletons.Get(text); ok {
		return s
	}
	s := ExtractInitialConsonants(text)
	m.skeletons.Add(text, s)
	return s
}
