// Package search decides whether a Korean search query matches a piece of
// text. A query may be a plain substring, a run of initial consonants
// ("ㅊㅅㄱ" for 창세기) or a word whose last syllable is still being typed
// ("차" for 창).
package search

import (
	"strings"

	"hanfind/internal/hangul"
)

// Matches reports whether query matches target. Surrounding whitespace in the
// query is ignored and an empty query matches everything.
func Matches(query, target string) bool {
	return match(query, target, ExtractInitialConsonants, false)
}

// ExtractInitialConsonants reduces text to its initial-consonant skeleton.
// Syllable blocks become their initial consonant, standalone initials are
// kept and every other character is dropped.
func ExtractInitialConsonants(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if hangul.IsInitial(r) {
			b.WriteRune(r)
			continue
		}
		if initial, ok := hangul.InitialOf(r); ok {
			b.WriteRune(initial)
		}
	}
	return b.String()
}

func match(query, target string, skeleton func(string) string, strict bool) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	if strings.Contains(target, query) {
		return true
	}
	if isInitialsOnly(query) {
		return strings.Contains(skeleton(target), query)
	}
	return matchPartialRun([]rune(query), []rune(target), strict)
}

func isInitialsOnly(s string) bool {
	for _, r := range s {
		if !hangul.IsInitial(r) {
			return false
		}
	}
	return true
}

// matchPartialRun looks for a window of target where every query rune but the
// last is equal and the last one matches leniently.
func matchPartialRun(q, t []rune, strict bool) bool {
	n := len(q)
	last := n - 1
	for start := 0; start+n <= len(t); start++ {
		ok := true
		for i := 0; i < last; i++ {
			if q[i] != t[start+i] {
				ok = false
				break
			}
		}
		if ok && matchesSyllable(q[last], t[start+last], true, strict) {
			return true
		}
	}
	return false
}

func matchesSyllable(q, t rune, allowPartial, strict bool) bool {
	if q == t {
		return true
	}
	if hangul.IsInitial(q) {
		initial, ok := hangul.InitialOf(t)
		return ok && initial == q
	}
	if !allowPartial {
		return false
	}
	if strict && hangul.HasFinal(q) {
		return false
	}
	qb, qok := hangul.Bucket(q)
	tb, tok := hangul.Bucket(t)
	return qok && tok && qb == tb
}
