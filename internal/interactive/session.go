// Package interactive runs a live search in the terminal, re-filtering the
// catalog after every key press.
package interactive

import (
	"fmt"

	"hanfind/internal/hangul"
)

type Layout int

const (
	// LayoutDirect takes runes as delivered by the terminal, which is what an
	// OS-level Korean IME produces.
	LayoutDirect Layout = iota
	// LayoutDubeolsik turns Latin keys into jamo and composes them locally.
	LayoutDubeolsik
)

func (l Layout) String() string {
	if l == LayoutDubeolsik {
		return "dubeolsik"
	}
	return "direct"
}

func ParseLayout(name string) (Layout, error) {
	switch name {
	case "direct", "":
		return LayoutDirect, nil
	case "dubeolsik", "2set":
		return LayoutDubeolsik, nil
	}
	return LayoutDirect, fmt.Errorf("unknown layout %q", name)
}

// Session is the query being typed.
type Session struct {
	layout    Layout
	committed []rune
	composer  *hangul.Composer
}

func NewSession(layout Layout) *Session {
	return &Session{layout: layout, composer: hangul.NewComposer()}
}

func (s *Session) Layout() Layout { return s.layout }

// Type handles one printable key.
func (s *Session) Type(r rune) {
	if s.layout == LayoutDubeolsik {
		if j, ok := hangul.DubeolsikJamo(r); ok {
			s.commit(s.composer.Feed(j))
			return
		}
	}
	s.commit(s.composer.Flush())
	s.committed = append(s.committed, r)
}

func (s *Session) Space() {
	s.Type(' ')
}

// Backspace edits the syllable being composed first, then committed text.
func (s *Session) Backspace() {
	if _, ok := s.composer.Backspace(); ok {
		return
	}
	if n := len(s.committed); n > 0 {
		s.committed = s.committed[:n-1]
	}
}

// ToggleLayout switches between direct and dubeolsik input, committing any
// pending syllable.
func (s *Session) ToggleLayout() {
	s.commit(s.composer.Flush())
	if s.layout == LayoutDirect {
		s.layout = LayoutDubeolsik
	} else {
		s.layout = LayoutDirect
	}
}

// Clear drops the whole query.
func (s *Session) Clear() {
	s.composer.Flush()
	s.committed = s.committed[:0]
}

// Query is the committed text followed by the syllable under construction.
func (s *Session) Query() string {
	return string(s.committed) + s.composer.Preedit()
}

func (s *Session) commit(text string) {
	s.committed = append(s.committed, []rune(text)...)
}
