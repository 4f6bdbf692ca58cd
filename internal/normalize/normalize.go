// Package normalize prepares query and candidate text before matching so that
// jamo typed in other Unicode forms still line up with the 19 initial
// consonants and the precomposed syllable range.
package normalize

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer transforms text before it reaches the matcher.
type Normalizer func(string) string

const (
	ModeNone = "none"
	ModeNFC  = "nfc"
	ModeFold = "fold"
)

// Modes lists the accepted mode names.
func Modes() []string {
	return []string{ModeNone, ModeNFC, ModeFold}
}

// For returns the normalizer registered under mode.
func For(mode string) (Normalizer, error) {
	switch mode {
	case ModeNone, "":
		return None, nil
	case ModeNFC:
		return NFC, nil
	case ModeFold:
		return Fold, nil
	}
	return nil, fmt.Errorf("unknown normalize mode %q", mode)
}

// None returns s unchanged.
func None(s string) string {
	return s
}

// NFC composes conjoining jamo sequences into syllable blocks.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Fold applies NFC, folds full- and half-width forms, and maps standalone
// conjoining initials to compatibility jamo.
func Fold(s string) string {
	// transform.Chain keeps state, so it is built per call.
	t := transform.Chain(norm.NFC, width.Fold, runes.Map(compatInitial))
	out, _, err := transform.String(t, s)
	if err != nil {
		slog.Warn("unicode normalization error", "err", err)
		return s
	}
	return out
}

// conjoiningInitials is indexed by r-0x1100 for the choseong block
// U+1100..U+1112, which follows the same order as the compatibility table.
var conjoiningInitials = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}

func compatInitial(r rune) rune {
	if r >= 0x1100 && r <= 0x1112 {
		return conjoiningInitials[r-0x1100]
	}
	return r
}
