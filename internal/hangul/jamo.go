// Package hangul holds the jamo tables and the precomposed-syllable arithmetic
// shared by the matcher, the query composer and the normalizer.
package hangul

const (
	SyllableFirst rune = 0xAC00
	SyllableLast  rune = 0xD7A3

	InitialCount = 19
	MedialCount  = 21
	FinalCount   = 28

	// initialStride is the distance between syllables that differ only in
	// their initial consonant.
	initialStride = MedialCount * FinalCount
)

var (
	choList  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungList = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongList = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	choseongIndex  = buildIndex(choList)
	jungseongIndex = buildIndex(jungList)
	jongseongIndex = buildIndex(jongList[1:], 1)
)

func buildIndex(list []rune, offset ...int) map[rune]int {
	base := 0
	if len(offset) > 0 {
		base = offset[0]
	}
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = base + i
	}
	return idx
}

// Initials returns a copy of the 19 initial consonants in table order.
func Initials() []rune {
	return append([]rune(nil), choList...)
}

// IsSyllable reports whether r is a precomposed syllable block.
func IsSyllable(r rune) bool {
	return r >= SyllableFirst && r <= SyllableLast
}

// IsInitial reports whether r is one of the 19 initial-consonant symbols.
func IsInitial(r rune) bool {
	_, ok := choseongIndex[r]
	return ok
}

// IsMedial reports whether r is a compatibility vowel jamo.
func IsMedial(r rune) bool {
	_, ok := jungseongIndex[r]
	return ok
}

// IsFinal reports whether r can close a syllable.
func IsFinal(r rune) bool {
	_, ok := jongseongIndex[r]
	return ok
}

// Decompose splits a syllable block into its table indices. A final index of
// zero means the syllable is open.
func Decompose(r rune) (initial, medial, final int, ok bool) {
	if !IsSyllable(r) {
		return 0, 0, 0, false
	}
	offset := int(r - SyllableFirst)
	return offset / initialStride, (offset % initialStride) / FinalCount, offset % FinalCount, true
}

// InitialOf returns the initial consonant of a syllable block.
func InitialOf(r rune) (rune, bool) {
	initial, _, _, ok := Decompose(r)
	if !ok {
		return 0, false
	}
	return choList[initial], true
}

// HasFinal reports whether r is a syllable block carrying a final consonant.
func HasFinal(r rune) bool {
	_, _, final, ok := Decompose(r)
	return ok && final != 0
}

// Bucket identifies the initial+medial pair of a syllable block. Syllables
// that differ only in their final consonant share a bucket.
func Bucket(r rune) (int, bool) {
	if !IsSyllable(r) {
		return 0, false
	}
	return int(r-SyllableFirst) / FinalCount, true
}

// Compose builds a syllable block from compatibility jamo. A zero final
// produces an open syllable.
func Compose(initial, medial, final rune) (rune, bool) {
	li, ok := choseongIndex[initial]
	if !ok {
		return 0, false
	}
	mi, ok := jungseongIndex[medial]
	if !ok {
		return 0, false
	}
	ti := 0
	if final != 0 {
		if ti, ok = jongseongIndex[final]; !ok {
			return 0, false
		}
	}
	return SyllableFirst + rune((li*MedialCount+mi)*FinalCount+ti), true
}
