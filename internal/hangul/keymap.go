package hangul

// dubeolsik maps Latin keys on a US keyboard to the jamo printed on the
// standard Korean 2-set layout. Shifted letters without a distinct jamo fall
// back to the unshifted one.
var dubeolsik = map[rune]rune{
	'q': 'ㅂ', 'Q': 'ㅃ',
	'w': 'ㅈ', 'W': 'ㅉ',
	'e': 'ㄷ', 'E': 'ㄸ',
	'r': 'ㄱ', 'R': 'ㄲ',
	't': 'ㅅ', 'T': 'ㅆ',
	'y': 'ㅛ',
	'u': 'ㅕ',
	'i': 'ㅑ',
	'o': 'ㅐ', 'O': 'ㅒ',
	'p': 'ㅔ', 'P': 'ㅖ',
	'a': 'ㅁ',
	's': 'ㄴ',
	'd': 'ㅇ',
	'f': 'ㄹ',
	'g': 'ㅎ',
	'h': 'ㅗ',
	'j': 'ㅓ',
	'k': 'ㅏ',
	'l': 'ㅣ',
	'z': 'ㅋ',
	'x': 'ㅌ',
	'c': 'ㅊ',
	'v': 'ㅍ',
	'b': 'ㅠ',
	'n': 'ㅜ',
	'm': 'ㅡ',
}

// DubeolsikJamo returns the jamo for a Latin key on the 2-set layout.
func DubeolsikJamo(key rune) (rune, bool) {
	if j, ok := dubeolsik[key]; ok {
		return j, true
	}
	if key >= 'A' && key <= 'Z' {
		j, ok := dubeolsik[key+('a'-'A')]
		return j, ok
	}
	return 0, false
}
