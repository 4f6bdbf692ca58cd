package hangul

// Composer assembles a stream of compatibility jamo into syllable blocks the
// way a 2-set keyboard does. Completed syllables are handed back from Feed;
// the syllable still under construction is available from Preedit.
type Composer struct {
	leading  rune
	vowel    rune
	trailing rune
	// twoKeyLead is set when leading was combined from two presses of the
	// same key rather than typed as one shifted key.
	twoKeyLead bool
}

func NewComposer() *Composer {
	return &Composer{}
}

var (
	doubleInitial = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄷ', 'ㄷ'}: 'ㄸ',
		{'ㅂ', 'ㅂ'}: 'ㅃ',
		{'ㅈ', 'ㅈ'}: 'ㅉ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
	doubleMedial = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	// A final ㄲ or ㅆ only ever arrives as a single key, so it is never split
	// on backspace or when a vowel pulls the final into the next syllable.
	doubleFinal = map[[2]rune]rune{
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
	}
)

var (
	initialDecompose = invertDouble(doubleInitial)
	medialDecompose  = invertDouble(doubleMedial)
	finalDecompose   = invertDouble(doubleFinal)
)

func invertDouble(src map[[2]rune]rune) map[rune][2]rune {
	dst := make(map[rune][2]rune, len(src))
	for pair, value := range src {
		dst[value] = pair
	}
	return dst
}

// Feed adds one jamo and returns whatever text it completed. Runes that are
// not jamo flush the pending syllable and pass through.
func (c *Composer) Feed(ch rune) string {
	switch {
	case IsMedial(ch):
		return c.handleVowel(ch)
	case IsInitial(ch) || IsFinal(ch):
		return c.handleConsonant(ch)
	default:
		return c.Flush() + string(ch)
	}
}

// Backspace removes the most recently typed jamo from the pending syllable.
// It reports false when there was nothing pending to edit.
func (c *Composer) Backspace() (string, bool) {
	switch {
	case c.trailing != 0:
		if pair, ok := finalDecompose[c.trailing]; ok {
			c.trailing = pair[0]
		} else {
			c.trailing = 0
		}
	case c.vowel != 0:
		if pair, ok := medialDecompose[c.vowel]; ok {
			c.vowel = pair[0]
		} else {
			c.vowel = 0
		}
	case c.leading != 0:
		if pair, ok := initialDecompose[c.leading]; ok && c.twoKeyLead {
			c.leading = pair[0]
		} else {
			c.leading = 0
		}
		c.twoKeyLead = false
	default:
		return "", false
	}
	return c.Preedit(), true
}

// Flush returns the pending syllable and resets the composer.
func (c *Composer) Flush() string {
	out := c.Preedit()
	c.reset()
	return out
}

// Preedit renders the syllable under construction.
func (c *Composer) Preedit() string {
	switch {
	case c.leading != 0 && c.vowel != 0:
		if r, ok := Compose(c.leading, c.vowel, c.trailing); ok {
			return string(r)
		}
		out := []rune{c.leading, c.vowel}
		if c.trailing != 0 {
			out = append(out, c.trailing)
		}
		return string(out)
	case c.leading != 0:
		return string(c.leading)
	case c.vowel != 0:
		return string(c.vowel)
	}
	return ""
}

func (c *Composer) reset() {
	c.leading, c.vowel, c.trailing = 0, 0, 0
	c.twoKeyLead = false
}

func (c *Composer) handleConsonant(ch rune) string {
	switch {
	case c.leading == 0 && c.vowel == 0:
		c.leading = ch
		return ""
	case c.vowel == 0:
		if combined, ok := doubleInitial[[2]rune{c.leading, ch}]; ok {
			c.leading = combined
			c.twoKeyLead = true
			return ""
		}
	case c.leading == 0:
		// a bare vowel cannot take a final
	case c.trailing == 0:
		if IsFinal(ch) {
			c.trailing = ch
			return ""
		}
	default:
		if combined, ok := doubleFinal[[2]rune{c.trailing, ch}]; ok {
			c.trailing = combined
			return ""
		}
	}
	commit := c.Flush()
	c.leading = ch
	return commit
}

func (c *Composer) handleVowel(ch rune) string {
	if c.vowel == 0 {
		c.vowel = ch
		return ""
	}
	if c.trailing == 0 {
		if combined, ok := doubleMedial[[2]rune{c.vowel, ch}]; ok {
			c.vowel = combined
			return ""
		}
		commit := c.Flush()
		c.vowel = ch
		return commit
	}

	next := c.trailing
	if split, ok := finalDecompose[c.trailing]; ok {
		c.trailing = split[0]
		next = split[1]
	} else {
		c.trailing = 0
	}
	commit := c.Flush()
	c.leading = next
	c.vowel = ch
	return commit
}
