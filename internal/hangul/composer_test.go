package hangul

import "testing"

func feedKeys(t *testing.T, c *Composer, keys string) string {
	t.Helper()
	var out string
	for _, k := range keys {
		j, ok := DubeolsikJamo(k)
		if !ok {
			t.Fatalf("no jamo for key %q", k)
		}
		out += c.Feed(j)
	}
	return out
}

func TestComposerComposeSyllable(t *testing.T) {
	composer := NewComposer()

	if commit := composer.Feed('ㅎ'); commit != "" {
		t.Fatalf("expected no commit after initial consonant, got %q", commit)
	}
	if got := composer.Preedit(); got != "ㅎ" {
		t.Fatalf("expected preedit 'ㅎ', got %q", got)
	}

	composer.Feed('ㅏ')
	if got := composer.Preedit(); got != "하" {
		t.Fatalf("expected preedit '하', got %q", got)
	}

	composer.Feed('ㄴ')
	if got := composer.Preedit(); got != "한" {
		t.Fatalf("expected preedit '한', got %q", got)
	}

	if committed := composer.Flush(); committed != "한" {
		t.Fatalf("expected flush to commit '한', got %q", committed)
	}
	if composer.Flush() != "" {
		t.Fatalf("expected subsequent flush to commit nothing")
	}
}

func TestComposerDubeolsikSentence(t *testing.T) {
	composer := NewComposer()
	got := feedKeys(t, composer, "dkssudgktpdy") + composer.Flush()
	if got != "안녕하세요" {
		t.Fatalf("expected '안녕하세요', got %q", got)
	}
}

func TestComposerBookQuery(t *testing.T) {
	composer := NewComposer()
	commit := feedKeys(t, composer, "ckdtp")
	if commit != "창" {
		t.Fatalf("expected '창' committed, got %q", commit)
	}
	if composer.Preedit() != "세" {
		t.Fatalf("expected preedit '세', got %q", composer.Preedit())
	}
}

func TestComposerDoubleInitial(t *testing.T) {
	composer := NewComposer()
	composer.Feed('ㄱ')
	composer.Feed('ㄱ')
	if got := composer.Preedit(); got != "ㄲ" {
		t.Fatalf("expected double initial to form 'ㄲ', got %q", got)
	}
	composer.Feed('ㅏ')
	if got := composer.Preedit(); got != "까" {
		t.Fatalf("expected syllable '까', got %q", got)
	}
}

func TestComposerDoubleFinalSplitsOnVowel(t *testing.T) {
	composer := NewComposer()
	composer.Feed('ㄱ')
	composer.Feed('ㅏ')
	composer.Feed('ㅂ')
	composer.Feed('ㅅ')
	if got := composer.Preedit(); got != "값" {
		t.Fatalf("expected double final to produce '값', got %q", got)
	}

	commit := composer.Feed('ㅣ')
	if commit != "갑" {
		t.Fatalf("expected '갑' committed when vowel follows, got %q", commit)
	}
	if got := composer.Preedit(); got != "시" {
		t.Fatalf("expected second half of final to lead '시', got %q", got)
	}
}

func TestComposerDoubleMedial(t *testing.T) {
	composer := NewComposer()
	composer.Feed('ㅇ')
	composer.Feed('ㅗ')
	if commit := composer.Feed('ㅏ'); commit != "" {
		t.Fatalf("expected no commit while composing double medial, got %q", commit)
	}
	if got := composer.Preedit(); got != "와" {
		t.Fatalf("expected composed vowel to yield '와', got %q", got)
	}
}

func TestComposerBackspace(t *testing.T) {
	composer := NewComposer()
	for _, j := range []rune{'ㄱ', 'ㅏ', 'ㅂ', 'ㅅ'} {
		composer.Feed(j)
	}

	steps := []string{"갑", "가", "ㄱ", ""}
	for _, want := range steps {
		preedit, ok := composer.Backspace()
		if !ok || preedit != want {
			t.Fatalf("expected backspace to leave %q, got %q (ok=%v)", want, preedit, ok)
		}
	}
	if _, ok := composer.Backspace(); ok {
		t.Fatalf("expected no further backspace edits once empty")
	}
}

func TestComposerBackspaceDoubleInitial(t *testing.T) {
	composer := NewComposer()
	composer.Feed('ㄲ')
	if preedit, ok := composer.Backspace(); !ok || preedit != "" {
		t.Fatalf("expected a single-key ㄲ to be removed whole, got %q (ok=%v)", preedit, ok)
	}

	composer.Feed('ㄱ')
	composer.Feed('ㄱ')
	if got := composer.Preedit(); got != "ㄲ" {
		t.Fatalf("expected ㄱㄱ to combine into ㄲ, got %q", got)
	}
	if preedit, ok := composer.Backspace(); !ok || preedit != "ㄱ" {
		t.Fatalf("expected a two-key ㄲ to fall back to ㄱ, got %q (ok=%v)", preedit, ok)
	}
	if preedit, ok := composer.Backspace(); !ok || preedit != "" {
		t.Fatalf("expected the remaining ㄱ to be removed, got %q (ok=%v)", preedit, ok)
	}
}

func TestComposerPassesThroughLiterals(t *testing.T) {
	composer := NewComposer()
	composer.Feed('ㄱ')
	composer.Feed('ㅏ')
	if commit := composer.Feed('1'); commit != "가1" {
		t.Fatalf("expected literal to flush pending syllable, got %q", commit)
	}
}
