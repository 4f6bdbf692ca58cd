package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanfind/pkg/search"
)

func TestFor(t *testing.T) {
	for _, mode := range Modes() {
		n, err := For(mode)
		require.NoError(t, err, mode)
		assert.Equal(t, "창세기", n("창세기"))
	}

	_, err := For("upper")
	assert.Error(t, err)
}

func TestNFCComposesConjoiningJamo(t *testing.T) {
	assert.Equal(t, "\uCC3D", NFC("\u110E\u1161\u11BC"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "Genesis", Fold("\uFF27\uFF45\uFF4E\uFF45\uFF53\uFF49\uFF53"))
	assert.Equal(t, "ㅊㅅ", Fold("\u110E\u1109"))
	assert.Equal(t, "\uCC3D\uC138\uAE30", Fold("\uCC3D\uC138\uAE30"))
	assert.Equal(t, "\u3131", Fold("\uFFA1"))
}

func TestFoldFeedsMatcher(t *testing.T) {
	m, err := search.NewMatcher(search.Options{Normalize: Fold})
	require.NoError(t, err)

	assert.False(t, search.Matches("\u110E\u1109", "창세기"))
	assert.True(t, m.Match("\u110E\u1109", "창세기"))
	assert.True(t, m.Match("\uFF27\uFF45\uFF4E", "Genesis"))

	assert.Equal(t, "\u314A\u3145", Fold("\uFFBA\uFFB5"))
	assert.False(t, search.Matches("\uFFBA\uFFB5", "창세기"))
	assert.True(t, m.Match("\uFFBA\uFFB5", "창세기"))
}
