package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hammer/internal/models"
)

func TestDefaultKeyMapCoversEveryButton(t *testing.T) {
	bound := map[models.Button]bool{}
	for _, b := range DefaultKeyMap() {
		bound[b] = true
	}
	for _, b := range models.Buttons {
		assert.True(t, bound[b], "no key for %s", b)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	b, ok := DefaultKeyMap().Lookup("S")
	require.True(t, ok)
	assert.Equal(t, models.ButtonPower, b)

	_, ok = DefaultKeyMap().Lookup("c")
	assert.False(t, ok)
}

func TestParseKeyMap(t *testing.T) {
	keys, err := ParseKeyMap(" p=power, X=confirm ")
	require.NoError(t, err)

	assert.Equal(t, models.ButtonPower, keys["p"])
	assert.Equal(t, models.ButtonConfirm, keys["x"])
	assert.Equal(t, models.ButtonPower, keys["s"])

	_, err = ParseKeyMap("p")
	assert.Error(t, err)
	_, err = ParseKeyMap("p=launch")
	assert.Error(t, err)
	_, err = ParseKeyMap("=power")
	assert.Error(t, err)
}

func TestTokensExpandsArrowEscapes(t *testing.T) {
	assert.Equal(t, []string{"up", "up", "left", "a"}, tokens("\x1b[A\x1b[A\x1b[D a"))
	assert.Empty(t, tokens("   "))
}
