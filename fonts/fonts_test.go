package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(14, 10))
	for _, name := range []FontName{HUD, Debug, Title} {
		assert.True(t, Loaded(name))
		assert.NotNil(t, name.Get())
	}
	assert.Greater(t, Title.Get().Metrics().Height, HUD.Get().Metrics().Height)
}

func TestLoadRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("bad", []byte("not a font"), 10))
	assert.False(t, Loaded("bad"))
	assert.Panics(t, func() { FontName("bad").Get() })
}
