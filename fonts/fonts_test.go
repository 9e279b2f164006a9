package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.NotNil(t, Title.Get())
	assert.Len(t, fonts, 1)
}

func TestLoadFontErrors(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 12))
	assert.Panics(t, func() { FontName("missing").Get() })
}
