package serial

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("fixed length hex", func(t *testing.T) {
		s, err := NewGenerator().Generate()
		require.NoError(t, err)
		assert.Len(t, s, Length)
		assert.Len(t, s, 32)

		_, err = hex.DecodeString(s)
		assert.NoError(t, err)
	})

	t.Run("successive calls differ", func(t *testing.T) {
		g := NewGenerator()
		a, err := g.Generate()
		require.NoError(t, err)
		b, err := g.Generate()
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("same instant still differs", func(t *testing.T) {
		fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		g := NewGeneratorWithClock(func() time.Time { return fixed })
		a, err := g.Generate()
		require.NoError(t, err)
		b, err := g.Generate()
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}
