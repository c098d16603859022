package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Empty prefix", func(t *testing.T) {
		_, err := New("  ", config.ColorCyan, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
	})

	t.Run("Writes prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("generated maze")
		l.Warning("cache miss")
		l.Error("solver failed")

		out := buf.String()
		assert.Contains(t, out, "[MAZE]")
		assert.Contains(t, out, "[INFO]")
		assert.Contains(t, out, "[WARNING]")
		assert.Contains(t, out, "[ERROR]")
		assert.Contains(t, out, "generated maze")
		assert.Contains(t, out, "solver failed")
	})
}
