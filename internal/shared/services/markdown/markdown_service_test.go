package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	t.Run("empty", func(t *testing.T) {
		out, err := r.Render("")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("formats and keeps line breaks", func(t *testing.T) {
		out, err := r.Render("Oil **leak** at flange\nreplace gasket")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>leak</strong>")
		assert.Contains(t, out, "<br")
	})

	t.Run("strips scripts", func(t *testing.T) {
		out, err := r.Render("hello <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
	})
}
