package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	t.Run("Known corners", func(t *testing.T) {
		start, end := Endpoints(10, 10, 7)
		assert.Equal(t, CellPosition{0, 0}, start)
		assert.Equal(t, CellPosition{9, 9}, end)

		start, end = Endpoints(5, 5, 42)
		assert.Equal(t, CellPosition{0, 0}, start)
		assert.Equal(t, CellPosition{0, 4}, end)
	})

	t.Run("Repeated construction picks the same corners", func(t *testing.T) {
		a, err := New(10, 10, 7)
		require.NoError(t, err)
		b, err := New(10, 10, 7)
		require.NoError(t, err)
		assert.Equal(t, a.Start(), b.Start())
		assert.Equal(t, a.End(), b.End())
	})

	t.Run("Always two distinct corners", func(t *testing.T) {
		corners := map[CellPosition]struct{}{{0, 0}: {}, {7, 0}: {}, {0, 4}: {}, {7, 4}: {}}
		for seed := 1; seed < 200; seed++ {
			start, end := Endpoints(8, 5, seed)
			assert.NotEqual(t, start, end)
			assert.Contains(t, corners, start)
			assert.Contains(t, corners, end)
		}
	})

	t.Run("Single column can put start on end", func(t *testing.T) {
		same := 0
		for seed := 1; seed < 200; seed++ {
			m, err := New(1, 6, seed)
			require.NoError(t, err)
			assert.Contains(t, []CellPosition{{0, 0}, {0, 5}}, m.Start())
			assert.Contains(t, []CellPosition{{0, 0}, {0, 5}}, m.End())

			path, err := m.Solution()
			require.NoError(t, err)
			if m.Start() != m.End() {
				assert.Len(t, path, 6)
				continue
			}
			same++
			assert.Equal(t, []CellPosition{m.Start()}, path)
			assert.NoError(t, m.ValidateRoute(path))
		}
		assert.Positive(t, same)
	})

	t.Run("Single cell collapses to one corner", func(t *testing.T) {
		start, end := Endpoints(1, 1, 1)
		assert.Equal(t, CellPosition{}, start)
		assert.Equal(t, CellPosition{}, end)
	})
}
