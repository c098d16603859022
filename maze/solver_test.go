package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidPath checks adjacency through open walls and that no cell repeats.
func assertValidPath(t *testing.T, m *Maze, path []CellPosition) {
	t.Helper()
	seen := make(map[CellPosition]struct{}, len(path))
	for i, p := range path {
		_, dup := seen[p]
		assert.False(t, dup, "cell %s repeated", p)
		seen[p] = struct{}{}
		if i == 0 {
			continue
		}
		d, adjacent := DirectionBetween(path[i-1], p)
		require.True(t, adjacent, "%s and %s are not adjacent", path[i-1], p)
		assert.True(t, m.CanMove(path[i-1], d), "wall between %s and %s", path[i-1], p)
	}
}

func TestSolve(t *testing.T) {
	t.Run("Known solution", func(t *testing.T) {
		m, err := New(3, 3, 42)
		require.NoError(t, err)
		path, err := m.Solution()
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{{0, 0}, {0, 1}, {0, 2}}, path)

		m, err = New(5, 5, 42)
		require.NoError(t, err)
		path, err = m.Solution()
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}, path)
	})

	t.Run("Same start and end", func(t *testing.T) {
		m, err := New(1, 1, 1)
		require.NoError(t, err)
		path, err := m.Solve(CellPosition{}, CellPosition{})
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{{0, 0}}, path)
	})

	t.Run("Out of bounds", func(t *testing.T) {
		m, err := New(4, 4, 9)
		require.NoError(t, err)
		_, err = m.Solve(CellPosition{X: -1}, CellPosition{})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = m.Solve(CellPosition{}, CellPosition{X: 4, Y: 4})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("All pairs on a small maze", func(t *testing.T) {
		m, err := New(6, 5, 31)
		require.NoError(t, err)
		for sy := 0; sy < m.Height(); sy++ {
			for sx := 0; sx < m.Width(); sx++ {
				for ey := 0; ey < m.Height(); ey++ {
					for ex := 0; ex < m.Width(); ex++ {
						start, end := CellPosition{sx, sy}, CellPosition{ex, ey}
						path, err := m.Solve(start, end)
						require.NoError(t, err)
						assert.Equal(t, start, path[0])
						assert.Equal(t, end, path[len(path)-1])
						assertValidPath(t, m, path)

						// A tree has one path, so the reverse query walks it backwards.
						back, err := m.Solve(end, start)
						require.NoError(t, err)
						require.Len(t, back, len(path))
						for i := range path {
							assert.Equal(t, path[i], back[len(back)-1-i])
						}
					}
				}
			}
		}
	})

	t.Run("Path length bounds on 20x20", func(t *testing.T) {
		for seed := 1; seed <= 25; seed++ {
			m, err := New(20, 20, seed)
			require.NoError(t, err)
			path, err := m.Solution()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(path), 1)
			assert.LessOrEqual(t, len(path), 400)
			assertValidPath(t, m, path)
		}
	})

	t.Run("Walled off goal is reported", func(t *testing.T) {
		m, err := New(3, 1, 5)
		require.NoError(t, err)
		// Seal the grid back up to simulate a carving defect.
		for i := range m.grid {
			m.grid[i].Walls = [4]uint8{1, 1, 1, 1}
		}
		_, err = m.Solve(CellPosition{0, 0}, CellPosition{2, 0})
		assert.ErrorIs(t, err, ErrDisconnectedMaze)
	})
}
