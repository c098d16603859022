/*
Package maze builds reproducible rectangular mazes.

A Maze is carved with a randomized depth-first backtracker driven by a
SeededRandom, so the same (cols, rows, seed) triple always yields the same
walls. The package also picks start and end corners from the seed, solves the
maze with a breadth-first search, validates player routes, and renders the
grid as ASCII.
*/
package maze

import (
	"fmt"
	"strings"
)

// MaxDimension bounds both sides of a maze.
const MaxDimension = 100

// Maze is a perfect maze: every pair of cells is joined by exactly one path.
// It is read-only once New returns.
type Maze struct {
	cols  int
	rows  int
	seed  int
	grid  []Cell // row-major, index y*cols + x
	start CellPosition
	end   CellPosition
}

// New validates the dimensions and seed, carves a maze and picks its
// endpoints.
func New(cols, rows, seed int) (*Maze, error) {
	if cols <= 0 || rows <= 0 || cols > MaxDimension || rows > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	if seed <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeed, seed)
	}

	grid := make([]Cell, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			grid[y*cols+x] = newWalledCell(x, y)
		}
	}

	m := &Maze{
		cols: cols,
		rows: rows,
		seed: seed,
		grid: grid,
	}
	m.carve(NewSeededRandom(seed))
	m.start, m.end = Endpoints(cols, rows, seed)
	return m, nil
}

// carve runs the backtracker with an explicit stack.
func (m *Maze) carve(rng *SeededRandom) {
	stx := rng.Intn(m.cols)
	sty := rng.Intn(m.rows)
	m.at(stx, sty).visited = true
	stack := []CellPosition{{X: stx, Y: sty}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		dirs := Directions
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		carved := false
		for _, d := range dirs {
			next := cur.Step(d)
			if !m.InBound(next.X, next.Y) || m.at(next.X, next.Y).visited {
				continue
			}
			m.openWall(cur, d)
			m.at(next.X, next.Y).visited = true
			stack = append(stack, next)
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// openWall clears the wall pair between pos and its neighbour in d.
func (m *Maze) openWall(pos CellPosition, d Direction) {
	next := pos.Step(d)
	m.at(pos.X, pos.Y).Walls[d] = 0
	m.at(next.X, next.Y).Walls[d.Opposite()] = 0
}

// at returns the grid slot for an in-bound coordinate.
func (m *Maze) at(x, y int) *Cell {
	return &m.grid[y*m.cols+x]
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.cols }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.rows }

// Seed returns the seed the maze was carved from.
func (m *Maze) Seed() int { return m.seed }

// Start returns the entry corner.
func (m *Maze) Start() CellPosition { return m.start }

// End returns the exit corner.
func (m *Maze) End() CellPosition { return m.end }

// InBound reports whether (x, y) lies on the grid.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// Cell returns a copy of the cell at (x, y).
func (m *Maze) Cell(x, y int) (Cell, error) {
	if !m.InBound(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return *m.at(x, y), nil
}

// Neighbours returns the cells reachable from (x, y) through an open wall,
// in North, East, South, West order.
func (m *Maze) Neighbours(x, y int) ([]CellPosition, error) {
	if !m.InBound(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	cell := m.at(x, y)
	pos := cell.Position()
	result := make([]CellPosition, 0, 4)
	for _, d := range Directions {
		if cell.HasWall(d) {
			continue
		}
		next := pos.Step(d)
		if m.InBound(next.X, next.Y) {
			result = append(result, next)
		}
	}
	return result, nil
}

// OpenPassages counts open wall pairs. A perfect maze has rows*cols-1.
func (m *Maze) OpenPassages() int {
	count := 0
	for i := range m.grid {
		// East and South only, so each pair is counted once.
		if !m.grid[i].HasWall(East) {
			count++
		}
		if !m.grid[i].HasWall(South) {
			count++
		}
	}
	return count
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(nil)
}

// Render draws the maze as ASCII, marking the start with S, the end with E
// and every other cell of path with a dot.
func (m *Maze) Render(path []CellPosition) string {
	onPath := make(map[CellPosition]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for y := 0; y < m.rows; y++ {
		// Cell rows
		output.WriteString("|")
		for x := 0; x < m.cols; x++ {
			cell := m.at(x, y)
			pos := cell.Position()

			switch {
			case pos == m.start:
				output.WriteString(" S ")
			case pos == m.end:
				output.WriteString(" E ")
			default:
				if _, ok := onPath[pos]; ok {
					output.WriteString(" . ")
				} else {
					output.WriteString("   ")
				}
			}

			if cell.HasWall(East) {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for x := 0; x < m.cols; x++ {
			if m.at(x, y).HasWall(South) {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
