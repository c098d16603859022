package maze

// Layout is the renderer-facing snapshot of a maze.
type Layout struct {
	Cols  int            `json:"cols"`
	Rows  int            `json:"rows"`
	Seed  int            `json:"seed"`
	Walls []int          `json:"walls"` // Cell.WallMask values, row-major.
	Start CellPosition   `json:"start"`
	End   CellPosition   `json:"end"`
	Path  []CellPosition `json:"path,omitempty"`
}

// Layout snapshots the maze. With withPath set it also carries the solution.
func (m *Maze) Layout(withPath bool) (*Layout, error) {
	walls := make([]int, len(m.grid))
	for i := range m.grid {
		walls[i] = int(m.grid[i].WallMask())
	}

	layout := &Layout{
		Cols:  m.cols,
		Rows:  m.rows,
		Seed:  m.seed,
		Walls: walls,
		Start: m.start,
		End:   m.end,
	}

	if withPath {
		path, err := m.Solution()
		if err != nil {
			return nil, err
		}
		layout.Path = path
	}

	return layout, nil
}
