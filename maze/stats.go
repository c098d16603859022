package maze

// Stats summarises the shape of a maze.
type Stats struct {
	OpenPassages   int `json:"open_passages"`
	DeadEnds       int `json:"dead_ends"` // cells with a single opening
	Junctions      int `json:"junctions"` // cells with three or more openings
	SolutionLength int `json:"solution_length"`
}

// Stats walks every cell reachable from the start and classifies it by the
// number of open sides.
func (m *Maze) Stats() (Stats, error) {
	var s Stats

	visited := map[CellPosition]struct{}{m.start: {}}
	stack := []CellPosition{m.start}

	for len(stack) > 0 {
		cell := pop(&stack)

		neighbours, err := m.Neighbours(cell.X, cell.Y)
		if err != nil {
			return Stats{}, err
		}

		switch {
		case len(neighbours) == 1:
			s.DeadEnds++
		case len(neighbours) >= 3:
			s.Junctions++
		}

		for _, nbr := range neighbours {
			if _, seen := visited[nbr]; !seen {
				visited[nbr] = struct{}{}
				stack = append(stack, nbr)
				s.OpenPassages++
			}
		}
	}

	if len(visited) != len(m.grid) {
		return Stats{}, ErrDisconnectedMaze
	}

	path, err := m.Solution()
	if err != nil {
		return Stats{}, err
	}
	s.SolutionLength = len(path)

	return s, nil
}

// pop removes and returns the last element of a stack.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
